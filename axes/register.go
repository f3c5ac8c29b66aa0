package axes

import (
	"errors"

	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/graph"
)

// mapGraphErr translates this package's shared graph layer's sentinel
// errors into axes' own error vocabulary, which treats these as
// semantically distinct kinds even though the underlying graph package
// is shared with points.
func mapGraphErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, graph.ErrDuplicateId):
		return ErrDuplicateId
	case errors.Is(err, graph.ErrDuplicateName):
		return ErrDuplicateName
	case errors.Is(err, graph.ErrUnknownParent):
		return ErrUnknownParent
	case errors.Is(err, graph.ErrUnknownNode), errors.Is(err, graph.ErrMultipleRoots):
		return ErrInvalidParent
	default:
		return err
	}
}

// AddInertial registers an Inertial axes node. A root node (parent ==
// nil) must not carry a dcm; a non-root node must both name an existing
// Inertial parent and supply a constant offset dcm.
func (s *System) AddInertial(id graph.NodeId, name string, parent *graph.NodeId, d *dcm.DCM) error {
	if parent == nil {
		if d != nil {
			return ErrInvalidParent
		}
		n := &node{class: Inertial, producer: inertialProducer{}}
		return mapGraphErr(s.g.AddRoot(id, name, n))
	}

	if d == nil {
		return ErrMissingDcm
	}
	parentClass, err := s.ClassOf(*parent)
	if err != nil {
		return ErrUnknownParent
	}
	if parentClass != Inertial {
		return ErrInvalidParent
	}

	n := &node{class: Inertial, producer: fixedOffsetProducer{d: *d}}
	return mapGraphErr(s.g.AddVertex(id, name, *parent, n))
}

// AddFixedOffset registers a FixedOffset axes node: a constant dcm with
// zero higher derivatives.
func (s *System) AddFixedOffset(id, parent graph.NodeId, name string, d dcm.DCM) error {
	n := &node{class: FixedOffset, producer: fixedOffsetProducer{d: d}}
	return mapGraphErr(s.g.AddVertex(id, name, parent, n))
}

// AddRotating registers a Rotating axes node: a time-only orientation
// function whose derivative blocks are read off its autodiff.Jet
// arithmetic.
func (s *System) AddRotating(id, parent graph.NodeId, name string, f RotatingFunc) error {
	n := &node{class: Rotating, producer: rotatingProducer{f: f}}
	return mapGraphErr(s.g.AddVertex(id, name, parent, n))
}

// AddComputable registers a Computable axes node: orientation derived
// from two point-graph vector descriptors and a two-vectors sequence.
// pointExists validates v1/v2's from/to ids against the points graph
// without this package importing it.
func (s *System) AddComputable(id, parent graph.NodeId, name string, v1, v2 ComputableAxesVector, seq dcm.TwoVectorSeq, pointExists PointExistsFunc) error {
	if seq < dcm.TVXY || seq > dcm.TVZY {
		return ErrInvalidSequence
	}

	maxOrder := dcm.Order2
	if s.allowAccel {
		maxOrder = dcm.Order3
	}
	if v1.Order < dcm.Order1 || v1.Order > maxOrder || v2.Order < dcm.Order1 || v2.Order > maxOrder {
		return ErrOrderExceeded
	}

	if pointExists != nil {
		for _, ref := range []graph.NodeId{v1.From, v1.To, v2.From, v2.To} {
			if !pointExists(ref) {
				return ErrUnknownPoint
			}
		}
	}

	n := &node{class: Computable, producer: computableProducer{v1: v1, v2: v2, seq: seq}}
	return mapGraphErr(s.g.AddVertex(id, name, parent, n))
}
