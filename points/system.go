package points

import (
	"errors"

	"github.com/arvo-space/frametx/axes"
	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/graph"
	"github.com/arvo-space/frametx/providers"
	"github.com/arvo-space/frametx/state"
)

// System is a rooted tree of point nodes. It holds a reference to the
// companion axes.System solely to validate that every point node
// references an axes id that already exists; points never asks axes to
// produce a rotation.
type System struct {
	g       *graph.Graph[*node]
	axes    *axes.System
	rootID  graph.NodeId
	hasRoot bool
}

// NewSystem returns an empty points System bound to axesSys for axes-id
// validation.
func NewSystem(axesSys *axes.System) *System {
	return &System{g: graph.New[*node](), axes: axesSys}
}

// HasPoint reports whether id has been registered. Its signature matches
// axes.PointExistsFunc so it can be passed directly to
// axes.System.AddComputable.
func (s *System) HasPoint(id graph.NodeId) bool {
	return s.g.HasVertex(id)
}

// Graph exposes the underlying graph.Graph so the evaluator (frame
// package) can compute paths between point nodes.
func (s *System) Graph() *graph.Graph[*node] {
	return s.g
}

// ClassOf returns the class of a registered point node.
func (s *System) ClassOf(id graph.NodeId) (Class, error) {
	n, err := s.g.Payload(id)
	if err != nil {
		return 0, ErrUnknownPoint
	}
	return n.class, nil
}

// RootID returns this System's unique Root point id, or false if none
// has been registered yet.
func (s *System) RootID() (graph.NodeId, bool) {
	return s.rootID, s.hasRoot
}

// AxesOf returns the axes id a point's state is expressed in.
func (s *System) AxesOf(id graph.NodeId) (graph.NodeId, error) {
	n, err := s.g.Payload(id)
	if err != nil {
		return 0, ErrUnknownPoint
	}
	return n.axesID, nil
}

// Produce invokes id's own producer directly (not composed along any
// path).
func (s *System) Produce(id graph.NodeId, t float64, order dcm.Order) (state.State, error) {
	n, err := s.g.Payload(id)
	if err != nil {
		return state.State{}, ErrUnknownPoint
	}
	return n.producer.Produce(t, order)
}

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
	case errors.Is(err, graph.ErrMultipleRoots):
		return ErrMultipleRoots
	case errors.Is(err, graph.ErrUnknownNode):
		return ErrUnknownPoint
	default:
		return err
	}
}

// AddRoot registers the unique Root point of this system: exactly one
// per frame system, whose producer returns zero state.
func (s *System) AddRoot(id graph.NodeId, name string, axesID graph.NodeId) error {
	if !s.axes.HasAxes(axesID) {
		return ErrUnknownAxes
	}
	n := &node{class: Root, axesID: axesID, producer: rootProducer{}}
	if err := mapGraphErr(s.g.AddRoot(id, name, n)); err != nil {
		return err
	}
	s.rootID, s.hasRoot = id, true
	return nil
}

// AddFixed registers a Fixed point: a constant offset from parent with
// zero velocity/acceleration/jerk.
func (s *System) AddFixed(id, parent graph.NodeId, name string, axesID graph.NodeId, offset dcm.Vec3) error {
	if !s.axes.HasAxes(axesID) {
		return ErrUnknownAxes
	}
	n := &node{class: Fixed, axesID: axesID, producer: fixedProducer{offset: offset}}
	return mapGraphErr(s.g.AddVertex(id, name, parent, n))
}

// AddEphemeris registers an Ephemeris point: the engine queries
// provider.PositionRecords() to discover the (center, axes) pair for id;
// more than one match fails with ErrAmbiguousEphemeris, none with
// ErrNoEphemerisRecord. center must already be registered in this points
// graph; axes must already be registered in the companion axes.System.
func (s *System) AddEphemeris(id graph.NodeId, name string, provider providers.EphemerisProvider) error {
	records := provider.PositionRecords()
	var match *providers.PositionRecord
	for i, rec := range records {
		if rec.Target != id {
			continue
		}
		if match != nil {
			return ErrAmbiguousEphemeris
		}
		match = &records[i]
	}
	if match == nil {
		return ErrNoEphemerisRecord
	}
	if !s.g.HasVertex(match.Center) {
		return ErrUnknownParent
	}
	if !s.axes.HasAxes(match.Axes) {
		return ErrUnknownAxes
	}

	n := &node{
		class:  Ephemeris,
		axesID: match.Axes,
		producer: ephemerisProducer{
			provider: provider,
			target:   id,
			center:   match.Center,
		},
	}
	return mapGraphErr(s.g.AddVertex(id, name, match.Center, n))
}

// AddUpdatable registers an Updatable point: an external writer supplies
// its state via Update.
func (s *System) AddUpdatable(id, parent graph.NodeId, name string, axesID graph.NodeId) error {
	if !s.axes.HasAxes(axesID) {
		return ErrUnknownAxes
	}
	n := &node{class: Updatable, axesID: axesID, producer: &updatableProducer{}}
	return mapGraphErr(s.g.AddVertex(id, name, parent, n))
}

// AddDynamical registers a Dynamical point: a time-only Jet-valued
// position function.
func (s *System) AddDynamical(id, parent graph.NodeId, name string, axesID graph.NodeId, f DynamicalFunc) error {
	if !s.axes.HasAxes(axesID) {
		return ErrUnknownAxes
	}
	n := &node{class: Dynamical, axesID: axesID, producer: dynamicalProducer{f: f}}
	return mapGraphErr(s.g.AddVertex(id, name, parent, n))
}

// Update writes a new stamped state for an Updatable point. It fails
// with ErrUnknownPoint if point is unregistered or not of class
// Updatable.
func (s *System) Update(point graph.NodeId, st state.State, epoch float64, order dcm.Order) error {
	n, err := s.g.Payload(point)
	if err != nil {
		return ErrUnknownPoint
	}
	up, ok := n.producer.(*updatableProducer)
	if !ok {
		return ErrUnknownPoint
	}
	up.update(st, epoch, order)
	return nil
}
