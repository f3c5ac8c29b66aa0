package axes

import (
	"github.com/arvo-space/frametx/autodiff"
	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/rotation"
	"github.com/arvo-space/frametx/state"
)

// inertialProducer returns identity at every order.
type inertialProducer struct{}

func (inertialProducer) Produce(_ float64, order dcm.Order, _ StateLookup) (rotation.Rot, error) {
	return rotation.Identity(order), nil
}

// fixedOffsetProducer returns a constant DCM with zero higher
// derivatives, used by both the FixedOffset class and non-root Inertial
// nodes.
type fixedOffsetProducer struct {
	d dcm.DCM
}

func (p fixedOffsetProducer) Produce(_ float64, order dcm.Order, _ StateLookup) (rotation.Rot, error) {
	return rotation.FromDCM(order, [4]dcm.DCM{p.d, {}, {}, {}}), nil
}

// rotatingProducer evaluates a Jet-valued time function at the query
// epoch and reads derivative blocks straight off the resulting Jet
// components: unspecified derivatives are filled in by automatic
// differentiation rather than a hand-written derivative function.
type rotatingProducer struct {
	f RotatingFunc
}

func (p rotatingProducer) Produce(t float64, order dcm.Order, _ StateLookup) (rotation.Rot, error) {
	jt := autodiff.Var(t)
	jm := p.f(jt)

	var tuple [4]dcm.DCM
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := jm[i][j]
			tuple[0][i][j] = v.V
			tuple[1][i][j] = v.D1
			tuple[2][i][j] = v.D2
			tuple[3][i][j] = v.D3
		}
	}
	return rotation.FromDCM(order, tuple), nil
}

// computableProducer derives orientation from two relative state vectors
// pulled from the point graph via StateLookup.
type computableProducer struct {
	v1, v2 ComputableAxesVector
	seq    dcm.TwoVectorSeq
}

// relativeVector resolves v's relative state (v.To − v.From) via lookup,
// zero-padding derivative slots beyond v.Order's declared coverage.
func relativeVector(v ComputableAxesVector, lookup StateLookup, t float64) (dcm.Vec3, dcm.Vec3, dcm.Vec3, dcm.Vec3, error) {
	from, err := lookup(v.From, v.Order, t)
	if err != nil {
		return dcm.Vec3{}, dcm.Vec3{}, dcm.Vec3{}, dcm.Vec3{}, err
	}
	to, err := lookup(v.To, v.Order, t)
	if err != nil {
		return dcm.Vec3{}, dcm.Vec3{}, dcm.Vec3{}, dcm.Vec3{}, err
	}
	rel := state.Sub(to, from)

	var blocks [4]dcm.Vec3
	for k := 0; k < rel.Order.Count(); k++ {
		blocks[k] = rel.Tuple[k]
	}
	return blocks[0], blocks[1], blocks[2], blocks[3], nil
}

func (p computableProducer) Produce(t float64, order dcm.Order, lookup StateLookup) (rotation.Rot, error) {
	if lookup == nil {
		return rotation.Rot{}, ErrUnknownPoint
	}
	if order.Count() > p.v1.Order.Count() || order.Count() > p.v2.Order.Count() {
		return rotation.Rot{}, ErrOrderExceeded
	}

	u, uDot, uDDot, uJerk, err := relativeVector(p.v1, lookup, t)
	if err != nil {
		return rotation.Rot{}, err
	}
	w, wDot, wDDot, wJerk, err := relativeVector(p.v2, lookup, t)
	if err != nil {
		return rotation.Rot{}, err
	}

	var tuple [4]dcm.DCM
	switch order {
	case dcm.Order1:
		m, err := dcm.Rot3(u, w, p.seq)
		if err != nil {
			return rotation.Rot{}, err
		}
		tuple[0] = m
	case dcm.Order2:
		m, mDot, err := dcm.Rot6(u, uDot, w, wDot, p.seq)
		if err != nil {
			return rotation.Rot{}, err
		}
		tuple[0], tuple[1] = m, mDot
	case dcm.Order3:
		m, mDot, mDDot, err := dcm.Rot9(u, uDot, uDDot, w, wDot, wDDot, p.seq)
		if err != nil {
			return rotation.Rot{}, err
		}
		tuple[0], tuple[1], tuple[2] = m, mDot, mDDot
	case dcm.Order4:
		m, mDot, mDDot, mDDDot, err := dcm.Rot12(u, uDot, uDDot, uJerk, w, wDot, wDDot, wJerk, p.seq)
		if err != nil {
			return rotation.Rot{}, err
		}
		tuple[0], tuple[1], tuple[2], tuple[3] = m, mDot, mDDot, mDDDot
	}
	return rotation.FromDCM(order, tuple), nil
}
