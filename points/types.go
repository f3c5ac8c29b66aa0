package points

import (
	"github.com/arvo-space/frametx/autodiff"
	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/graph"
	"github.com/arvo-space/frametx/state"
)

// Class names a point node's state-production semantics.
type Class int

const (
	Root Class = iota
	Fixed
	Ephemeris
	Updatable
	Dynamical
)

// Producer is the per-node capability behind the producer contract:
// given epoch t and a required order, it yields a state.State populated
// up to order, expressed in the point's declared axes.
type Producer interface {
	Produce(t float64, order dcm.Order) (state.State, error)
}

// JetVec3 is a 3-vector of autodiff.Jet, the Dynamical-class counterpart
// of axes.JetDCM: evaluating a DynamicalFunc at autodiff.Var(t) yields
// position and its first three time derivatives in one pass.
type JetVec3 [3]autodiff.Jet

// DynamicalFunc is a time-only point position function built from
// autodiff.Jet arithmetic: missing derivative functions are synthesized
// by automatic differentiation of whatever order the caller's Jet
// expression actually carries.
type DynamicalFunc func(t autodiff.Jet) JetVec3

// node is the payload stored in the points System's graph.
type node struct {
	class    Class
	axesID   graph.NodeId
	producer Producer
}
