package axes

import (
	"github.com/arvo-space/frametx/autodiff"
	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/graph"
	"github.com/arvo-space/frametx/rotation"
	"github.com/arvo-space/frametx/state"
)

// Class names an axes node's state-production semantics.
type Class int

const (
	Inertial Class = iota
	FixedOffset
	Rotating
	Computable
)

// Producer is the per-node capability behind the producer contract:
// given epoch t and a required order, it yields a rotation.Rot populated
// up to order. lookup is consulted only by Computable producers; every
// other class ignores it.
type Producer interface {
	Produce(t float64, order dcm.Order, lookup StateLookup) (rotation.Rot, error)
}

// StateLookup resolves a point's state at a given order and epoch,
// supplied by the evaluator (frame package) so a Computable axes
// producer can pull point-graph data without this package importing
// points.
type StateLookup func(point graph.NodeId, order dcm.Order, epoch float64) (state.State, error)

// PointExistsFunc reports whether a point id is registered, supplied by
// the caller (frame package) so AddComputable can validate its vector
// descriptors against the points graph without importing it.
type PointExistsFunc func(point graph.NodeId) bool

// JetDCM is a 3×3 matrix of autodiff.Jet — a DCM whose entries carry
// their own time derivatives. A RotatingFunc returns one of these so its
// derivative blocks can be read straight off each entry's Jet fields
// instead of requiring a second, hand-written derivative function.
type JetDCM [3][3]autodiff.Jet

// RotatingFunc is a time-only axes orientation function built from
// autodiff.Jet arithmetic (sums, products, Sin/Cos, ...) over a "running
// time" Jet. Evaluating it at autodiff.Var(t) yields the orientation and
// its first three time derivatives in a single pass — the Faà di Bruno
// chain rule falls out of Jet's arithmetic, so callers never need to
// supply a separately-derived δf/δ²f/δ³f unless they already have one,
// in which case they can embed it directly into the returned Jet's
// D1/D2/D3 fields.
type RotatingFunc func(t autodiff.Jet) JetDCM

// ComputableAxesVector names the point pair whose relative state drives
// one leg of a Computable axes' two-vectors construction, and the
// maximum derivative order (1, 2, or 3) that relative state is
// trustworthy to.
type ComputableAxesVector struct {
	From  graph.NodeId
	To    graph.NodeId
	Order dcm.Order
}
