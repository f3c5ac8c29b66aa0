package state

import (
	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/rotation"
)

// binom is a local copy of the Pascal's-triangle table dcm.ComposeDerivatives
// uses, truncated to the four orders this engine supports.
var binom = [4][4]float64{
	{1, 0, 0, 0},
	{1, 1, 0, 0},
	{1, 2, 1, 0},
	{1, 3, 3, 1},
}

// State is the state vector container: an ordered tuple of up to four
// 3-vectors, (r, v, a, j), truncated to Order. Entries beyond Order are
// unspecified and must not be read by callers.
type State struct {
	Order dcm.Order
	Tuple [4]dcm.Vec3
}

// Zero returns the zero state at order, used by the Root point producer
// and by any pair of coincident points, whose relative state is zero at
// every order.
func Zero(order dcm.Order) State {
	return State{Order: order}
}

// At returns the k-th derivative block (0 = position, 1 = velocity, and
// so on). k must be less than s.Order.Count().
func (s State) At(k int) dcm.Vec3 {
	return s.Tuple[k]
}

func minOrder(a, b dcm.Order) dcm.Order {
	if b < a {
		return b
	}
	return a
}

// Add returns a+b componentwise.
func Add(a, b State) State {
	order := minOrder(a.Order, b.Order)
	var out State
	out.Order = order
	for k := 0; k < order.Count(); k++ {
		out.Tuple[k] = dcm.AddVec(a.Tuple[k], b.Tuple[k])
	}
	return out
}

// Sub returns a-b componentwise; swapping the operands negates the
// result at every order.
func Sub(a, b State) State {
	order := minOrder(a.Order, b.Order)
	var out State
	out.Order = order
	for k := 0; k < order.Count(); k++ {
		out.Tuple[k] = dcm.SubVec(a.Tuple[k], b.Tuple[k])
	}
	return out
}

// Scale returns s scaled componentwise by k.
func Scale(s State, k float64) State {
	var out State
	out.Order = s.Order
	for i := 0; i < s.Order.Count(); i++ {
		out.Tuple[i] = dcm.ScaleVec(s.Tuple[i], k)
	}
	return out
}

// TransformBy rotates s through r, applying the Leibniz product rule
// `s'_k = Σ_{j=0..k} C(k,j)·R_{k-j}·s_j`, so a State's velocity/
// acceleration/jerk entries correctly pick up the contribution of the
// carrying frame's own angular-rate derivatives, not just a per-order
// matrix-vector product.
func TransformBy(r rotation.Rot, s State) State {
	order := minOrder(r.Order, s.Order)
	var out State
	out.Order = order
	for k := 0; k < order.Count(); k++ {
		var sum dcm.Vec3
		for j := 0; j <= k; j++ {
			term := dcm.MulVec(r.Tuple[k-j], s.Tuple[j])
			sum = dcm.AddVec(sum, dcm.ScaleVec(term, binom[k][j]))
		}
		out.Tuple[k] = sum
	}
	return out
}
