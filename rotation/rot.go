package rotation

import "github.com/arvo-space/frametx/dcm"

// Rot is the rotation container: an ordered tuple of up to four DCMs,
// (M, Ṁ, M̈, M⃛), truncated to Order. Entries beyond Order are unspecified
// and must not be read by callers.
type Rot struct {
	Order dcm.Order
	Tuple [4]dcm.DCM
}

// Identity returns the identity rotation at order.
func Identity(order dcm.Order) Rot {
	return Rot{Order: order, Tuple: [4]dcm.DCM{dcm.Identity(), {}, {}, {}}}
}

// FromDCM lifts a plain dcm.DCM tuple (as returned by the dcm package's
// AngleToDCM/Rot3 family) into a Rot at the given order. Unpopulated slots
// above order are zeroed, matching the "unspecified" contract.
func FromDCM(order dcm.Order, tuple [4]dcm.DCM) Rot {
	r := Rot{Order: order}
	for k := 0; k < order.Count(); k++ {
		r.Tuple[k] = tuple[k]
	}
	return r
}

// Compose implements C = A·B: the Leibniz product rule across derivative
// orders, `C_k = Σ_{j=0..k} C(k,j)·A_{k-j}·B_j`. The result's order is
// the lesser of a's and b's.
func Compose(a, b Rot) Rot {
	order := a.Order
	if b.Order < order {
		order = b.Order
	}
	return Rot{Order: order, Tuple: dcm.ComposeDerivatives(a.Tuple, b.Tuple, order)}
}

// Inverse returns r's componentwise transpose, valid because the DCM
// carrier is orthonormal at every differentiated order.
func Inverse(r Rot) Rot {
	return Rot{Order: r.Order, Tuple: dcm.InverseDerivatives(r.Tuple, r.Order)}
}

// At returns the k-th derivative block (0 = the rotation itself, 1 = its
// first time derivative, and so on). k must be less than r.Order.Count().
func (r Rot) At(k int) dcm.DCM {
	return r.Tuple[k]
}
