package autodiff

import "math"

// Jet is a degree-3 truncated Taylor series of a scalar function of one
// parameter t: V is f(t), D1 is f'(t), D2 is f''(t), D3 is f'''(t).
//
// Zero value is the constant-zero jet (all fields zero), matching the
// additive identity.
type Jet struct {
	V, D1, D2, D3 float64
}

// Const returns the jet of a constant: all derivatives zero.
func Const(v float64) Jet {
	return Jet{V: v}
}

// Var returns the jet of the independent variable itself, seeded so that
// evaluating a Jet-valued function at Var(t) yields exact derivatives of
// that function with respect to t.
func Var(v float64) Jet {
	return Jet{V: v, D1: 1}
}

// Add returns a+b.
func (a Jet) Add(b Jet) Jet {
	return Jet{a.V + b.V, a.D1 + b.D1, a.D2 + b.D2, a.D3 + b.D3}
}

// Sub returns a-b.
func (a Jet) Sub(b Jet) Jet {
	return Jet{a.V - b.V, a.D1 - b.D1, a.D2 - b.D2, a.D3 - b.D3}
}

// Neg returns -a.
func (a Jet) Neg() Jet {
	return Jet{-a.V, -a.D1, -a.D2, -a.D3}
}

// Scale returns a scaled by the constant k.
func (a Jet) Scale(k float64) Jet {
	return Jet{a.V * k, a.D1 * k, a.D2 * k, a.D3 * k}
}

// Mul returns the jet of a*b via the general (both-varying) Leibniz
// product rule, truncated to third order.
func (a Jet) Mul(b Jet) Jet {
	return Jet{
		V:  a.V * b.V,
		D1: a.D1*b.V + a.V*b.D1,
		D2: a.D2*b.V + 2*a.D1*b.D1 + a.V*b.D2,
		D3: a.D3*b.V + 3*a.D2*b.D1 + 3*a.D1*b.D2 + a.V*b.D3,
	}
}

// Div returns a/b. Behavior is undefined (may be non-finite) if b.V == 0,
// mirroring dcm.Orthonormalize's stance on rank-deficient input.
func (a Jet) Div(b Jet) Jet {
	return a.Mul(b.Recip())
}

// composeScalar applies the chain rule for a scalar elementary function f
// evaluated at x, given f's own value and first three derivatives
// (f0..f3) at x.V. This is Faà di Bruno's formula truncated to order 3 and
// is the shared implementation behind Recip, Sin, Cos, and Sqrt.
func composeScalar(x Jet, f0, f1, f2, f3 float64) Jet {
	d1 := f1 * x.D1
	d2 := f2*x.D1*x.D1 + f1*x.D2
	d3 := f3*x.D1*x.D1*x.D1 + 3*f2*x.D1*x.D2 + f1*x.D3
	return Jet{V: f0, D1: d1, D2: d2, D3: d3}
}

// Recip returns the jet of 1/x.
func (x Jet) Recip() Jet {
	v := x.V
	return composeScalar(x, 1/v, -1/(v*v), 2/(v*v*v), -6/(v*v*v*v))
}

// Sqrt returns the jet of sqrt(x).
func (x Jet) Sqrt() Jet {
	v := x.V
	r := math.Sqrt(v)
	return composeScalar(x, r, 0.5/r, -0.25/(r*v), 0.375/(r*v*v))
}

// Sin returns the jet of sin(x).
func (x Jet) Sin() Jet {
	s, c := math.Sin(x.V), math.Cos(x.V)
	return composeScalar(x, s, c, -s, -c)
}

// Cos returns the jet of cos(x).
func (x Jet) Cos() Jet {
	s, c := math.Sin(x.V), math.Cos(x.V)
	return composeScalar(x, c, -s, -c, s)
}

// Eval evaluates f at t and returns its value and first three derivatives.
func Eval(f func(Jet) Jet, t float64) (v, d1, d2, d3 float64) {
	j := f(Var(t))
	return j.V, j.D1, j.D2, j.D3
}
