// Package autodiff provides forward-mode automatic differentiation of
// scalar-in functions, up to the third derivative, via a truncated Taylor
// "jet". It is the substitute for hand-differentiating a Rotating axes'
// or Dynamical point's time-function when the caller has not supplied an
// analytic derivative.
//
// What
//
//   - Jet carries a value plus its 1st, 2nd, and 3rd derivatives with
//     respect to a single scalar parameter (time).
//   - Arithmetic (Add, Sub, Mul, Div) and the elementary functions the
//     rest of the module needs (Sin, Cos, Sqrt, Recip) propagate all
//     four components simultaneously using Faà di Bruno's formula, so one
//     evaluation with Var(t) yields f, f', f'', f''' exactly — no finite
//     differencing, no repeated evaluation at perturbed epochs.
//
// Why
//
//   - dcm.angle_to_δdcm/δ²dcm/δ³dcm and the rot6/rot9/rot12 two-vector
//     constructions need exact derivatives of angle and vector time
//     functions. Finite differences would not meet the machine-precision
//     tolerance those callers require.
//
// Usage
//
//	theta := func(t autodiff.Jet) autodiff.Jet { return t.Scale(omega) }
//	j := theta(autodiff.Var(epoch))
//	// j.V, j.D1, j.D2, j.D3 are theta(t), theta'(t), theta''(t), theta'''(t)
//
// A producer that wants to supply an analytic derivative directly instead
// of letting it propagate through Jet arithmetic may simply construct the
// Jet with that field set by hand — "supplied" and "synthesized"
// derivatives are the same Jet, just built two different ways.
package autodiff
