package dcm

import "github.com/arvo-space/frametx/autodiff"

// jetVec3 is a 3-component vector whose components carry up to third time
// derivatives, used internally to propagate the two-vectors construction's
// input derivatives through normalize/cross/dot analytically.
type jetVec3 [3]autodiff.Jet

func constJetVec3(v Vec3) jetVec3 {
	return jetVec3{autodiff.Const(v[0]), autodiff.Const(v[1]), autodiff.Const(v[2])}
}

func (a jetVec3) add(b jetVec3) jetVec3 {
	return jetVec3{a[0].Add(b[0]), a[1].Add(b[1]), a[2].Add(b[2])}
}

func (a jetVec3) sub(b jetVec3) jetVec3 {
	return jetVec3{a[0].Sub(b[0]), a[1].Sub(b[1]), a[2].Sub(b[2])}
}

func (a jetVec3) scale(k autodiff.Jet) jetVec3 {
	return jetVec3{a[0].Mul(k), a[1].Mul(k), a[2].Mul(k)}
}

func dotJet(a, b jetVec3) autodiff.Jet {
	return a[0].Mul(b[0]).Add(a[1].Mul(b[1])).Add(a[2].Mul(b[2]))
}

func crossJet(a, b jetVec3) jetVec3 {
	return jetVec3{
		a[1].Mul(b[2]).Sub(a[2].Mul(b[1])),
		a[2].Mul(b[0]).Sub(a[0].Mul(b[2])),
		a[0].Mul(b[1]).Sub(a[1].Mul(b[0])),
	}
}

func normalizeJet(a jetVec3) jetVec3 {
	norm := dotJet(a, a).Sqrt()
	return a.scale(norm.Recip())
}

// column returns component comp (0,1,2) of v as a DCM-derivative tuple
// (value, 1st, 2nd, 3rd derivative).
func (v jetVec3) column(comp int) (val, d1, d2, d3 float64) {
	j := v[comp]
	return j.V, j.D1, j.D2, j.D3
}
