package dcm

import "github.com/arvo-space/frametx/autodiff"

// twoVectorRot builds the derivative tuple of the two-vectors DCM: given
// primary vector u and secondary vector w (each carrying up to three time
// derivatives via jetVec3), the new frame's axes are
//
//	n1 = normalize(u)
//	n2 = normalize(w − (w·n1)·n1)
//	n3 = sign · (n1 × n2)
//
// assigned to the rows named by seq, with sign fixing the right-hand rule
// against the sequence's axis order (twoVectorAxes). Each row's time
// derivatives are read directly off the jetVec3 arithmetic used to build
// it — an analytic propagation of the normalize/cross/dot operators,
// rather than a second, hand-derived formula per derivative order.
func twoVectorRot(u, w jetVec3, seq TwoVectorSeq) ([4]DCM, error) {
	i1, i2, i3, sign, err := twoVectorAxes(seq)
	if err != nil {
		return [4]DCM{}, err
	}

	n1 := normalizeJet(u)
	wPerp := w.sub(n1.scale(dotJet(n1, w)))
	n2 := normalizeJet(wPerp)
	n3 := crossJet(n1, n2).scale(autodiff.Const(sign))

	var basis [3]jetVec3
	basis[i1], basis[i2], basis[i3] = n1, n2, n3

	var out [4]DCM
	for row := 0; row < 3; row++ {
		for comp := 0; comp < 3; comp++ {
			val, d1, d2, d3 := basis[row].column(comp)
			out[0][row][comp] = val
			out[1][row][comp] = d1
			out[2][row][comp] = d2
			out[3][row][comp] = d3
		}
	}
	return out, nil
}

// Rot3 builds a DCM from a primary vector u and secondary vector w via the
// two-vectors construction.
func Rot3(u, w Vec3, seq TwoVectorSeq) (DCM, error) {
	r, err := twoVectorRot(constJetVec3(u), constJetVec3(w), seq)
	if err != nil {
		return DCM{}, err
	}
	return r[0], nil
}

// Rot6 builds a DCM and its first time derivative from a primary and
// secondary vector and their velocities.
func Rot6(u, uDot, w, wDot Vec3, seq TwoVectorSeq) (m, mDot DCM, err error) {
	uj := jetVec3{autodiff.Jet{V: u[0], D1: uDot[0]}, autodiff.Jet{V: u[1], D1: uDot[1]}, autodiff.Jet{V: u[2], D1: uDot[2]}}
	wj := jetVec3{autodiff.Jet{V: w[0], D1: wDot[0]}, autodiff.Jet{V: w[1], D1: wDot[1]}, autodiff.Jet{V: w[2], D1: wDot[2]}}
	r, err := twoVectorRot(uj, wj, seq)
	if err != nil {
		return DCM{}, DCM{}, err
	}
	return r[0], r[1], nil
}

// Rot9 builds a DCM and its first and second time derivatives from a
// primary and secondary vector, their velocities, and their accelerations.
func Rot9(u, uDot, uDDot, w, wDot, wDDot Vec3, seq TwoVectorSeq) (m, mDot, mDDot DCM, err error) {
	uj := jetVec3{
		autodiff.Jet{V: u[0], D1: uDot[0], D2: uDDot[0]},
		autodiff.Jet{V: u[1], D1: uDot[1], D2: uDDot[1]},
		autodiff.Jet{V: u[2], D1: uDot[2], D2: uDDot[2]},
	}
	wj := jetVec3{
		autodiff.Jet{V: w[0], D1: wDot[0], D2: wDDot[0]},
		autodiff.Jet{V: w[1], D1: wDot[1], D2: wDDot[1]},
		autodiff.Jet{V: w[2], D1: wDot[2], D2: wDDot[2]},
	}
	r, err := twoVectorRot(uj, wj, seq)
	if err != nil {
		return DCM{}, DCM{}, DCM{}, err
	}
	return r[0], r[1], r[2], nil
}

// Rot12 builds a DCM and its first, second, and third time derivatives
// from a primary and secondary vector and their velocities, accelerations,
// and jerks.
func Rot12(u, uDot, uDDot, uJerk, w, wDot, wDDot, wJerk Vec3, seq TwoVectorSeq) (m, mDot, mDDot, mDDDot DCM, err error) {
	uj := jetVec3{
		autodiff.Jet{V: u[0], D1: uDot[0], D2: uDDot[0], D3: uJerk[0]},
		autodiff.Jet{V: u[1], D1: uDot[1], D2: uDDot[1], D3: uJerk[1]},
		autodiff.Jet{V: u[2], D1: uDot[2], D2: uDDot[2], D3: uJerk[2]},
	}
	wj := jetVec3{
		autodiff.Jet{V: w[0], D1: wDot[0], D2: wDDot[0], D3: wJerk[0]},
		autodiff.Jet{V: w[1], D1: wDot[1], D2: wDDot[1], D3: wJerk[1]},
		autodiff.Jet{V: w[2], D1: wDot[2], D2: wDDot[2], D3: wJerk[2]},
	}
	r, err := twoVectorRot(uj, wj, seq)
	if err != nil {
		return DCM{}, DCM{}, DCM{}, DCM{}, err
	}
	return r[0], r[1], r[2], r[3], nil
}
