package dcm

// Identity returns the 3×3 identity DCM.
func Identity() DCM {
	return DCM{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// MulVec returns M·v, the image of v under the rotation M.
func MulVec(m DCM, v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// MulDCM returns a·b, applying b to a vector first and then a.
func MulDCM(a, b DCM) DCM {
	var c DCM
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return c
}

// AddDCM returns a+b, elementwise.
func AddDCM(a, b DCM) DCM {
	var c DCM
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j] + b[i][j]
		}
	}
	return c
}

// ScaleDCM returns m scaled elementwise by k.
func ScaleDCM(m DCM, k float64) DCM {
	var c DCM
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = m[i][j] * k
		}
	}
	return c
}

// Transpose returns the matrix transpose of m. For an orthonormal proper
// rotation this equals its inverse.
func Transpose(m DCM) DCM {
	var c DCM
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = m[j][i]
		}
	}
	return c
}

// Skew returns the 3×3 skew-symmetric cross-product matrix of w, such
// that MulVec(Skew(w), v) == Cross(w, v) for any v.
func Skew(w Vec3) DCM {
	return DCM{
		{0, -w[2], w[1]},
		{w[2], 0, -w[0]},
		{-w[1], w[0], 0},
	}
}

// DeltaDCM returns −skew(ω)·M, the time derivative of a DCM whose target
// frame rotates with angular velocity ω expressed in the target frame.
func DeltaDCM(m DCM, omega Vec3) DCM {
	return MulDCM(ScaleDCM(Skew(omega), -1), m)
}

// Orthonormalize runs classical Gram-Schmidt on the columns of m and
// returns a DCM with orthonormal columns. Behavior on a rank-deficient
// input is undefined: numerics may yield non-finite entries.
func Orthonormalize(m DCM) DCM {
	var cols, out [3]Vec3
	for j := 0; j < 3; j++ {
		cols[j] = Vec3{m[0][j], m[1][j], m[2][j]}
	}
	for j := 0; j < 3; j++ {
		v := cols[j]
		for k := 0; k < j; k++ {
			v = SubVec(v, ScaleVec(out[k], Dot(out[k], cols[j])))
		}
		out[j] = Normalize(v)
	}
	var result DCM
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			result[i][j] = out[j][i]
		}
	}
	return result
}

// ComposeDerivatives returns the derivative tuple of C = A·B via the
// Leibniz product rule, C_k = Σ_{j=0..k} C(k,j)·A_{k-j}·B_j, computing
// only entries 0..order.Count()-1. Entries beyond that are left zero and
// must not be read by the caller.
func ComposeDerivatives(a, b [4]DCM, order Order) [4]DCM {
	binom := [4][4]float64{
		{1, 0, 0, 0},
		{1, 1, 0, 0},
		{1, 2, 1, 0},
		{1, 3, 3, 1},
	}
	var c [4]DCM
	n := order.Count()
	for k := 0; k < n; k++ {
		var sum DCM
		for j := 0; j <= k; j++ {
			sum = AddDCM(sum, ScaleDCM(MulDCM(a[k-j], b[j]), binom[k][j]))
		}
		c[k] = sum
	}
	return c
}

// InverseDerivatives returns the derivative tuple of M⁻¹ given M's own
// derivative tuple, computing only entries 0..order.Count()-1. The
// transpose is the componentwise inverse because the carrier is
// orthonormal at every differential order used here.
func InverseDerivatives(m [4]DCM, order Order) [4]DCM {
	var inv [4]DCM
	n := order.Count()
	for k := 0; k < n; k++ {
		inv[k] = Transpose(m[k])
	}
	return inv
}
