package dcm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvo-space/frametx/dcm"
)

// TestAngleToDCM_SingletonZ checks a pure Z-axis rotation against its
// closed-form matrix.
func TestAngleToDCM_SingletonZ(t *testing.T) {
	require := require.New(t)

	m, err := dcm.AngleToDCM(dcm.SeqZ, math.Pi/6)
	require.NoError(err)

	sqrt3over2 := math.Sqrt(3) / 2
	want := dcm.DCM{
		{sqrt3over2, 0.5, 0},
		{-0.5, sqrt3over2, 0},
		{0, 0, 1},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(want[i][j], m[i][j], 1e-12)
		}
	}
}

// TestAngleToDeltaDCM_SingletonZ checks the first-derivative block of a
// Z-axis rotation against its closed-form value.
func TestAngleToDeltaDCM_SingletonZ(t *testing.T) {
	require := require.New(t)

	_, mDot, err := dcm.AngleToDeltaDCM(dcm.SeqZ, dcm.AngleDerivs{Theta: math.Pi / 6, Rate: 2.0})
	require.NoError(err)
	require.InDelta(-1.0, mDot[1][1], 1e-12)
}

// TestAngleToDCM_InvalidSequence exercises the error path.
func TestAngleToDCM_InvalidSequence(t *testing.T) {
	_, err := dcm.AngleToDCM(dcm.Sequence(999), 0.1)
	require.ErrorIs(t, err, dcm.ErrInvalidSequence)
}

// TestAngleToDCM_DimensionMismatch exercises the arity validation.
func TestAngleToDCM_DimensionMismatch(t *testing.T) {
	_, err := dcm.AngleToDCM(dcm.SeqXYZ, 0.1, 0.2)
	require.ErrorIs(t, err, dcm.ErrDimensionMismatch)
}

// TestOrthonormalize_GramMatrixIsIdentity checks that orthonormalizing a
// perturbed matrix yields a Gram matrix equal to identity.
func TestOrthonormalize_GramMatrixIsIdentity(t *testing.T) {
	require := require.New(t)

	// A mildly perturbed, non-orthonormal input.
	m := dcm.DCM{
		{1.01, 0.02, 0.0},
		{0.0, 0.99, 0.03},
		{0.01, 0.0, 1.02},
	}
	out := dcm.Orthonormalize(m)

	gram := dcm.MulDCM(dcm.Transpose(out), out)
	id := dcm.Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(id[i][j], gram[i][j], 1e-9)
		}
	}
}

// TestSkewCrossEquivalence checks MulVec(Skew(w), v) == Cross(w, v).
func TestSkewCrossEquivalence(t *testing.T) {
	require := require.New(t)
	w := dcm.Vec3{1, 2, 3}
	v := dcm.Vec3{4, -1, 0.5}

	got := dcm.MulVec(dcm.Skew(w), v)
	want := dcm.Cross(w, v)
	for i := 0; i < 3; i++ {
		require.InDelta(want[i], got[i], 1e-12)
	}
}

// TestInverseDerivatives_IsTranspose checks the Rot inverse law against a
// rotating DCM family.
func TestInverseDerivatives_IsTranspose(t *testing.T) {
	require := require.New(t)
	m, mDot, mDDot, mDDDot, err := dcm.AngleToDelta3DCM(dcm.SeqZ, dcm.AngleDerivs{Theta: 1.1, Rate: 0.7, Accel: 0.2, Jerk: -0.1})
	require.NoError(err)

	tuple := [4]dcm.DCM{m, mDot, mDDot, mDDDot}
	inv := dcm.InverseDerivatives(tuple, dcm.Order4)

	for k := 0; k < 4; k++ {
		want := dcm.Transpose(tuple[k])
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				require.InDelta(want[i][j], inv[k][i][j], 1e-12)
			}
		}
	}
}

// TestRot3_OrthonormalBasis checks that the two-vectors construction
// returns a proper right-handed orthonormal frame for every sequence.
func TestRot3_OrthonormalBasis(t *testing.T) {
	require := require.New(t)
	u := dcm.Vec3{1, 0.2, -0.3}
	w := dcm.Vec3{0.1, 1, 0.4}

	seqs := []dcm.TwoVectorSeq{dcm.TVXY, dcm.TVYX, dcm.TVXZ, dcm.TVZX, dcm.TVYZ, dcm.TVZY}
	for _, seq := range seqs {
		m, err := dcm.Rot3(u, w, seq)
		require.NoError(err)
		gram := dcm.MulDCM(m, dcm.Transpose(m))
		id := dcm.Identity()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				require.InDelta(id[i][j], gram[i][j], 1e-9)
			}
		}
	}
}

// TestRot6_DerivativeMatchesFiniteDifference checks Rot6's analytic
// velocity-order derivative against central finite differences.
func TestRot6_DerivativeMatchesFiniteDifference(t *testing.T) {
	require := require.New(t)

	u := func(t float64) dcm.Vec3 { return dcm.Vec3{math.Cos(t), math.Sin(t), 0} }
	uDot := func(t float64) dcm.Vec3 { return dcm.Vec3{-math.Sin(t), math.Cos(t), 0} }
	w := dcm.Vec3{0, 0, 1}
	wDot := dcm.Vec3{0, 0, 0}

	const t0 = 0.4
	m0, mDot, err := dcm.Rot6(u(t0), uDot(t0), w, wDot, dcm.TVXZ)
	require.NoError(err)

	const h = 1e-6
	mPlus, err := dcm.Rot3(u(t0+h), w, dcm.TVXZ)
	require.NoError(err)
	mMinus, err := dcm.Rot3(u(t0-h), w, dcm.TVXZ)
	require.NoError(err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			fd := (mPlus[i][j] - mMinus[i][j]) / (2 * h)
			require.InDelta(fd, mDot[i][j], 1e-5)
		}
	}
	_ = m0
}
