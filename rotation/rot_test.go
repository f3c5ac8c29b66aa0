package rotation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/rotation"
)

func rotZ(t *testing.T, theta, rate, accel, jerk float64) rotation.Rot {
	t.Helper()
	m, mDot, mDDot, mDDDot, err := dcm.AngleToDelta3DCM(dcm.SeqZ, dcm.AngleDerivs{Theta: theta, Rate: rate, Accel: accel, Jerk: jerk})
	require.NoError(t, err)
	return rotation.FromDCM(dcm.Order4, [4]dcm.DCM{m, mDot, mDDot, mDDDot})
}

func requireDCMEqual(t *testing.T, want, got dcm.DCM, tol float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, want[i][j], got[i][j], tol)
		}
	}
}

// TestCompose_WithIdentity checks that composing with identity is a
// no-op at every order.
func TestCompose_WithIdentity(t *testing.T) {
	a := rotZ(t, 0.7, 0.3, 0.1, -0.05)
	id := rotation.Identity(dcm.Order4)

	got := rotation.Compose(a, id)
	for k := 0; k < 4; k++ {
		requireDCMEqual(t, a.Tuple[k], got.Tuple[k], 1e-12)
	}
}

// TestInverse_IsInvolution checks that inverting twice recovers the
// original rotation, and that a rotation composed with its own inverse
// is the identity at every order.
func TestInverse_IsInvolution(t *testing.T) {
	a := rotZ(t, 1.2, -0.4, 0.2, 0.05)
	inv := rotation.Inverse(a)
	back := rotation.Inverse(inv)
	for k := 0; k < 4; k++ {
		requireDCMEqual(t, a.Tuple[k], back.Tuple[k], 1e-12)
	}

	// A composed with its inverse is the identity at every order.
	id := rotation.Compose(inv, a)
	want := rotation.Identity(dcm.Order4)
	for k := 0; k < 4; k++ {
		requireDCMEqual(t, want.Tuple[k], id.Tuple[k], 1e-9)
	}
}

// TestCompose_SameAxisAddsAnglesAndRates checks that composing two Z-axis
// rotations matches a single Z-axis rotation whose angle and rate are the
// sums of the two legs'.
func TestCompose_SameAxisAddsAnglesAndRates(t *testing.T) {
	ab := rotZ(t, 0.3, 0.1, 0, 0)
	bc := rotZ(t, 0.5, -0.2, 0, 0)

	ac := rotation.Compose(bc, ab)

	wantTheta := 0.3 + 0.5
	wantRate := 0.1 + -0.2
	want := rotZ(t, wantTheta, wantRate, 0, 0)

	requireDCMEqual(t, want.Tuple[0], ac.Tuple[0], 1e-9)
	requireDCMEqual(t, want.Tuple[1], ac.Tuple[1], 1e-9)
}

// TestFromDCM_ZeroesUnpopulatedSlots verifies entries beyond Order are
// left zero, matching the "unspecified" contract callers must honor.
func TestFromDCM_ZeroesUnpopulatedSlots(t *testing.T) {
	m, mDot, err := dcm.AngleToDeltaDCM(dcm.SeqZ, dcm.AngleDerivs{Theta: math.Pi / 4, Rate: 1.0})
	require.NoError(t, err)

	r := rotation.FromDCM(dcm.Order2, [4]dcm.DCM{m, mDot, {}, {}})
	require.Equal(t, dcm.Order2, r.Order)
	require.Equal(t, dcm.DCM{}, r.Tuple[2])
	require.Equal(t, dcm.DCM{}, r.Tuple[3])
}
