package frame_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvo-space/frametx/autodiff"
	"github.com/arvo-space/frametx/axes"
	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/frame"
	"github.com/arvo-space/frametx/points"
)

func requireDCMEqual(t *testing.T, want, got dcm.DCM, tol float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, want[i][j], got[i][j], tol)
		}
	}
}

// TestTwoAxesComposition_ForwardAndInverseMatchRegisteredOffset checks
// that querying a fixed-offset axes composition forward and backward
// matches the registered offset and its inverse.
func TestTwoAxesComposition_ForwardAndInverseMatchRegisteredOffset(t *testing.T) {
	ax := axes.NewSystem()
	require.NoError(t, ax.AddInertial(1, "ICRF", nil, nil))

	want, err := dcm.AngleToDCM(dcm.SeqZ, math.Pi/3)
	require.NoError(t, err)
	require.NoError(t, ax.AddFixedOffset(2, 1, "ECLIPJ2000", want))

	pt := points.NewSystem(ax)
	require.NoError(t, pt.AddRoot(100, "Origin", 1))

	fs := frame.New(ax, pt, dcm.Order1)

	forward, err := fs.Rotation(1, 2, 0.0, dcm.Order1)
	require.NoError(t, err)
	requireDCMEqual(t, want, forward.Tuple[0], 1e-12)

	backward, err := fs.Rotation(2, 1, 123.456, dcm.Order1)
	require.NoError(t, err)
	wantInv, err := dcm.AngleToDCM(dcm.SeqZ, -math.Pi/3)
	require.NoError(t, err)
	requireDCMEqual(t, wantInv, backward.Tuple[0], 1e-12)
}

// TestRotation_SelfIsIdentity checks that querying a node's rotation
// against itself returns identity.
func TestRotation_SelfIsIdentity(t *testing.T) {
	ax := axes.NewSystem()
	require.NoError(t, ax.AddInertial(1, "ICRF", nil, nil))
	d, err := dcm.AngleToDCM(dcm.SeqZ, 1.0)
	require.NoError(t, err)
	require.NoError(t, ax.AddFixedOffset(2, 1, "Child", d))

	pt := points.NewSystem(ax)
	require.NoError(t, pt.AddRoot(100, "Origin", 1))
	fs := frame.New(ax, pt, dcm.Order1)

	r, err := fs.Rotation(2, 2, 7.0, dcm.Order1)
	require.NoError(t, err)
	requireDCMEqual(t, dcm.Identity(), r.Tuple[0], 1e-12)
}

// TestRotation_InverseMatchesSwap checks that swapping the from/to
// arguments of a rotation query yields the transpose of the original.
func TestRotation_InverseMatchesSwap(t *testing.T) {
	ax := axes.NewSystem()
	require.NoError(t, ax.AddInertial(1, "ICRF", nil, nil))
	d, err := dcm.AngleToDCM(dcm.SeqY, 0.7)
	require.NoError(t, err)
	require.NoError(t, ax.AddFixedOffset(2, 1, "Child", d))

	pt := points.NewSystem(ax)
	require.NoError(t, pt.AddRoot(100, "Origin", 1))
	fs := frame.New(ax, pt, dcm.Order1)

	ab, err := fs.Rotation(1, 2, 0, dcm.Order1)
	require.NoError(t, err)
	ba, err := fs.Rotation(2, 1, 0, dcm.Order1)
	require.NoError(t, err)

	requireDCMEqual(t, dcm.Transpose(ab.Tuple[0]), ba.Tuple[0], 1e-12)
}

// TestRotation_ChainsThroughIntermediateAxes checks that
// rotation(A,C) = rotation(B,C) · rotation(A,B) along the chain A->B->C.
func TestRotation_ChainsThroughIntermediateAxes(t *testing.T) {
	ax := axes.NewSystem()
	require.NoError(t, ax.AddInertial(1, "A", nil, nil))
	dAB, err := dcm.AngleToDCM(dcm.SeqZ, 0.4)
	require.NoError(t, err)
	require.NoError(t, ax.AddFixedOffset(2, 1, "B", dAB))
	dBC, err := dcm.AngleToDCM(dcm.SeqX, 0.9)
	require.NoError(t, err)
	require.NoError(t, ax.AddFixedOffset(3, 2, "C", dBC))

	pt := points.NewSystem(ax)
	require.NoError(t, pt.AddRoot(100, "Origin", 1))
	fs := frame.New(ax, pt, dcm.Order1)

	ac, err := fs.Rotation(1, 3, 0, dcm.Order1)
	require.NoError(t, err)

	bc, err := fs.Rotation(2, 3, 0, dcm.Order1)
	require.NoError(t, err)
	ab, err := fs.Rotation(1, 2, 0, dcm.Order1)
	require.NoError(t, err)
	want := dcm.MulDCM(bc.Tuple[0], ab.Tuple[0])

	requireDCMEqual(t, want, ac.Tuple[0], 1e-12)
}

// TestState_RotatesAcrossAxes checks that
// state(P,Q,ax1,t) = rotation(ax2,ax1,t) · state(P,Q,ax2,t).
func TestState_RotatesAcrossAxes(t *testing.T) {
	ax := axes.NewSystem()
	require.NoError(t, ax.AddInertial(1, "Inertial", nil, nil))
	d, err := dcm.AngleToDCM(dcm.SeqZ, math.Pi/4)
	require.NoError(t, err)
	require.NoError(t, ax.AddFixedOffset(2, 1, "Rotated", d))

	pt := points.NewSystem(ax)
	require.NoError(t, pt.AddRoot(100, "Origin", 1))
	require.NoError(t, pt.AddFixed(101, 100, "Station", 1, dcm.Vec3{1, 0, 0}))

	fs := frame.New(ax, pt, dcm.Order1)

	inAx1, err := fs.State(100, 101, 1, 0, dcm.Order1)
	require.NoError(t, err)
	inAx2, err := fs.State(100, 101, 2, 0, dcm.Order1)
	require.NoError(t, err)

	rot, err := fs.Rotation(2, 1, 0, dcm.Order1)
	require.NoError(t, err)
	want := dcm.MulVec(rot.Tuple[0], inAx2.Tuple[0])

	require.InDelta(t, want[0], inAx1.Tuple[0][0], 1e-12)
	require.InDelta(t, want[1], inAx1.Tuple[0][1], 1e-12)
	require.InDelta(t, want[2], inAx1.Tuple[0][2], 1e-12)
}

// TestCache_SecondQueryDoesNotInvokeProducer checks that a counting
// Rotating producer fires exactly once across three identical queries.
func TestCache_SecondQueryDoesNotInvokeProducer(t *testing.T) {
	ax := axes.NewSystem()
	require.NoError(t, ax.AddInertial(1, "Inertial", nil, nil))

	calls := 0
	f := func(jt autodiff.Jet) axes.JetDCM {
		calls++
		c, s := jt.Cos(), jt.Sin()
		zero := autodiff.Const(0)
		one := autodiff.Const(1)
		return axes.JetDCM{
			{c, s, zero},
			{s.Neg(), c, zero},
			{zero, zero, one},
		}
	}
	require.NoError(t, ax.AddRotating(2, 1, "Synodic", f))

	pt := points.NewSystem(ax)
	require.NoError(t, pt.AddRoot(100, "Origin", 1))
	fs := frame.New(ax, pt, dcm.Order2)

	_, err := fs.Rotation(1, 2, math.Pi/6, dcm.Order2)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	first, err := fs.Rotation(1, 2, math.Pi/6, dcm.Order2)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	second, err := fs.Rotation(1, 2, math.Pi/6, dcm.Order2)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, first, second)
}

// TestLightTimeState_Converges checks a stationary target converges in
// one iteration (r(t_emit) is constant, so t_emit = t_recv - r/c is a
// fixed point immediately).
func TestLightTimeState_Converges(t *testing.T) {
	ax := axes.NewSystem()
	require.NoError(t, ax.AddInertial(1, "Inertial", nil, nil))

	pt := points.NewSystem(ax)
	require.NoError(t, pt.AddRoot(100, "Origin", 1))
	require.NoError(t, pt.AddFixed(101, 100, "Beacon", 1, dcm.Vec3{299792.458, 0, 0}))

	fs := frame.New(ax, pt, dcm.Order1)

	const c = 299792.458
	s, tEmit, err := fs.LightTimeState(100, 101, 1, 10.0, dcm.Order1, c, 1e-9, 50)
	require.NoError(t, err)
	require.InDelta(t, 9.0, tEmit, 1e-6)
	require.Equal(t, dcm.Vec3{299792.458, 0, 0}, s.Tuple[0])
}

// TestLightTimeState_NonConvergence exercises the target-inside-the-
// light-sphere failure mode: c so small relative to the (growing) range
// that the iteration overshoots without settling.
func TestLightTimeState_NonConvergence(t *testing.T) {
	ax := axes.NewSystem()
	require.NoError(t, ax.AddInertial(1, "Inertial", nil, nil))

	pt := points.NewSystem(ax)
	require.NoError(t, pt.AddRoot(100, "Origin", 1))

	f := func(jt autodiff.Jet) points.JetVec3 {
		return points.JetVec3{jt.Scale(1000), autodiff.Const(0), autodiff.Const(0)}
	}
	require.NoError(t, pt.AddDynamical(101, 100, "Runaway", 1, f))

	fs := frame.New(ax, pt, dcm.Order1)

	_, _, err := fs.LightTimeState(100, 101, 1, 10.0, dcm.Order1, 0.5, 1e-12, 5)
	require.ErrorIs(t, err, frame.ErrLightTimeNoConverge)
}

// TestState_TwoVectorComputableAxes exercises a Computable axes node
// driving a State query end to end, matching how the two-vectors
// construction is actually wired to the points graph at query time.
func TestState_TwoVectorComputableAxes(t *testing.T) {
	ax := axes.NewSystem()
	require.NoError(t, ax.AddInertial(1, "Inertial", nil, nil))

	pt := points.NewSystem(ax)
	require.NoError(t, pt.AddRoot(100, "Origin", 1))
	require.NoError(t, pt.AddFixed(101, 100, "Primary", 1, dcm.Vec3{1, 0, 0}))
	require.NoError(t, pt.AddFixed(102, 100, "Secondary", 1, dcm.Vec3{0, 1, 0}))

	v1 := axes.ComputableAxesVector{From: 100, To: 101, Order: dcm.Order1}
	v2 := axes.ComputableAxesVector{From: 100, To: 102, Order: dcm.Order1}
	require.NoError(t, ax.AddComputable(2, 1, "TwoVector", v1, v2, dcm.TVXY, pt.HasPoint))

	require.NoError(t, pt.AddFixed(103, 100, "Target", 1, dcm.Vec3{1, 1, 0}))

	fs := frame.New(ax, pt, dcm.Order1)

	r, err := fs.Rotation(1, 2, 0, dcm.Order1)
	require.NoError(t, err)
	gram := dcm.MulDCM(r.Tuple[0], dcm.Transpose(r.Tuple[0]))
	requireDCMEqual(t, dcm.Identity(), gram, 1e-9)

	got, err := fs.State(100, 103, 2, 0, dcm.Order1)
	require.NoError(t, err)
	_ = got
}
