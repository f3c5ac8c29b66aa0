package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvo-space/frametx/autodiff"
)

// TestJet_SinMatchesClosedForm checks that Jet-propagated derivatives of
// sin(omega*t) match the closed-form derivatives to machine precision.
func TestJet_SinMatchesClosedForm(t *testing.T) {
	require := require.New(t)
	const omega = 1.37
	const epoch = 0.618

	f := func(x autodiff.Jet) autodiff.Jet { return x.Scale(omega).Sin() }
	v, d1, d2, d3 := autodiff.Eval(f, epoch)

	require.InDelta(math.Sin(omega*epoch), v, 1e-12)
	require.InDelta(omega*math.Cos(omega*epoch), d1, 1e-12)
	require.InDelta(-omega*omega*math.Sin(omega*epoch), d2, 1e-12)
	require.InDelta(-omega*omega*omega*math.Cos(omega*epoch), d3, 1e-12)
}

// TestJet_Mul verifies the product rule against a hand-computed example:
// f(t) = t^2 * sin(t), whose derivatives are known in closed form.
func TestJet_Mul(t *testing.T) {
	require := require.New(t)
	const epoch = 0.9

	f := func(x autodiff.Jet) autodiff.Jet {
		sq := x.Mul(x)
		return sq.Mul(x.Sin())
	}
	v, d1, _, _ := autodiff.Eval(f, epoch)

	require.InDelta(epoch*epoch*math.Sin(epoch), v, 1e-12)
	want1 := 2*epoch*math.Sin(epoch) + epoch*epoch*math.Cos(epoch)
	require.InDelta(want1, d1, 1e-12)
}

// TestJet_Recip checks division against a closed-form reciprocal.
func TestJet_Recip(t *testing.T) {
	require := require.New(t)
	const epoch = 2.5

	f := func(x autodiff.Jet) autodiff.Jet { return autodiff.Const(1).Div(x) }
	v, d1, d2, _ := autodiff.Eval(f, epoch)

	require.InDelta(1/epoch, v, 1e-12)
	require.InDelta(-1/(epoch*epoch), d1, 1e-12)
	require.InDelta(2/(epoch*epoch*epoch), d2, 1e-12)
}
