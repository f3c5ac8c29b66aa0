package dcm

import "math"

// elementaryTheta returns the elementary rotation about axis by angle
// theta, together with its first three derivatives with respect to theta
// itself (not yet chain-ruled against time).
func elementaryTheta(axis Axis, theta float64) (m, d1, d2, d3 DCM) {
	s, c := math.Sin(theta), math.Cos(theta)
	switch axis {
	case AxisX:
		m = DCM{{1, 0, 0}, {0, c, s}, {0, -s, c}}
		d1 = DCM{{0, 0, 0}, {0, -s, c}, {0, -c, -s}}
		d2 = DCM{{0, 0, 0}, {0, -c, -s}, {0, s, -c}}
		d3 = DCM{{0, 0, 0}, {0, s, -c}, {0, c, s}}
	case AxisY:
		m = DCM{{c, 0, -s}, {0, 1, 0}, {s, 0, c}}
		d1 = DCM{{-s, 0, -c}, {0, 0, 0}, {c, 0, -s}}
		d2 = DCM{{-c, 0, s}, {0, 0, 0}, {-s, 0, -c}}
		d3 = DCM{{s, 0, c}, {0, 0, 0}, {-c, 0, s}}
	default: // AxisZ
		m = DCM{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}
		d1 = DCM{{-s, c, 0}, {-c, -s, 0}, {0, 0, 0}}
		d2 = DCM{{-c, -s, 0}, {s, -c, 0}, {0, 0, 0}}
		d3 = DCM{{s, -c, 0}, {c, s, 0}, {0, 0, 0}}
	}
	return m, d1, d2, d3
}

// elementaryRot returns the time-derivative tuple (M, Ṁ, M̈, M⃛) of the
// elementary rotation about axis, chain-ruling the theta-derivatives above
// against the angle's own rate/accel/jerk via the same Faà di Bruno
// formula the autodiff package's composeScalar uses — here applied entrywise to a
// 3×3 matrix of smooth scalar functions of theta rather than to a single
// autodiff.Jet, since DCM entries are plain float64 and this kernel must
// stay allocation-free.
func elementaryRot(axis Axis, ad AngleDerivs) [4]DCM {
	m, d1, d2, d3 := elementaryTheta(axis, ad.Theta)
	r1, r2, r3 := ad.Rate, ad.Accel, ad.Jerk

	mDot := ScaleDCM(d1, r1)
	mDDot := AddDCM(ScaleDCM(d2, r1*r1), ScaleDCM(d1, r2))
	mDDDot := AddDCM(
		AddDCM(ScaleDCM(d3, r1*r1*r1), ScaleDCM(d2, 3*r1*r2)),
		ScaleDCM(d1, r3),
	)
	return [4]DCM{m, mDot, mDDot, mDDDot}
}

// angleToRot composes the elementary rotations of seq, in sequence order,
// via ComposeDerivatives, realizing the convention M = A₃·A₂·A₁
// (rightmost rotation applied first, i.e. angles[0]).
func angleToRot(seq Sequence, order Order, angles []AngleDerivs) ([4]DCM, error) {
	axes, err := axesForSequence(seq)
	if err != nil {
		return [4]DCM{}, err
	}
	if len(angles) != len(axes) {
		return [4]DCM{}, ErrDimensionMismatch
	}

	result := [4]DCM{Identity(), {}, {}, {}}
	for i, axis := range axes {
		elem := elementaryRot(axis, angles[i])
		result = ComposeDerivatives(elem, result, order)
	}
	return result, nil
}

// AngleToDCM builds a DCM from one to three Euler angles over seq.
func AngleToDCM(seq Sequence, thetas ...float64) (DCM, error) {
	angles := make([]AngleDerivs, len(thetas))
	for i, th := range thetas {
		angles[i] = AngleDerivs{Theta: th}
	}
	r, err := angleToRot(seq, Order1, angles)
	if err != nil {
		return DCM{}, err
	}
	return r[0], nil
}

// AngleToDeltaDCM builds a DCM and its first time derivative from Euler
// angles augmented with rates.
func AngleToDeltaDCM(seq Sequence, angles ...AngleDerivs) (m, mDot DCM, err error) {
	r, err := angleToRot(seq, Order2, angles)
	if err != nil {
		return DCM{}, DCM{}, err
	}
	return r[0], r[1], nil
}

// AngleToDelta2DCM builds a DCM and its first and second time derivatives
// from Euler angles augmented with rates and accelerations.
func AngleToDelta2DCM(seq Sequence, angles ...AngleDerivs) (m, mDot, mDDot DCM, err error) {
	r, err := angleToRot(seq, Order3, angles)
	if err != nil {
		return DCM{}, DCM{}, DCM{}, err
	}
	return r[0], r[1], r[2], nil
}

// AngleToDelta3DCM builds a DCM and its first, second, and third time
// derivatives from Euler angles augmented with rates, accelerations, and
// jerks.
func AngleToDelta3DCM(seq Sequence, angles ...AngleDerivs) (m, mDot, mDDot, mDDDot DCM, err error) {
	r, err := angleToRot(seq, Order4, angles)
	if err != nil {
		return DCM{}, DCM{}, DCM{}, DCM{}, err
	}
	return r[0], r[1], r[2], r[3], nil
}
