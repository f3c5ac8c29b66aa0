// Package dcm implements the rotation kernel: direction cosine matrices,
// their Euler-angle construction and time derivatives up to third order,
// classical Gram-Schmidt orthonormalization, and the two-vectors frame
// construction and its higher-order analogues.
//
// What
//
//   - DCM is a 3×3 orthonormal proper rotation, stored as a plain
//     [3][3]float64 so Rot and State containers stay stack-allocated and
//     heap-free in the query hot path.
//   - AngleToDCM/AngleToDeltaDCM/AngleToDelta2DCM/AngleToDelta3DCM build a
//     DCM (and its derivatives) from one to three Euler angles over any of
//     the 21 symbolic sequences (3 singletons, 6 pairs, 12 triplets).
//   - Rot3/Rot6/Rot9/Rot12 build a DCM (and derivatives) from a primary and
//     secondary vector (and their derivatives) via the two-vectors
//     construction.
//   - Skew, DeltaDCM, and Orthonormalize are standalone low-level
//     primitives; the Euler-angle and two-vectors builders do not call them.
//
// Why
//
//   - Every higher component (rotation.Rot composition, axes producers,
//     the two-vectors Computable axes class) is built from these closed
//     kernels; keeping them in one package with no upward dependency
//     keeps the derivative math in a single, independently testable place.
//
// Derivative strategy
//
//   - Rather than 21 hand-written closed-form derivative tables, every
//     sequence is decomposed into its elementary single-axis rotations,
//     each differentiated in closed form with respect to its own angle,
//     chain-ruled against that angle's own time-derivatives (rate, accel,
//     jerk) via the same Faà di Bruno formula autodiff.Jet uses, and then
//     recomposed across axes with the Leibniz product rule
//     (ComposeDerivatives). This is mathematically identical to a
//     closed-form table for each of the 21 sequences; dcm_test.go checks
//     the Z singleton against closed-form reference values. The
//     implementation stays a small, uniform kernel instead of a sprawling
//     switch table.
//   - The two-vectors family (Rot3/Rot6/Rot9/Rot12) propagates input
//     vector derivatives through normalize/cross/dot analytically by
//     running those operators over autodiff.Jet-valued components rather
//     than plain floats, so the normalize/cross/dot derivative rule falls
//     out of Jet arithmetic instead of a second set of hand-derived
//     formulas.
package dcm
