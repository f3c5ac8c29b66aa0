// Package state implements the state vector container: a fixed-arity
// tuple of up to four 3-vectors — position, velocity, acceleration,
// jerk — with componentwise algebra and the rotation application rule
// (the product of a rotation.Rot and a State).
//
// What
//
//   - State is the tuple (r, v, a, j) truncated to an Order, carried as a
//     fixed [4]dcm.Vec3 array.
//   - Add, Sub, Scale are componentwise.
//   - TransformBy applies a rotation.Rot to a State via the Leibniz rule
//     `s'_k = Σ_{j=0..k} C(k,j)·R_{k-j}·s_j`, the same combinatorics
//     dcm.ComposeDerivatives uses for DCM composition, specialized to a
//     matrix-vector product.
//
// Why
//
//   - Point producers and the evaluator's per-edge accumulation both need
//     to rotate and accumulate State values along a graph path; keeping
//     the chain-rule product in one place means neither has to re-derive
//     the Leibniz sum over matrix-vector products.
package state
