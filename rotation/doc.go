// Package rotation implements the rotation container: a fixed-arity
// tuple of up to four DCMs — the rotation itself and its first, second,
// and third time derivatives — together with the Leibniz-product
// composition law and the transpose-based inverse law.
//
// What
//
//   - Rot is the tuple (M, Ṁ, M̈, M⃛) truncated to an Order, carried as a
//     fixed [4]dcm.DCM array so a Rot never escapes to the heap on its own.
//   - Identity builds the order-appropriate identity rotation.
//   - Compose implements C = A·B via dcm.ComposeDerivatives.
//   - Inverse implements componentwise transpose via dcm.InverseDerivatives.
//
// Why
//
//   - Every axes producer and the evaluator's per-edge accumulation
//     operate on Rot values rather than raw dcm.DCM tuples, so the
//     Leibniz/transpose laws live in exactly one place and graph code never
//     re-derives them.
package rotation
