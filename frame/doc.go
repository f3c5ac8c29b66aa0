// Package frame implements the transform evaluator: it ties an
// axes.System and a points.System together and answers rotation and
// state queries by walking each graph's unique path (graph.GetPath) and
// composing per-edge producer output via rotation.Compose/state.TransformBy,
// with a per-node, per-thread cache so repeated queries at the same epoch
// are cheap.
//
// What
//
//   - FrameSystem is the query entry point: Rotation(from, to, epoch,
//     order) and State(from, to, axes, epoch, order) are the two query
//     shapes; LightTimeState implements the optional iterative
//     light-time correction.
//   - Per-node caches are plain slices indexed by a caller-supplied
//     ThreadIndexFunc, never a package-level goroutine-local mechanism:
//     slot i is written only by thread i.
//
// Why
//
//   - Keeping the path walk, the Leibniz composition, and the cache
//     bookkeeping in one package means axes and points stay ignorant of
//     how their producers get invoked or memoized; they only implement
//     the producer contract.
package frame
