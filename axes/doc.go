// Package axes implements the axes subsystem: a rooted tree of
// coordinate-axes nodes, each carrying a Producer that materializes a
// rotation.Rot (source axes → this node's axes) at a requested epoch and
// derivative order.
//
// What
//
//   - System wraps a graph.Graph of axes nodes and exposes four
//     registration operations: AddInertial, AddFixedOffset, AddRotating,
//     AddComputable.
//   - Each node class is a Producer: Inertial returns identity at every
//     order; FixedOffset returns a constant DCM; Rotating evaluates a
//     caller-supplied, Jet-valued time function and reads derivatives
//     straight off the resulting autodiff.Jet components; Computable
//     derives orientation from two state vectors via the dcm package's
//     two-vectors construction.
//   - StateLookup is the callback type a Computable producer uses to
//     pull point-graph state at query time, so this package never
//     imports the points package — the evaluator (frame) supplies the
//     closure at query time, and a PointExistsFunc closure at
//     registration time for validating point references.
//
// Why
//
//   - Keeping axes ignorant of points and of the evaluator's cache
//     mechanics means the dependency graph stays one-directional: points
//     and frame both import axes, axes imports neither.
package axes
