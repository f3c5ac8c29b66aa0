// Package points implements the points subsystem: a rooted tree of point
// nodes, each carrying a Producer that materializes a state.State (the
// point's position/velocity/acceleration/jerk relative to its parent, in
// the point's declared axes) at a requested epoch and order.
//
// What
//
//   - System wraps a graph.Graph of point nodes and exposes five
//     registration operations: AddRoot, AddFixed, AddEphemeris,
//     AddUpdatable, AddDynamical.
//   - Root returns zero state; Fixed returns a constant offset; Ephemeris
//     delegates to a providers.EphemerisProvider; Updatable returns the
//     last externally-written state, failing closed on a stale read;
//     Dynamical evaluates a Jet-valued time function the same way
//     axes.RotatingFunc does, reading missing derivatives off the
//     resulting Jet components.
//
// Why
//
//   - This package imports axes (to validate a point's declared axes id
//     at registration) but axes never imports points, so the dependency
//     graph has no cycle; the frame package ties the two graphs together
//     at query time.
package points
