// Package graph implements the mapped graph: a directed tree keyed by a
// signed integer NodeId, with an auxiliary name-to-id alias table, and a
// BFS-based unique-path search that annotates each edge with its
// traversal direction (toward the root or away from it) so callers know
// whether to apply a node's transform or its inverse.
//
// What
//
//   - Graph[T] holds nodes of payload type T in a rooted tree: every
//     non-root node has exactly one parent, added before itself.
//   - HasVertex, AddVertex, AddEdge are the registration primitives;
//     registration is all-or-nothing — a failing call never mutates the
//     graph.
//   - GetPath returns the ordered edges along the unique path between two
//     nodes via their shared ancestor, each tagged Up or Down.
//
// Why
//
//   - Both the axes graph and the points graph are instances of this same
//     rooted-tree shape; keeping the graph, the name-alias table, and the
//     path search here once means neither subsystem reimplements
//     tree-walking.
//
// This package is adapted from the teacher library's all-in-one legacy
// graph package: the mutex-guarded map storage survives, generalized from
// string vertex ids and a general (possibly cyclic, possibly multi-parent)
// graph to an integer-keyed rooted tree with a single canonical path
// between any two nodes. Path search compares the two endpoints' ancestor
// chains; it does not keep a BFS queue.
package graph
