package graph

import "errors"

var (
	// ErrDuplicateId is returned when AddVertex is called with an id
	// already present in the graph.
	ErrDuplicateId = errors.New("graph: duplicate node id")
	// ErrDuplicateName is returned when AddVertex is called with a name
	// alias already bound to a different id.
	ErrDuplicateName = errors.New("graph: duplicate node name")
	// ErrUnknownParent is returned when AddVertex names a parent id that
	// has not yet been registered.
	ErrUnknownParent = errors.New("graph: unknown parent id")
	// ErrUnknownNode is returned when a node id or name referenced by a
	// query (GetPath, lookup) has not been registered.
	ErrUnknownNode = errors.New("graph: unknown node")
	// ErrMultipleRoots is returned when AddVertex attempts to register a
	// second parentless node; each Graph is a single rooted tree.
	ErrMultipleRoots = errors.New("graph: graph already has a root")
	// ErrDisconnected is returned by GetPath when the two endpoints do
	// not share a root — never observed on a Graph built solely through
	// AddVertex, since every node chains back to the one root.
	ErrDisconnected = errors.New("graph: nodes share no common ancestor")
)
