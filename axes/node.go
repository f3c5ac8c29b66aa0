package axes

import (
	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/graph"
	"github.com/arvo-space/frametx/rotation"
)

// node is the payload stored in the axes System's graph: a node's class
// (kept for introspection/debugging) plus its Producer.
type node struct {
	class    Class
	producer Producer
}

// System is a rooted tree of axes nodes.
type System struct {
	g          *graph.Graph[*node]
	allowAccel bool
}

// Option configures a System at construction.
type Option func(*System)

// AllowAccelerationOrder opts a System into registering Computable axes
// whose vector descriptors declare Order3 (acceleration propagated
// through the two-vectors construction's normalize/cross/dot operators).
// This is an opt-in rather than a default because the second derivative
// of a normalized cross product is numerically sensitive near degenerate
// vector pairs; without this option, AddComputable rejects Order3
// descriptors with ErrOrderExceeded.
func AllowAccelerationOrder() Option {
	return func(s *System) { s.allowAccel = true }
}

// NewSystem returns an empty axes System.
func NewSystem(opts ...Option) *System {
	s := &System{g: graph.New[*node]()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasAxes reports whether id has been registered.
func (s *System) HasAxes(id graph.NodeId) bool {
	return s.g.HasVertex(id)
}

// Graph exposes the underlying graph.Graph so the evaluator (frame
// package) can compute paths between axes nodes.
func (s *System) Graph() *graph.Graph[*node] {
	return s.g
}

// ParentOf returns id's parent axes id and true, or false if id is this
// System's root.
func (s *System) ParentOf(id graph.NodeId) (graph.NodeId, bool, error) {
	return s.g.Parent(id)
}

// ClassOf returns the class of a registered axes node.
func (s *System) ClassOf(id graph.NodeId) (Class, error) {
	n, err := s.g.Payload(id)
	if err != nil {
		return 0, err
	}
	return n.class, nil
}

// Produce invokes id's own producer directly (not composed along any
// path).
func (s *System) Produce(id graph.NodeId, t float64, order dcm.Order, lookup StateLookup) (rotation.Rot, error) {
	n, err := s.g.Payload(id)
	if err != nil {
		return rotation.Rot{}, err
	}
	return n.producer.Produce(t, order, lookup)
}
