package frame

import (
	"github.com/arvo-space/frametx/axes"
	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/graph"
	"github.com/arvo-space/frametx/points"
)

// ThreadIndexFunc resolves the calling goroutine's cache slot index: the
// caller owns the thread/slot assignment (e.g. a worker pool stamping
// goroutine-local slot numbers 0..N-1); this package never inspects
// goroutine identity itself.
type ThreadIndexFunc func() int

// FrameSystem is the transform evaluator: it answers rotation and state
// queries against a companion axes.System and points.System by walking
// each graph's unique path and composing per-edge producer output.
type FrameSystem struct {
	Axes   *axes.System
	Points *points.System

	order       dcm.Order
	threadCount int
	threadIndex ThreadIndexFunc

	axesCache  map[graph.NodeId][]axesCacheSlot
	pointCache map[graph.NodeId][]pointCacheSlot
}

// Config configures a FrameSystem at construction.
type Config func(*FrameSystem)

// WithThreadCount sizes the per-node cache to n slots (default 1). Use
// together with WithThreadIndex when queries arrive from more than one
// goroutine.
func WithThreadCount(n int) Config {
	return func(fs *FrameSystem) {
		if n > 0 {
			fs.threadCount = n
		}
	}
}

// WithThreadIndex supplies the function this FrameSystem calls to
// resolve which cache slot the calling goroutine owns. The default
// always returns 0, correct only for single-goroutine use.
func WithThreadIndex(f ThreadIndexFunc) Config {
	return func(fs *FrameSystem) {
		if f != nil {
			fs.threadIndex = f
		}
	}
}

// New builds a FrameSystem over axesSys and pointsSys, supporting
// derivative queries up to order, and pre-sizes its per-node caches by
// walking every node id currently registered in both graphs. Nodes
// registered in either system after New returns are still queryable —
// they simply bypass the cache, always invoking their producer directly.
func New(axesSys *axes.System, pointsSys *points.System, order dcm.Order, opts ...Config) *FrameSystem {
	fs := &FrameSystem{
		Axes:        axesSys,
		Points:      pointsSys,
		order:       order,
		threadCount: 1,
		threadIndex: func() int { return 0 },
		axesCache:   make(map[graph.NodeId][]axesCacheSlot),
		pointCache:  make(map[graph.NodeId][]pointCacheSlot),
	}
	for _, opt := range opts {
		opt(fs)
	}
	fs.buildCaches()
	return fs
}
