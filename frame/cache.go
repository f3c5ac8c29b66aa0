package frame

import (
	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/graph"
	"github.com/arvo-space/frametx/rotation"
	"github.com/arvo-space/frametx/state"
)

// axesCacheSlot is one thread's memoized axes-node rotation: a per-
// thread cache entry. A slot is valid only when stampedOrder covers a
// query's requested order at the exact epoch it was stamped for.
type axesCacheSlot struct {
	valid        bool
	epoch        float64
	stampedOrder dcm.Order
	rot          rotation.Rot
}

func (s axesCacheSlot) hit(epoch float64, order dcm.Order) bool {
	return s.valid && s.epoch == epoch && s.stampedOrder.Count() >= order.Count()
}

// pointCacheSlot is the state.State analogue of axesCacheSlot.
type pointCacheSlot struct {
	valid        bool
	epoch        float64
	stampedOrder dcm.Order
	s            state.State
}

func (s pointCacheSlot) hit(epoch float64, order dcm.Order) bool {
	return s.valid && s.epoch == epoch && s.stampedOrder.Count() >= order.Count()
}

// buildCaches pre-sizes one cache slot per thread for every node id
// currently registered in both graphs. Nodes registered after this call
// bypass the cache entirely (their queries always invoke the producer) —
// a deliberate simplification documented in FrameSystem's constructor.
func (fs *FrameSystem) buildCaches() {
	for _, id := range fs.Axes.Graph().IDs() {
		fs.axesCache[id] = make([]axesCacheSlot, fs.threadCount)
	}
	for _, id := range fs.Points.Graph().IDs() {
		fs.pointCache[id] = make([]pointCacheSlot, fs.threadCount)
	}
}

// threadSlot returns the calling thread's index into a node's n-slot
// cache, or -1 if that index falls outside [0, n) — signaling "bypass the
// cache". Nodes with no pre-built cache (late registration) are detected
// by the callers before this is reached.
func (fs *FrameSystem) threadSlot(n int) int {
	idx := fs.threadIndex()
	if idx < 0 || idx >= n {
		return -1
	}
	return idx
}

func (fs *FrameSystem) axesCacheGet(id graph.NodeId, epoch float64, order dcm.Order) (rotation.Rot, bool) {
	slots, ok := fs.axesCache[id]
	if !ok {
		return rotation.Rot{}, false
	}
	i := fs.threadSlot(len(slots))
	if i < 0 || !slots[i].hit(epoch, order) {
		return rotation.Rot{}, false
	}
	return slots[i].rot, true
}

func (fs *FrameSystem) axesCachePut(id graph.NodeId, epoch float64, order dcm.Order, r rotation.Rot) {
	slots, ok := fs.axesCache[id]
	if !ok {
		return
	}
	i := fs.threadSlot(len(slots))
	if i < 0 {
		return
	}
	slots[i] = axesCacheSlot{valid: true, epoch: epoch, stampedOrder: order, rot: r}
}

func (fs *FrameSystem) pointCacheGet(id graph.NodeId, epoch float64, order dcm.Order) (state.State, bool) {
	slots, ok := fs.pointCache[id]
	if !ok {
		return state.State{}, false
	}
	i := fs.threadSlot(len(slots))
	if i < 0 || !slots[i].hit(epoch, order) {
		return state.State{}, false
	}
	return slots[i].s, true
}

func (fs *FrameSystem) pointCachePut(id graph.NodeId, epoch float64, order dcm.Order, s state.State) {
	slots, ok := fs.pointCache[id]
	if !ok {
		return
	}
	i := fs.threadSlot(len(slots))
	if i < 0 {
		return
	}
	slots[i] = pointCacheSlot{valid: true, epoch: epoch, stampedOrder: order, s: s}
}
