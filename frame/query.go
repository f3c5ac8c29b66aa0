package frame

import (
	"github.com/arvo-space/frametx/axes"
	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/graph"
	"github.com/arvo-space/frametx/points"
	"github.com/arvo-space/frametx/rotation"
	"github.com/arvo-space/frametx/state"
)

// axesProduce invokes childID's producer, consulting and updating its
// cache slot.
func (fs *FrameSystem) axesProduce(childID graph.NodeId, epoch float64, order dcm.Order, lookup axes.StateLookup) (rotation.Rot, error) {
	if r, ok := fs.axesCacheGet(childID, epoch, order); ok {
		return r, nil
	}
	r, err := fs.Axes.Produce(childID, epoch, order, lookup)
	if err != nil {
		return rotation.Rot{}, err
	}
	fs.axesCachePut(childID, epoch, order, r)
	return r, nil
}

// pointsProduce invokes childID's own producer, consulting and updating
// its cache slot.
func (fs *FrameSystem) pointsProduce(childID graph.NodeId, epoch float64, order dcm.Order) (state.State, error) {
	if s, ok := fs.pointCacheGet(childID, epoch, order); ok {
		return s, nil
	}
	s, err := fs.Points.Produce(childID, epoch, order)
	if err != nil {
		return state.State{}, err
	}
	fs.pointCachePut(childID, epoch, order, s)
	return s, nil
}

// makeStateLookup builds the axes.StateLookup a Computable axes
// producer at childID (whose parent axes id is parentAxesID) consults
// to resolve its two vector descriptors: the descriptors' point states
// must be expressed in the Computable node's parent frame, since the
// two-vectors construction derives orientation relative to that frame.
func (fs *FrameSystem) makeStateLookup(parentAxesID graph.NodeId) axes.StateLookup {
	return func(point graph.NodeId, order dcm.Order, epoch float64) (state.State, error) {
		rootID, ok := fs.Points.RootID()
		if !ok {
			return state.State{}, points.ErrUnknownPoint
		}
		return fs.State(rootID, point, parentAxesID, epoch, order)
	}
}

// Rotation answers the orientation query: the DCM (and its derivatives
// up to order) that rotates a vector expressed in `from` axes into `to`
// axes at epoch. Rotation(x, x, ...) returns identity.
func (fs *FrameSystem) Rotation(from, to graph.NodeId, epoch float64, order dcm.Order) (rotation.Rot, error) {
	if order.Count() > fs.order.Count() {
		return rotation.Rot{}, ErrOrderExceeded
	}

	path, err := fs.Axes.Graph().GetPath(from, to)
	if err != nil {
		return rotation.Rot{}, err
	}

	acc := rotation.Identity(order)
	for _, edge := range path {
		childID := edge.To
		if edge.Dir == graph.Up {
			childID = edge.From
		}

		var lookup axes.StateLookup
		class, err := fs.Axes.ClassOf(childID)
		if err != nil {
			return rotation.Rot{}, err
		}
		if class == axes.Computable {
			parentID, hasParent, err := fs.Axes.ParentOf(childID)
			if err != nil {
				return rotation.Rot{}, err
			}
			if hasParent {
				lookup = fs.makeStateLookup(parentID)
			}
		}

		local, err := fs.axesProduce(childID, epoch, order, lookup)
		if err != nil {
			return rotation.Rot{}, err
		}

		step := local
		if edge.Dir == graph.Up {
			step = rotation.Inverse(local)
		}
		acc = rotation.Compose(step, acc)
	}
	return acc, nil
}

// State answers the state query: the position/velocity/acceleration/
// jerk of `to` relative to `from`, expressed in axesID, at epoch.
// State(x, x, ...) returns the zero state.
func (fs *FrameSystem) State(from, to, axesID graph.NodeId, epoch float64, order dcm.Order) (state.State, error) {
	if order.Count() > fs.order.Count() {
		return state.State{}, ErrOrderExceeded
	}

	path, err := fs.Points.Graph().GetPath(from, to)
	if err != nil {
		return state.State{}, err
	}

	acc := state.Zero(order)
	for _, edge := range path {
		childID := edge.To
		if edge.Dir == graph.Up {
			childID = edge.From
		}

		childState, err := fs.pointsProduce(childID, epoch, order)
		if err != nil {
			return state.State{}, err
		}
		childAxes, err := fs.Points.AxesOf(childID)
		if err != nil {
			return state.State{}, err
		}

		leg := childState
		if childAxes != axesID {
			r, err := fs.Rotation(childAxes, axesID, epoch, order)
			if err != nil {
				return state.State{}, err
			}
			leg = state.TransformBy(r, childState)
		}

		if edge.Dir == graph.Up {
			acc = state.Sub(acc, leg)
		} else {
			acc = state.Add(acc, leg)
		}
	}
	return acc, nil
}

// LightTimeState answers the optional light-time corrected query: the
// state of `to` relative to `from`, expressed in axesID, as
// seen at reception time tRecv after signal travel at speed c, found by
// fixed-point iteration on the emission epoch
// `t_emit = t_recv - |r(t_emit)| / c`. It returns ErrLightTimeNoConverge
// if the iteration has not settled within tol after maxIter steps.
func (fs *FrameSystem) LightTimeState(from, to, axesID graph.NodeId, tRecv float64, order dcm.Order, c, tol float64, maxIter int) (state.State, float64, error) {
	tEmit := tRecv
	for i := 0; i < maxIter; i++ {
		s, err := fs.State(from, to, axesID, tEmit, order)
		if err != nil {
			return state.State{}, 0, err
		}
		r := dcm.Norm(s.At(0))
		next := tRecv - r/c
		if abs(next-tEmit) < tol {
			s, err := fs.State(from, to, axesID, next, order)
			return s, next, err
		}
		tEmit = next
	}
	return state.State{}, 0, ErrLightTimeNoConverge
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
