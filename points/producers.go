package points

import (
	"sync"

	"github.com/arvo-space/frametx/autodiff"
	"github.com/arvo-space/frametx/dcm"
	"github.com/arvo-space/frametx/graph"
	"github.com/arvo-space/frametx/providers"
	"github.com/arvo-space/frametx/state"
)

// rootProducer returns zero state at every order.
type rootProducer struct{}

func (rootProducer) Produce(_ float64, order dcm.Order) (state.State, error) {
	return state.Zero(order), nil
}

// fixedProducer returns a constant offset with zero higher derivatives.
type fixedProducer struct {
	offset dcm.Vec3
}

func (p fixedProducer) Produce(_ float64, order dcm.Order) (state.State, error) {
	return state.State{Order: order, Tuple: [4]dcm.Vec3{p.offset, {}, {}, {}}}, nil
}

// ephemerisProducer delegates to a providers.EphemerisProvider.
type ephemerisProducer struct {
	provider providers.EphemerisProvider
	target   graph.NodeId
	center   graph.NodeId
}

func (p ephemerisProducer) Produce(t float64, order dcm.Order) (state.State, error) {
	blocks, err := p.provider.Compute(order.Count()-1, p.target, p.center, t)
	if err != nil {
		return state.State{}, err
	}
	var tuple [4]dcm.Vec3
	for i := 0; i < order.Count() && i < len(blocks); i++ {
		tuple[i] = blocks[i]
	}
	return state.State{Order: order, Tuple: tuple}, nil
}

// updatableProducer holds the last externally-written state. mu guards
// the stamp against a concurrent Update call from an external writer
// thread while queries are in flight, since Update is not part of the
// otherwise single-writer graph-build phase.
type updatableProducer struct {
	mu      sync.RWMutex
	stamped bool
	epoch   float64
	order   dcm.Order
	value   state.State
}

func (p *updatableProducer) Produce(t float64, order dcm.Order) (state.State, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.stamped || p.epoch != t || p.order.Count() < order.Count() {
		return state.State{}, ErrNotUpdated
	}
	return p.value, nil
}

func (p *updatableProducer) update(s state.State, epoch float64, order dcm.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value, p.epoch, p.order, p.stamped = s, epoch, order, true
}

// dynamicalProducer evaluates a Jet-valued time function.
type dynamicalProducer struct {
	f DynamicalFunc
}

func (p dynamicalProducer) Produce(t float64, order dcm.Order) (state.State, error) {
	jt := autodiff.Var(t)
	jv := p.f(jt)

	tuple := [4]dcm.Vec3{
		{jv[0].V, jv[1].V, jv[2].V},
		{jv[0].D1, jv[1].D1, jv[2].D1},
		{jv[0].D2, jv[1].D2, jv[2].D2},
		{jv[0].D3, jv[1].D3, jv[2].D3},
	}
	return state.State{Order: order, Tuple: tuple}, nil
}
