package datazoom

import "github.com/YouCunzhou/echarts/src/model"

type proxyKey struct {
	dim   model.Dim
	index int
}

// Registry holds the axis proxies of one chart instance, keyed by
// (role, axis index). Proxies are created on first acquisition and torn down
// with their axis; there is no process-wide state.
type Registry struct {
	global  *model.Global
	proxies map[proxyKey]*AxisProxy
}

func NewRegistry(g *model.Global) *Registry {
	return &Registry{global: g, proxies: map[proxyKey]*AxisProxy{}}
}

// Acquire returns the proxy for one axis, creating it on first call. The
// creating owner becomes the proxy's owner and the axis backup is captured
// immediately; a later caller with a different owner gets the shared proxy
// but no ownership.
func (r *Registry) Acquire(dim model.Dim, index int, owner *Model) *AxisProxy {
	k := proxyKey{dim, index}
	if p, ok := r.proxies[k]; ok {
		return p
	}
	p := newAxisProxy(dim, index, r.global, owner)
	p.CaptureBackup(owner)
	r.proxies[k] = p
	return p
}

// Get returns the proxy for one axis, or nil when none was acquired.
func (r *Registry) Get(dim model.Dim, index int) *AxisProxy {
	return r.proxies[proxyKey{dim, index}]
}

// Release drops the proxy for one axis; call when the axis itself is torn
// down.
func (r *Registry) Release(dim model.Dim, index int) {
	delete(r.proxies, proxyKey{dim, index})
}

// Each visits every live proxy.
func (r *Registry) Each(fn func(p *AxisProxy)) {
	for _, p := range r.proxies {
		fn(p)
	}
}
