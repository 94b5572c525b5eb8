package model

import "github.com/YouCunzhou/echarts/src/scale"

// AxisModel is the read surface every axis implementation exposes to the zoom
// core. Mutation is optional and capability-checked: implementations that can
// accept written bounds additionally satisfy MinSetter / MaxSetter /
// CrossZeroSetter, and the write-back probes each one independently.
type AxisModel interface {
	// Get reads a named option ("scale", "min", "max", "type", ...). With
	// ignoreParent only explicitly configured values are returned; inherited
	// defaults are skipped.
	Get(option string, ignoreParent bool) any
	Dim() Dim
	Index() int
	// CoordIndex identifies the coordinate system (grid, polar) this axis
	// belongs to; orthogonal axes pair up by sharing it.
	CoordIndex() int
	Scale() scale.Scale
}

// MinSetter accepts a written lower bound; nil restores automatic extent.
type MinSetter interface {
	SetMin(v *float64)
}

// MaxSetter accepts a written upper bound; nil restores automatic extent.
type MaxSetter interface {
	SetMax(v *float64)
}

// CrossZeroSetter accepts the "range must include zero" scale property.
type CrossZeroSetter interface {
	SetNeedsCrossZero(b bool)
}

// CartesianAxis is the standard grid axis. Options live in two layers:
// explicitly configured values and inherited defaults; Get consults the
// defaults only when ignoreParent is false.
type CartesianAxis struct {
	dim      Dim
	index    int
	opts     map[string]any
	defaults map[string]any
	scl      scale.Scale

	needsCrossZero bool
}

// NewCartesianAxis builds an axis for one role and index. The "type" option
// picks the scale ("value", "category", "time"); absent means "value".
func NewCartesianAxis(dim Dim, index int, opts map[string]any) *CartesianAxis {
	if opts == nil {
		opts = map[string]any{}
	}
	typ, _ := opts["type"].(string)
	return &CartesianAxis{
		dim:      dim,
		index:    index,
		opts:     opts,
		defaults: map[string]any{"scale": false, "type": scale.TypeInterval, "gridIndex": 0},
		scl:      scale.ForType(typ),
	}
}

func (a *CartesianAxis) Get(option string, ignoreParent bool) any {
	if v, ok := a.opts[option]; ok {
		return v
	}
	if ignoreParent {
		return nil
	}
	return a.defaults[option]
}

func (a *CartesianAxis) Dim() Dim           { return a.dim }
func (a *CartesianAxis) Index() int         { return a.index }
func (a *CartesianAxis) Scale() scale.Scale { return a.scl }

func (a *CartesianAxis) CoordIndex() int {
	if v, ok := a.opts["gridIndex"].(int); ok {
		return v
	}
	return 0
}

// SetMin writes the lower bound option; nil clears it back to automatic.
func (a *CartesianAxis) SetMin(v *float64) {
	if v == nil {
		delete(a.opts, "min")
		return
	}
	a.opts["min"] = *v
}

// SetMax writes the upper bound option; nil clears it back to automatic.
func (a *CartesianAxis) SetMax(v *float64) {
	if v == nil {
		delete(a.opts, "max")
		return
	}
	a.opts["max"] = *v
}

func (a *CartesianAxis) SetNeedsCrossZero(b bool) { a.needsCrossZero = b }

// NeedsCrossZero reports the last written cross-zero property.
func (a *CartesianAxis) NeedsCrossZero() bool { return a.needsCrossZero }
