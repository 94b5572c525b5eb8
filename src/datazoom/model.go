package datazoom

import "github.com/YouCunzhou/echarts/src/model"

// Filter modes for out-of-window points.
const (
	// FilterModeFilter removes out-of-window points.
	FilterModeFilter = "filter"
	// FilterModeEmpty masks out-of-window values with NaN, preserving
	// point count and index alignment.
	FilterModeEmpty = "empty"
	// FilterModeNone zooms the axis range without touching series data.
	FilterModeNone = "none"
)

// Model is one zoom-control owner's configuration. Start/End are percents of
// the data extent (0-100), StartValue/EndValue are bounds in axis value
// units; any of the four may be unset. An explicit percent always wins over a
// value bound for the same end. The Model's pointer identity is the ownership
// token proxies check before mutating.
type Model struct {
	Start      *float64
	End        *float64
	StartValue *float64
	EndValue   *float64

	// FilterMode selects how out-of-window points are handled; empty string
	// means FilterModeFilter.
	FilterMode string

	// FromToolbox marks zoom requests driven by the global toolbar; those
	// force FilterModeEmpty when the paired orthogonal axis is categorical,
	// since removing points would desynchronize category index alignment.
	FromToolbox bool

	// AxisIndexes lists the concrete axes this control drives, per role.
	AxisIndexes map[model.Dim][]int
}

// EachTargetAxis visits every (role, axis index) pair the model controls.
func (m *Model) EachTargetAxis(fn func(dim model.Dim, index int)) {
	for dim, idxs := range m.AxisIndexes {
		for _, i := range idxs {
			fn(dim, i)
		}
	}
}

func (m *Model) filterMode() string {
	if m.FilterMode == "" {
		return FilterModeFilter
	}
	return m.FilterMode
}

// Float returns a pointer to v, for filling the optional bound fields.
func Float(v float64) *float64 { return &v }
