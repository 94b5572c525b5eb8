package model

import "github.com/YouCunzhou/echarts/src/series"

// Global is the chart-instance registry: every axis, series and component the
// chart carries, reachable by the zoom core without any process-wide state.
type Global struct {
	axes       map[Dim][]AxisModel
	seriesList []*series.Series
	components map[string][]any
}

func NewGlobal() *Global {
	return &Global{
		axes:       map[Dim][]AxisModel{},
		components: map[string][]any{},
	}
}

// AddAxis registers an axis under its own role and index.
func (g *Global) AddAxis(ax AxisModel) {
	g.axes[ax.Dim()] = append(g.axes[ax.Dim()], ax)
}

// Axis looks up the axis with the given role and index, or nil.
func (g *Global) Axis(dim Dim, index int) AxisModel {
	for _, ax := range g.axes[dim] {
		if ax.Index() == index {
			return ax
		}
	}
	return nil
}

// AddSeries registers a series.
func (g *Global) AddSeries(s *series.Series) {
	g.seriesList = append(g.seriesList, s)
}

// EachSeries visits every registered series in registration order.
func (g *Global) EachSeries(fn func(s *series.Series)) {
	for _, s := range g.seriesList {
		fn(s)
	}
}

// RegisterComponent appends a component instance under a kind key
// (e.g. "dataZoom"); its index is its registration position.
func (g *Global) RegisterComponent(kind string, comp any) {
	g.components[kind] = append(g.components[kind], comp)
}

// EachComponent visits every component of one kind.
func (g *Global) EachComponent(kind string, fn func(index int, comp any)) {
	for i, c := range g.components[kind] {
		fn(i, c)
	}
}

// GetComponent returns the component of one kind at index, or nil.
func (g *Global) GetComponent(kind string, index int) any {
	list := g.components[kind]
	if index < 0 || index >= len(list) {
		return nil
	}
	return list[index]
}

// PairedAxis returns the orthogonal axis sharing ax's coordinate system, or
// nil when the role has no pair or no such axis is registered.
func (g *Global) PairedAxis(ax AxisModel) AxisModel {
	other, ok := ax.Dim().Orthogonal()
	if !ok {
		return nil
	}
	for _, cand := range g.axes[other] {
		if cand.CoordIndex() == ax.CoordIndex() {
			return cand
		}
	}
	return nil
}
