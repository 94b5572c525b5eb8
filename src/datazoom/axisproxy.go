package datazoom

import (
	"fmt"
	"math"
	"time"

	"github.com/YouCunzhou/echarts/src/chartlog"
	"github.com/YouCunzhou/echarts/src/model"
	"github.com/YouCunzhou/echarts/src/numutil"
	"github.com/YouCunzhou/echarts/src/scale"
	"github.com/YouCunzhou/echarts/src/series"
)

// pixelSpanGuess is the assumed display width, in pixels, a value window is
// spread over when estimating how many digits of a computed bound are worth
// writing back into the axis options.
const pixelSpanGuess = 500.0

// AxisProxy owns the zoom state of one concrete axis: the resolved value and
// percent windows, the cached data extent, and a backup of the axis's
// original bounds for exact restoration. A proxy may be reachable from
// several zoom controls sharing the axis, but only its current owner can
// mutate it; calls presenting any other owner are silently ignored.
type AxisProxy struct {
	dim       model.Dim
	axisIndex int
	owner     *Model
	global    *model.Global

	backup        *axisBackup
	dataExtent    [2]float64
	valueWindow   *[2]float64
	percentWindow *[2]float64
}

// axisBackup is the axis's pre-zoom configuration: the explicit numeric-scale
// flag and the explicit min/max bounds (nil when the axis was on automatic
// extent).
type axisBackup struct {
	scale    bool
	min, max *float64
}

func newAxisProxy(dim model.Dim, axisIndex int, g *model.Global, owner *Model) *AxisProxy {
	return &AxisProxy{
		dim:        dim,
		axisIndex:  axisIndex,
		owner:      owner,
		global:     g,
		dataExtent: [2]float64{math.Inf(1), math.Inf(-1)},
	}
}

// IsOwnedBy reports whether owner is the proxy's current owner.
func (p *AxisProxy) IsOwnedBy(owner *Model) bool { return owner != nil && p.owner == owner }

// Dim returns the axis role this proxy governs.
func (p *AxisProxy) Dim() model.Dim { return p.dim }

// AxisIndex returns the concrete axis index this proxy governs.
func (p *AxisProxy) AxisIndex() int { return p.axisIndex }

// AxisModel returns the governed axis, or nil when it is not registered.
func (p *AxisProxy) AxisModel() model.AxisModel {
	return p.global.Axis(p.dim, p.axisIndex)
}

// PairedAxis returns the orthogonal axis sharing this axis's coordinate
// system, or nil.
func (p *AxisProxy) PairedAxis() model.AxisModel {
	ax := p.AxisModel()
	if ax == nil {
		return nil
	}
	return p.global.PairedAxis(ax)
}

// CaptureBackup snapshots the axis's original scale flag and explicit bounds.
// Captured once; later calls and calls from non-owners are no-ops.
func (p *AxisProxy) CaptureBackup(owner *Model) {
	if !p.IsOwnedBy(owner) || p.backup != nil {
		return
	}
	ax := p.AxisModel()
	if ax == nil {
		return
	}
	b := &axisBackup{}
	if v, ok := ax.Get("scale", true).(bool); ok {
		b.scale = v
	}
	b.min = optionFloat(ax.Get("min", true))
	b.max = optionFloat(ax.Get("max", true))
	p.backup = b
}

// DataExtent returns the cached [min,max] data extent; [+Inf,-Inf] when no
// bound series contributed values.
func (p *AxisProxy) DataExtent() [2]float64 { return p.dataExtent }

// ValueWindow returns the resolved zoom bounds in value units. The boolean is
// false while no window is resolved.
func (p *AxisProxy) ValueWindow() ([2]float64, bool) {
	if p.valueWindow == nil {
		return [2]float64{}, false
	}
	return *p.valueWindow, true
}

// PercentWindow returns the resolved zoom bounds in percent of the data
// extent. The boolean is false while no window is resolved.
func (p *AxisProxy) PercentWindow() ([2]float64, bool) {
	if p.percentWindow == nil {
		return [2]float64{}, false
	}
	return *p.percentWindow, true
}

// BoundSeries returns every registered series bound to this axis.
func (p *AxisProxy) BoundSeries() []*series.Series {
	var out []*series.Series
	p.global.EachSeries(func(s *series.Series) {
		if s.BoundTo(string(p.dim), p.axisIndex) {
			out = append(out, s)
		}
	})
	return out
}

// ResolveWindow recomputes the data extent and both windows from the owner's
// current zoom request, then pushes the result onto the axis options. No-op
// for non-owners. Stages run strictly in order: extent, window, write-back.
func (p *AxisProxy) ResolveWindow(owner *Model) {
	if !p.IsOwnedBy(owner) {
		return
	}
	defer chartlog.TimeTrack(time.Now(), fmt.Sprintf("resolve axis %s/%d window", p.dim, p.axisIndex))
	ax := p.AxisModel()
	if ax == nil {
		chartlog.Warnf("axis %s/%d not registered; window not resolved", p.dim, p.axisIndex)
		return
	}
	p.dataExtent = p.calculateDataExtent()
	vw, pw := calculateDataWindow(owner, p.dataExtent, ax)
	p.valueWindow = &vw
	p.percentWindow = &pw
	chartlog.Debugf("axis %s/%d window value=[%g,%g] percent=[%g,%g]",
		p.dim, p.axisIndex, vw[0], vw[1], pw[0], pw[1])
	p.setAxisModel(false)
}

// RestoreWindow clears the resolved windows and restores the axis's original
// bounds from the backup. No-op for non-owners.
func (p *AxisProxy) RestoreWindow(owner *Model) {
	if !p.IsOwnedBy(owner) {
		return
	}
	p.valueWindow = nil
	p.percentWindow = nil
	p.setAxisModel(true)
}

// ApplyFilter filters or masks every bound series' data against the current
// value window. No-op for non-owners or while no window is resolved.
func (p *AxisProxy) ApplyFilter(owner *Model) {
	if !p.IsOwnedBy(owner) || p.valueWindow == nil {
		return
	}
	mode := owner.filterMode()
	if mode == FilterModeNone {
		return
	}
	if owner.FromToolbox {
		if paired := p.PairedAxis(); paired != nil && paired.Scale().Type() == scale.TypeOrdinal {
			mode = FilterModeEmpty
		}
	}
	lo, hi := p.valueWindow[0], p.valueWindow[1]
	inWindow := func(v float64) bool { return v >= lo && v <= hi }
	for _, s := range p.BoundSeries() {
		d := s.Data()
		if d == nil {
			continue
		}
		for _, dim := range s.DimensionsOnAxis(string(p.dim)) {
			if mode == FilterModeEmpty {
				d = d.Map(dim, func(v float64) float64 {
					if inWindow(v) {
						return v
					}
					return math.NaN()
				})
			} else {
				d = d.Filter(dim, inWindow)
			}
		}
		s.SetData(d)
	}
}

// calculateDataExtent folds every bound series' per-dimension extent into one
// running [min,max]. Series without data contribute nothing.
func (p *AxisProxy) calculateDataExtent() [2]float64 {
	ext := [2]float64{math.Inf(1), math.Inf(-1)}
	for _, s := range p.BoundSeries() {
		for _, dim := range s.DimensionsOnAxis(string(p.dim)) {
			lo, hi := s.DataExtent(dim)
			if lo < ext[0] {
				ext[0] = lo
			}
			if hi > ext[1] {
				ext[1] = hi
			}
		}
	}
	return ext
}

// calculateDataWindow resolves a zoom request into ascending value and
// percent windows. Per bound: an explicit percent wins; with neither bound
// given the percent defaults to its natural extreme (0 for start, 100 for
// end); a value-only bound is parsed through the axis scale and translated to
// a percent. Percent bounds travel across axis types, value bounds do not,
// hence the precedence.
func calculateDataWindow(m *Model, extent [2]float64, ax model.AxisModel) (valueWindow, percentWindow [2]float64) {
	pct := [2]*float64{m.Start, m.End}
	val := [2]*float64{m.StartValue, m.EndValue}
	for idx := 0; idx < 2; idx++ {
		var parsed *float64
		if val[idx] != nil {
			v := ax.Scale().Parse(*val[idx])
			parsed = &v
		}
		if pct[idx] != nil || parsed == nil {
			bp := float64(idx) * 100 // 0 for start, 100 for end
			if pct[idx] != nil {
				bp = *pct[idx]
			}
			valueWindow[idx] = numutil.LinearMap(bp, 0, 100, extent[0], extent[1], true)
			percentWindow[idx] = bp
		} else {
			valueWindow[idx] = *parsed
			percentWindow[idx] = numutil.LinearMap(*parsed, extent[0], extent[1], 0, 100, true)
		}
	}
	// start/end may arrive reversed, or degenerate extents may fold them over
	valueWindow[0], valueWindow[1] = numutil.AscPair(valueWindow[0], valueWindow[1])
	percentWindow[0], percentWindow[1] = numutil.AscPair(percentWindow[0], percentWindow[1])
	return valueWindow, percentWindow
}

// setAxisModel writes the resolved window (or, when restoring / showing the
// full range, the backed-up original bounds) onto the axis options. Computed
// bounds are rounded to the digits worth keeping at the assumed display
// resolution; an unusable digit count falls back to the original bounds.
// Each write goes through its own capability interface.
func (p *AxisProxy) setAxisModel(restore bool) {
	if p.backup == nil {
		return
	}
	ax := p.AxisModel()
	if ax == nil {
		return
	}
	if !restore && (p.percentWindow == nil || p.valueWindow == nil) {
		return
	}
	full := restore || (p.percentWindow[0] == 0 && p.percentWindow[1] == 100)
	precision := 0
	precisionOK := false
	if !restore {
		precision, precisionOK = numutil.PixelPrecision(p.valueWindow[0], p.valueWindow[1], pixelSpanGuess)
	}
	if cz, ok := ax.(model.CrossZeroSetter); ok {
		cz.SetNeedsCrossZero(full && !p.backup.scale)
	}
	useOrigin := full || !precisionOK
	if ms, ok := ax.(model.MinSetter); ok {
		if useOrigin {
			ms.SetMin(p.backup.min)
		} else {
			v := numutil.RoundFixed(p.valueWindow[0], precision)
			ms.SetMin(&v)
		}
	}
	if ms, ok := ax.(model.MaxSetter); ok {
		if useOrigin {
			ms.SetMax(p.backup.max)
		} else {
			v := numutil.RoundFixed(p.valueWindow[1], precision)
			ms.SetMax(&v)
		}
	}
}

func optionFloat(v any) *float64 {
	switch x := v.(type) {
	case float64:
		return &x
	case int:
		f := float64(x)
		return &f
	}
	return nil
}
