// Package series models the series collaborator the zoom core consumes: a
// named collection of data points, bound to concrete axes per axis dimension
// role, exposing per-dimension extents and an immutable data handle.
package series

import "math"

// Series is one plotted data set. AxisIndex records which concrete axis the
// series is bound to for each axis dimension role; DimMap records which data
// dimensions are plotted along each role (most series map one data dimension
// per role, band/ohlc-style series map several onto the value role).
type Series struct {
	Name      string
	AxisIndex map[string]int
	DimMap    map[string][]string

	data *Data
}

// NewLine builds the common two-dimensional series: data dims "x" and "y",
// each mapped to the axis role of the same name, bound to axis 0 on both.
func NewLine(name string, xs, ys []float64) *Series {
	return &Series{
		Name:      name,
		AxisIndex: map[string]int{"x": 0, "y": 0},
		DimMap:    map[string][]string{"x": {"x"}, "y": {"y"}},
		data:      NewData([]string{"x", "y"}, xs, ys),
	}
}

// DimensionsOnAxis returns the data dimensions plotted along one axis role,
// in declaration order. Empty when the series has no mapping for the role.
func (s *Series) DimensionsOnAxis(axisDim string) []string {
	return append([]string(nil), s.DimMap[axisDim]...)
}

// BoundTo reports whether the series is bound to the given concrete axis.
func (s *Series) BoundTo(axisDim string, axisIndex int) bool {
	idx, ok := s.AxisIndex[axisDim]
	return ok && idx == axisIndex
}

// DataExtent returns the min/max of one data dimension, or (+Inf,-Inf) when
// the series has no data.
func (s *Series) DataExtent(dim string) (float64, float64) {
	if s.data == nil {
		return math.Inf(1), math.Inf(-1)
	}
	return s.data.Extent(dim)
}

// Data returns the current data handle; nil when the series carries no data.
func (s *Series) Data() *Data { return s.data }

// SetData swaps in a new data handle.
func (s *Series) SetData(d *Data) { s.data = d }
