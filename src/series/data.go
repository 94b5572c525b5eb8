package series

import "math"

// Data is an immutable columnar view of one series' points: one float column
// per data dimension, all columns the same length. Transforms (Map, Filter)
// return a new handle and leave the receiver untouched, so older views stay
// valid for readers that captured them.
type Data struct {
	dims []string
	cols map[string][]float64
	n    int
}

// NewData builds a handle from parallel columns. Columns shorter than the
// longest are padded with NaN so ragged input never panics downstream.
func NewData(dims []string, cols ...[]float64) *Data {
	n := 0
	for _, c := range cols {
		if len(c) > n {
			n = len(c)
		}
	}
	m := make(map[string][]float64, len(dims))
	for i, dim := range dims {
		col := make([]float64, n)
		for j := range col {
			if i < len(cols) && j < len(cols[i]) {
				col[j] = cols[i][j]
			} else {
				col[j] = math.NaN()
			}
		}
		m[dim] = col
	}
	return &Data{dims: append([]string(nil), dims...), cols: m, n: n}
}

// Count returns the number of points.
func (d *Data) Count() int { return d.n }

// Dimensions returns the data dimension names in declaration order.
func (d *Data) Dimensions() []string { return append([]string(nil), d.dims...) }

// Values returns a copy of one dimension's column, or nil for an unknown
// dimension.
func (d *Data) Values(dim string) []float64 {
	col, ok := d.cols[dim]
	if !ok {
		return nil
	}
	return append([]float64(nil), col...)
}

// Extent scans one dimension for its min/max, skipping NaN. An empty or
// all-NaN column yields (+Inf, -Inf) so callers can fold extents with min/max
// without special-casing.
func (d *Data) Extent(dim string) (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range d.cols[dim] {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Map returns a new handle with fn applied to every value of dim. Other
// columns are shared with the receiver; no transform ever writes through a
// shared column.
func (d *Data) Map(dim string, fn func(float64) float64) *Data {
	src, ok := d.cols[dim]
	if !ok {
		return d
	}
	mapped := make([]float64, len(src))
	for i, v := range src {
		mapped[i] = fn(v)
	}
	cols := make(map[string][]float64, len(d.cols))
	for k, c := range d.cols {
		cols[k] = c
	}
	cols[dim] = mapped
	return &Data{dims: d.dims, cols: cols, n: d.n}
}

// Filter returns a new handle keeping only the points whose value along dim
// satisfies keep. Whole points are removed, so every column shrinks in step
// and index alignment across dimensions is preserved.
func (d *Data) Filter(dim string, keep func(float64) bool) *Data {
	src, ok := d.cols[dim]
	if !ok {
		return d
	}
	var idx []int
	for i, v := range src {
		if keep(v) {
			idx = append(idx, i)
		}
	}
	cols := make(map[string][]float64, len(d.cols))
	for k, c := range d.cols {
		out := make([]float64, len(idx))
		for j, i := range idx {
			out[j] = c[i]
		}
		cols[k] = out
	}
	return &Data{dims: d.dims, cols: cols, n: len(idx)}
}
