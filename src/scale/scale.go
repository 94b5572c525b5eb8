// Package scale holds the axis scale types the zoom core parses raw values
// through. A scale normalizes a raw number into the axis's internal
// representation: interval axes keep it as-is, ordinal (category) axes snap
// to the nearest index, time axes snap to whole milliseconds.
package scale

import "math"

// Scale kind identifiers, matched against an axis's "type" option.
const (
	TypeInterval = "value"
	TypeOrdinal  = "category"
	TypeTime     = "time"
)

// Scale normalizes raw values for one axis.
type Scale interface {
	// Parse converts a raw number into the scale's internal representation.
	Parse(raw float64) float64
	// Type identifies the scale kind (TypeInterval, TypeOrdinal, TypeTime).
	Type() string
}

// Interval is the plain continuous numeric scale.
type Interval struct{}

func (Interval) Parse(raw float64) float64 { return raw }
func (Interval) Type() string              { return TypeInterval }

// Ordinal is a categorical scale; values are category indexes.
type Ordinal struct{}

func (Ordinal) Parse(raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return raw
	}
	return math.Round(raw)
}
func (Ordinal) Type() string { return TypeOrdinal }

// Time is a millisecond-epoch scale; sub-millisecond noise is dropped.
type Time struct{}

func (Time) Parse(raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return raw
	}
	return math.Round(raw)
}
func (Time) Type() string { return TypeTime }

// ForType returns the scale implementation for an axis "type" option value.
// Unknown types get the interval scale.
func ForType(t string) Scale {
	switch t {
	case TypeOrdinal:
		return Ordinal{}
	case TypeTime:
		return Time{}
	default:
		return Interval{}
	}
}
