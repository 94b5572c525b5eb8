package numutil

import (
	"fmt"
	"math"
	"strconv"
)

// AscPair returns the pair (a,b) sorted ascending. NaN members are left where
// they are so callers can detect unresolved bounds.
func AscPair(a, b float64) (float64, float64) {
	if b < a {
		return b, a
	}
	return a, b
}

// Clamp limits v to [lo,hi]. Callers must pass lo <= hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LinearMap maps val from the source range [domain0,domain1] onto the target
// range [range0,range1]. When clampInput is true val is clamped to the source
// range first. A degenerate source range (domain0 == domain1) yields range0 so
// a single-point extent never divides by zero.
func LinearMap(val, domain0, domain1, range0, range1 float64, clampInput bool) float64 {
	sub := domain1 - domain0
	if sub == 0 {
		return range0
	}
	if clampInput {
		lo, hi := AscPair(domain0, domain1)
		val = Clamp(val, lo, hi)
	}
	return range0 + (val-domain0)/sub*(range1-range0)
}

// PixelPrecision estimates how many fractional digits are worth keeping when a
// value span of [lo,hi] is spread over pixelSpan display units. The boolean is
// false when the estimate falls outside the 0..20 digit range strconv (and
// JS toFixed, where this rule comes from) accepts; callers should then skip
// rounding entirely.
func PixelPrecision(lo, hi, pixelSpan float64) (int, bool) {
	dataQuantity := math.Floor(math.Log10(hi - lo))
	sizeQuantity := math.Round(math.Log10(math.Abs(pixelSpan)))
	precision := sizeQuantity - dataQuantity
	if math.IsNaN(precision) || math.IsInf(precision, 0) {
		return 0, false
	}
	d := int(precision)
	if d < 0 || d > 20 {
		return 0, false
	}
	return d, true
}

// RoundFixed rounds v to digits fractional digits, going through a decimal
// string so the result carries no binary round-off tail (same contract as
// toFixed followed by a reparse). digits outside 0..20 returns v unchanged.
func RoundFixed(v float64, digits int) float64 {
	if digits < 0 || digits > 20 {
		return v
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// NiceBounds pads [min,max] by 5% and rounds outward to the span's order of
// magnitude, producing axis bounds that look hand-picked.
func NiceBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// NiceTicks generates up to n+2 tick positions between [min,max] using the
// 1, 2, 2.5, 5, 10 step pattern.
func NiceTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var ticks []float64
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, v)
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// FormatTick renders a tick value compactly: whole numbers above 100, one
// decimal in the tens, two below.
func FormatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
