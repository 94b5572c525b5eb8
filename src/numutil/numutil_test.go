package numutil

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestAscPair(t *testing.T) {
	cases := []struct {
		name           string
		a, b           float64
		wantLo, wantHi float64
	}{
		{"already ascending", 1, 2, 1, 2},
		{"reversed", 9, 3, 3, 9},
		{"equal", 4, 4, 4, 4},
		{"negative", -1, -5, -5, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := AscPair(tc.a, tc.b)
			if lo != tc.wantLo || hi != tc.wantHi {
				t.Fatalf("AscPair(%v,%v) = (%v,%v), want (%v,%v)", tc.a, tc.b, lo, hi, tc.wantLo, tc.wantHi)
			}
		})
	}
}

func TestLinearMap(t *testing.T) {
	// midpoint of [0,100] onto [10,20]
	if got := LinearMap(50, 0, 100, 10, 20, true); math.Abs(got-15) > eps {
		t.Fatalf("midpoint map = %v, want 15", got)
	}
	// clamp below and above
	if got := LinearMap(-5, 0, 100, 10, 20, true); got != 10 {
		t.Fatalf("clamped low = %v, want 10", got)
	}
	if got := LinearMap(500, 0, 100, 10, 20, true); got != 20 {
		t.Fatalf("clamped high = %v, want 20", got)
	}
	// unclamped extrapolates
	if got := LinearMap(200, 0, 100, 0, 10, false); math.Abs(got-20) > eps {
		t.Fatalf("extrapolated = %v, want 20", got)
	}
	// degenerate source range returns the low target end, never divides by zero
	if got := LinearMap(5, 5, 5, 0, 100, true); got != 0 {
		t.Fatalf("degenerate domain = %v, want 0", got)
	}
}

func TestLinearMapRoundTrip(t *testing.T) {
	// percent -> value -> percent must reproduce the input when the extent has spread
	lo, hi := 12.5, 987.25
	for _, p := range []float64{0, 13.7, 50, 99.999, 100} {
		v := LinearMap(p, 0, 100, lo, hi, true)
		back := LinearMap(v, lo, hi, 0, 100, true)
		if math.Abs(back-p) > 1e-9 {
			t.Fatalf("round trip %v -> %v -> %v", p, v, back)
		}
	}
}

func TestPixelPrecision(t *testing.T) {
	// window ~33 wide over 500 display units: span magnitude 1, size magnitude 3 -> 2 digits
	d, ok := PixelPrecision(12.34567, 45.6789, 500)
	if !ok {
		t.Fatalf("expected valid precision")
	}
	if d < 0 || d > 20 {
		t.Fatalf("precision %d outside 0..20", d)
	}
	if d != 2 {
		t.Fatalf("precision = %d, want 2", d)
	}
	// zero-width window: log10(0) = -Inf, must be reported invalid, not crash
	if _, ok := PixelPrecision(5, 5, 500); ok {
		t.Fatalf("zero-width window should be invalid")
	}
	// enormous window pushes the digit count negative -> invalid
	if _, ok := PixelPrecision(0, 1e30, 500); ok {
		t.Fatalf("huge window should be invalid")
	}
	// tiny window pushes the digit count past 20 -> invalid
	if _, ok := PixelPrecision(0, 1e-30, 500); ok {
		t.Fatalf("tiny window should be invalid")
	}
}

func TestRoundFixed(t *testing.T) {
	cases := []struct {
		v      float64
		digits int
		want   float64
	}{
		{12.34567, 2, 12.35},
		{45.6789, 2, 45.68},
		{1.005, 0, 1},
		{-3.14159, 3, -3.142},
		{7, 4, 7},
	}
	for _, tc := range cases {
		if got := RoundFixed(tc.v, tc.digits); math.Abs(got-tc.want) > eps {
			t.Fatalf("RoundFixed(%v,%d) = %v, want %v", tc.v, tc.digits, got, tc.want)
		}
	}
	// out-of-range digit counts leave the value untouched
	if got := RoundFixed(1.23456, 21); got != 1.23456 {
		t.Fatalf("digits=21 should be a no-op, got %v", got)
	}
	if got := RoundFixed(1.23456, -1); got != 1.23456 {
		t.Fatalf("digits=-1 should be a no-op, got %v", got)
	}
	if v := RoundFixed(math.NaN(), 2); !math.IsNaN(v) {
		t.Fatalf("NaN should pass through, got %v", v)
	}
}

func TestNiceTicks(t *testing.T) {
	ticks := NiceTicks(0, 100, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected at least 2 ticks, got %d", len(ticks))
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] <= ticks[i-1] {
			t.Fatalf("ticks not strictly ascending: %v", ticks)
		}
	}
	if ticks[0] > 0 || ticks[len(ticks)-1] < 100 {
		t.Fatalf("ticks %v do not cover [0,100]", ticks)
	}
	if got := NiceTicks(0, 100, 1); got != nil {
		t.Fatalf("n<2 should return nil, got %v", got)
	}
}

func TestNiceBounds(t *testing.T) {
	a, b := NiceBounds(12, 97)
	if a > 12 || b < 97 {
		t.Fatalf("bounds (%v,%v) do not contain the data", a, b)
	}
	// equal min/max still produces a non-empty span
	a, b = NiceBounds(5, 5)
	if b <= a {
		t.Fatalf("degenerate input produced empty span (%v,%v)", a, b)
	}
}
