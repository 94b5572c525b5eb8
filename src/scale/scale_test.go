package scale

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		s    Scale
		in   float64
		want float64
	}{
		{"interval passthrough", Interval{}, 3.7, 3.7},
		{"ordinal snaps down", Ordinal{}, 2.4, 2},
		{"ordinal snaps up", Ordinal{}, 2.5, 3},
		{"time drops sub-ms", Time{}, 1700000000000.4, 1700000000000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.Parse(tc.in); got != tc.want {
				t.Fatalf("Parse(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
	if v := (Ordinal{}).Parse(math.NaN()); !math.IsNaN(v) {
		t.Fatalf("NaN should pass through ordinal parse, got %v", v)
	}
}

func TestForType(t *testing.T) {
	if ForType(TypeOrdinal).Type() != TypeOrdinal {
		t.Fatalf("category type lost")
	}
	if ForType(TypeTime).Type() != TypeTime {
		t.Fatalf("time type lost")
	}
	if ForType("").Type() != TypeInterval {
		t.Fatalf("unknown type should fall back to interval")
	}
	if ForType("log").Type() != TypeInterval {
		t.Fatalf("unmodeled types should fall back to interval")
	}
}
