package model

import (
	"testing"

	"github.com/YouCunzhou/echarts/src/scale"
	"github.com/YouCunzhou/echarts/src/series"
)

func TestGetIgnoreParent(t *testing.T) {
	ax := NewCartesianAxis(DimY, 0, map[string]any{"min": 3.0})
	if v := ax.Get("min", true); v != 3.0 {
		t.Fatalf("explicit min = %v, want 3", v)
	}
	// "scale" was never configured: visible through defaults, hidden with ignoreParent
	if v := ax.Get("scale", true); v != nil {
		t.Fatalf("ignoreParent should hide inherited scale, got %v", v)
	}
	if v := ax.Get("scale", false); v != false {
		t.Fatalf("inherited scale default = %v, want false", v)
	}
}

func TestAxisScaleFromType(t *testing.T) {
	if ax := NewCartesianAxis(DimX, 0, map[string]any{"type": "category"}); ax.Scale().Type() != scale.TypeOrdinal {
		t.Fatalf("category axis should carry ordinal scale")
	}
	if ax := NewCartesianAxis(DimX, 0, nil); ax.Scale().Type() != scale.TypeInterval {
		t.Fatalf("default axis should carry interval scale")
	}
}

func TestSetMinMaxRoundTrip(t *testing.T) {
	ax := NewCartesianAxis(DimY, 0, nil)
	v := 12.5
	ax.SetMin(&v)
	if got := ax.Get("min", true); got != 12.5 {
		t.Fatalf("written min = %v, want 12.5", got)
	}
	ax.SetMin(nil)
	if got := ax.Get("min", true); got != nil {
		t.Fatalf("cleared min should be absent, got %v", got)
	}
}

func TestOrthogonal(t *testing.T) {
	cases := []struct {
		dim  Dim
		want Dim
		ok   bool
	}{
		{DimX, DimY, true},
		{DimY, DimX, true},
		{DimRadius, DimAngle, true},
		{DimAngle, DimRadius, true},
		{DimSingle, "", false},
	}
	for _, tc := range cases {
		got, ok := tc.dim.Orthogonal()
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Orthogonal(%s) = (%s,%v), want (%s,%v)", tc.dim, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPairedAxisByCoordIndex(t *testing.T) {
	g := NewGlobal()
	x0 := NewCartesianAxis(DimX, 0, map[string]any{"gridIndex": 0})
	x1 := NewCartesianAxis(DimX, 1, map[string]any{"gridIndex": 1})
	y0 := NewCartesianAxis(DimY, 0, map[string]any{"gridIndex": 0})
	y1 := NewCartesianAxis(DimY, 1, map[string]any{"gridIndex": 1})
	g.AddAxis(x0)
	g.AddAxis(x1)
	g.AddAxis(y0)
	g.AddAxis(y1)

	if got := g.PairedAxis(x1); got != y1 {
		t.Fatalf("paired axis of x1 = %v, want y1", got)
	}
	if got := g.PairedAxis(y0); got != x0 {
		t.Fatalf("paired axis of y0 = %v, want x0", got)
	}
	single := NewCartesianAxis(DimSingle, 0, nil)
	g.AddAxis(single)
	if got := g.PairedAxis(single); got != nil {
		t.Fatalf("single axis should have no pair, got %v", got)
	}
}

func TestComponentsRegistry(t *testing.T) {
	g := NewGlobal()
	g.RegisterComponent("dataZoom", "a")
	g.RegisterComponent("dataZoom", "b")
	if got := g.GetComponent("dataZoom", 1); got != "b" {
		t.Fatalf("GetComponent(1) = %v, want b", got)
	}
	if got := g.GetComponent("dataZoom", 5); got != nil {
		t.Fatalf("out-of-range component should be nil, got %v", got)
	}
	var seen []int
	g.EachComponent("dataZoom", func(i int, _ any) { seen = append(seen, i) })
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Fatalf("EachComponent visited %v", seen)
	}
	g.AddSeries(series.NewLine("s", []float64{1}, []float64{2}))
	n := 0
	g.EachSeries(func(_ *series.Series) { n++ })
	if n != 1 {
		t.Fatalf("EachSeries visited %d series, want 1", n)
	}
}
