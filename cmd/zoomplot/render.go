package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/YouCunzhou/echarts/src/numutil"
	"github.com/YouCunzhou/echarts/src/series"
)

type renderOpts struct {
	width, height int
	title         string
	hint          string
	// xRange is the resolved zoom window; when nil the axis auto-fits.
	xRange *[2]float64
}

// renderChart draws the (already zoomed/filtered) series as a PNG-backed
// image. The x axis range comes straight from the resolved value window so
// the picture shows exactly the zoom the proxy computed.
func renderChart(list []*series.Series, opts renderOpts) (image.Image, error) {
	var chartSeries []chart.Series
	minY, maxY := math.Inf(1), math.Inf(-1)
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, s := range list {
		d := s.Data()
		if d == nil || d.Count() == 0 {
			continue
		}
		xs := d.Values("x")
		ys := d.Values("y")
		// drop NaN points (empty-mode masks); go-chart cannot plot them
		var cxs, cys []float64
		for i := range xs {
			if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
				continue
			}
			cxs = append(cxs, xs[i])
			cys = append(cys, ys[i])
			if xs[i] < minX {
				minX = xs[i]
			}
			if xs[i] > maxX {
				maxX = xs[i]
			}
			if ys[i] < minY {
				minY = ys[i]
			}
			if ys[i] > maxY {
				maxY = ys[i]
			}
		}
		if len(cxs) == 0 {
			continue
		}
		chartSeries = append(chartSeries, chart.ContinuousSeries{Name: s.Name, XValues: cxs, YValues: cys})
	}
	if len(chartSeries) == 0 {
		return nil, fmt.Errorf("no drawable points after filtering")
	}

	xAxis := chart.XAxis{}
	switch {
	case opts.xRange != nil && opts.xRange[1] > opts.xRange[0]:
		xAxis.Range = &chart.ContinuousRange{Min: opts.xRange[0], Max: opts.xRange[1]}
		for _, v := range numutil.NiceTicks(opts.xRange[0], opts.xRange[1], 6) {
			xAxis.Ticks = append(xAxis.Ticks, chart.Tick{Value: v, Label: numutil.FormatTick(v)})
		}
	case minX == maxX:
		// a lone surviving point leaves go-chart no x span; widen the axis
		// around it rather than invent a second point
		xAxis.Range = &chart.ContinuousRange{Min: minX - 1, Max: maxX + 1}
	}
	yAxis := chart.YAxis{}
	if !math.IsInf(minY, 1) {
		nMin, nMax := numutil.NiceBounds(minY, maxY)
		yAxis.Range = &chart.ContinuousRange{Min: nMin, Max: nMax}
		for _, v := range numutil.NiceTicks(nMin, nMax, 6) {
			yAxis.Ticks = append(yAxis.Ticks, chart.Tick{Value: v, Label: numutil.FormatTick(v)})
		}
	}

	padBottom := 28
	if opts.hint != "" {
		padBottom += 18
	}
	ch := chart.Chart{
		Title:      opts.title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: padBottom}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     chartSeries,
		Width:      opts.width,
		Height:     opts.height,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered png: %w", err)
	}
	if opts.hint != "" {
		img = drawHint(img, opts.hint)
	}
	return img, nil
}

// drawHint draws a small hint string onto the provided image near the bottom-left.
func drawHint(img image.Image, text string) image.Image {
	if img == nil || text == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	// Shadow first, then text, for contrast on varying backgrounds
	drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	drShadow.DrawString(text)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
