// zoomplot renders a zoomed view of one or more x/y series.
//
// It exercises the full axis-window pipeline: the series file is loaded, a
// zoom window (percent or value bounds) is resolved against the data extent,
// the x axis bounds are written back, out-of-window points are filtered or
// masked, and the result is drawn to a PNG.
//
// Example:
//
//	zoomplot -series data.jsonc -start 20 -end 80 -out zoom.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/YouCunzhou/echarts/src/chartlog"
	"github.com/YouCunzhou/echarts/src/datazoom"
	"github.com/YouCunzhou/echarts/src/model"
)

func main() {
	seriesPath := flag.String("series", "series.jsonc", "Path to series JSONC file")
	outPath := flag.String("out", "zoom.png", "Output PNG file")
	configPath := flag.String("config", "", "Optional config file (yaml/toml/json) with render defaults")
	start := flag.Float64("start", -1, "Window start as percent of data extent (0-100); negative means unset")
	end := flag.Float64("end", -1, "Window end as percent of data extent (0-100); negative means unset")
	startValue := flag.Float64("start-value", 0, "Window start in value units (used when -start is unset)")
	endValue := flag.Float64("end-value", 0, "Window end in value units (used when -end is unset)")
	useStartValue := flag.Bool("use-start-value", false, "Enable -start-value")
	useEndValue := flag.Bool("use-end-value", false, "Enable -end-value")
	filterMode := flag.String("filter-mode", "", "Out-of-window handling: filter|empty|none (default filter)")
	width := flag.Int("width", 1000, "Chart width in pixels")
	height := flag.Int("height", 400, "Chart height in pixels")
	title := flag.String("title", "", "Chart title")
	hint := flag.String("hint", "", "Hint caption drawn onto the chart")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if *configPath != "" {
		cfg, err := loadFileConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		// config fills in whatever the command line left at defaults
		if !explicit["width"] && cfg.Width > 0 {
			*width = cfg.Width
		}
		if !explicit["height"] && cfg.Height > 0 {
			*height = cfg.Height
		}
		if !explicit["title"] && cfg.Title != "" {
			*title = cfg.Title
		}
		if !explicit["filter-mode"] && cfg.FilterMode != "" {
			*filterMode = cfg.FilterMode
		}
		if !explicit["hint"] && cfg.Hint != "" {
			*hint = cfg.Hint
		}
		if !explicit["log-level"] && cfg.LogLevel != "" {
			*logLevel = cfg.LogLevel
		}
	}
	chartlog.SetLevel(*logLevel)

	list, err := loadSeriesFile(*seriesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	chartlog.Infof("loaded %d series from %s", len(list), *seriesPath)

	global := model.NewGlobal()
	global.AddAxis(model.NewCartesianAxis(model.DimX, 0, nil))
	global.AddAxis(model.NewCartesianAxis(model.DimY, 0, nil))
	for _, s := range list {
		global.AddSeries(s)
	}

	owner := &datazoom.Model{
		FilterMode:  *filterMode,
		AxisIndexes: map[model.Dim][]int{model.DimX: {0}},
	}
	if *start >= 0 {
		owner.Start = datazoom.Float(*start)
	}
	if *end >= 0 {
		owner.End = datazoom.Float(*end)
	}
	if *useStartValue {
		owner.StartValue = datazoom.Float(*startValue)
	}
	if *useEndValue {
		owner.EndValue = datazoom.Float(*endValue)
	}
	global.RegisterComponent("dataZoom", owner)

	reg := datazoom.NewRegistry(global)
	var window *[2]float64
	owner.EachTargetAxis(func(dim model.Dim, index int) {
		proxy := reg.Acquire(dim, index, owner)
		proxy.ResolveWindow(owner)
		proxy.ApplyFilter(owner)
		if vw, ok := proxy.ValueWindow(); ok && dim == model.DimX {
			window = &vw
			chartlog.Infof("x axis window [%g, %g]", vw[0], vw[1])
		}
	})

	img, err := renderChart(list, renderOpts{
		width:  *width,
		height: *height,
		title:  *title,
		hint:   *hint,
		xRange: window,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	chartlog.Infof("wrote %s", *outPath)
}
