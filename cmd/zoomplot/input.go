package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/YouCunzhou/echarts/src/series"
)

// seriesSpec is one series entry in the input file.
type seriesSpec struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}

// stripJSONC loads a JSONC file (lines beginning with // are ignored) and returns raw JSON bytes.
func stripJSONC(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		// Do NOT remove inline // because of URLs (http://). JSONC style here only uses full-line comments.
		out = append(out, []byte(line+"\n")...)
	}
	return out, scanner.Err()
}

// loadSeriesFile reads the JSONC series list and builds line series, all bound
// to x/y axis 0.
func loadSeriesFile(path string) ([]*series.Series, error) {
	b, err := stripJSONC(path)
	if err != nil {
		return nil, err
	}
	var specs []seriesSpec
	if err := json.Unmarshal(b, &specs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("%s: no series defined", path)
	}
	out := make([]*series.Series, 0, len(specs))
	for i, sp := range specs {
		if len(sp.X) != len(sp.Y) {
			return nil, fmt.Errorf("%s: series %d (%q): x has %d values, y has %d", path, i, sp.Name, len(sp.X), len(sp.Y))
		}
		name := sp.Name
		if name == "" {
			name = fmt.Sprintf("series %d", i)
		}
		out = append(out, series.NewLine(name, sp.X, sp.Y))
	}
	return out, nil
}
