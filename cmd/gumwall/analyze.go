// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/soniakeys/gumwall"
	"github.com/soniakeys/gumwall/internal/logger"
	"github.com/soniakeys/gumwall/median"
	"github.com/soniakeys/gumwall/nearest"
	"github.com/soniakeys/gumwall/rle"
	"github.com/soniakeys/gumwall/svg"
)

// Palette sources reported by -list.
const (
	sourceFile     = "file"
	sourceFallback = "fallback"
)

// Accepted wall and token sizes, in centimeters.
const (
	minWall, maxWall         = 10.0, 10000.0
	minDiameter, maxDiameter = 0.5, 5.0
)

var (
	errWidth    = errors.New("wall width out of range")
	errHeight   = errors.New("wall height out of range")
	errDiameter = errors.New("token diameter out of range")
	errCell     = errors.New("cell size must be positive")
)

type options struct {
	width, height float64 // wall, cm
	diameter      float64 // token, cm
	cellSize      int     // pixels per cell in drawings
	fontRatio     float64
	numbers       bool
	grid          bool
	compact       bool
	colors        int // cap on distinct tokens, 0 for none
}

// validate reports every out of range option.
func (o options) validate() error {
	var err error
	if o.width < minWall || o.width > maxWall {
		err = multierr.Append(err, fmt.Errorf("%w: %g not in [%g, %g]", errWidth, o.width, minWall, maxWall))
	}
	if o.height < minWall || o.height > maxWall {
		err = multierr.Append(err, fmt.Errorf("%w: %g not in [%g, %g]", errHeight, o.height, minWall, maxWall))
	}
	if o.diameter < minDiameter || o.diameter > maxDiameter {
		err = multierr.Append(err, fmt.Errorf("%w: %g not in [%g, %g]", errDiameter, o.diameter, minDiameter, maxDiameter))
	}
	if o.cellSize <= 0 {
		err = multierr.Append(err, errCell)
	}
	return err
}

func (o options) svgConfig() svg.Config {
	return svg.Config{
		CellSize:      o.cellSize,
		ShowNumbers:   o.numbers,
		ShowGrid:      o.grid,
		FontSizeRatio: float32(o.fontRatio),
	}
}

// Dimensions describes the token grid.
type Dimensions struct {
	Rows           int `json:"rows"`
	Cols           int `json:"cols"`
	TotalPositions int `json:"total_positions"`
}

// Plan is the analysis of one image.
type Plan struct {
	GridRLE    [][]rle.Run    `json:"grid_rle"`
	Legend     gumwall.Legend `json:"legend"`
	Dimensions Dimensions     `json:"dimensions"`
	Counts     map[string]int `json:"gum_counts"`
	Total      int            `json:"total_gums"`
	SVG        string         `json:"svg"`

	grid [][]uint8
}

// analyze turns img into a token plan for a wall described by o.
func analyze(ctx context.Context, img image.Image, entries []gumwall.Entry, o options) *Plan {
	l := logger.L(ctx)
	cols, rows := gumwall.GridSize(o.width, o.height, o.diameter)
	l.Info("grid", zap.Int("cols", cols), zap.Int("rows", rows))

	var q nearest.Quantizer
	if o.colors > 0 {
		q.Reducer = median.Reducer(o.colors)
	}
	start := time.Now()
	res := q.Quantize(img, entries, cols, rows)
	l.Debug("quantized",
		zap.Int("tokens", len(res.Legend)),
		zap.Duration("elapsed", time.Since(start)))

	var doc string
	if o.compact {
		doc = svg.RenderCompact(res.Grid, res.Legend, o.cellSize)
	} else {
		doc = svg.Render(res.Grid, res.Legend, o.svgConfig())
	}
	return &Plan{
		GridRLE: rle.EncodeGrid(res.Grid),
		Legend:  res.Legend,
		Dimensions: Dimensions{
			Rows:           res.Rows,
			Cols:           res.Cols,
			TotalPositions: res.Rows * res.Cols,
		},
		Counts: res.Counts,
		Total:  res.Total(),
		SVG:    doc,
		grid:   res.Grid,
	}
}

// loadPalette reads the palette at path.  The built-in palette is used
// when path is empty or names a file that cannot be read or holds no
// usable entries.
func loadPalette(ctx context.Context, path string) ([]gumwall.Entry, string) {
	l := logger.L(ctx)
	if path == "" {
		return gumwall.DefaultPalette(), sourceFallback
	}
	entries, err := readPalette(path)
	if err != nil {
		l.Warn("palette unavailable, using fallback", zap.String("path", path), zap.Error(err))
		return gumwall.DefaultPalette(), sourceFallback
	}
	for _, err := range multierr.Errors(gumwall.Validate(entries)) {
		l.Warn("palette entry", zap.String("path", path), zap.Error(err))
	}
	if len(gumwall.NewPalette(entries)) == 0 {
		l.Warn("palette has no usable entries, using fallback", zap.String("path", path))
		return gumwall.DefaultPalette(), sourceFallback
	}
	l.Info("loaded palette", zap.String("path", path), zap.Int("entries", len(entries)))
	return entries, sourceFile
}

func readPalette(path string) ([]gumwall.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return gumwall.ReadPalette(f)
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
