// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

// Svg draws index grids as SVG documents, one circle per token.
//
// Output depends only on the arguments, so identical inputs give
// byte-identical documents.
package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soniakeys/gumwall"
)

// Layout constants of the legend panel, in pixels.
const (
	legendWidth   = 250
	legendPad     = 20
	legendTop     = 50
	legendRowStep = 30
	minHeight     = 400
)

// Fallback fills.
const (
	MissingColor = "#CCCCCC" // cells whose index is not in the legend
	DarkText     = "#333333"
	LightText    = "#FFFFFF"
)

const noData = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100"><text x="10" y="50">No data</text></svg>`

// Style block pieces.  The grid rules are left out when Config.ShowGrid is
// false.
const (
	styleHead = "\n<style>\n"
	styleTail = "</style>\n"
)

const (
	cellStyle  = "    .cell { stroke: #ddd; stroke-width: 0.5; }\n"
	tokenStyle = "    .gum-circle { stroke: #999; stroke-width: 1; }\n"
)

const textStyle = "    .number { font-family: Arial, sans-serif; text-anchor: middle; dominant-baseline: central; fill: #333; }\n" +
	"    .legend-text { font-family: Arial, sans-serif; font-size: 12px; fill: #333; }\n" +
	"    .legend-title { font-family: Arial, sans-serif; font-size: 14px; font-weight: bold; fill: #333; }\n"

// Config controls Render.
type Config struct {
	CellSize      int     // pixels per grid cell
	ShowNumbers   bool    // label each cell with its index
	ShowGrid      bool    // outline cells and tokens
	FontSizeRatio float32 // label size relative to CellSize
}

// DefaultConfig returns the standard rendering settings.
func DefaultConfig() Config {
	return Config{
		CellSize:      20,
		ShowNumbers:   true,
		ShowGrid:      true,
		FontSizeRatio: 0.5,
	}
}

// Render returns a document showing grid with a legend panel to the right.
// The legend lists each index of legend once, in ascending order, followed
// by the total cell count and the grid dimensions.  An empty grid renders
// as a small "No data" placeholder.
func Render(grid [][]uint8, legend gumwall.Legend, cfg Config) string {
	if empty(grid) {
		return noData
	}
	rows, cols := len(grid), len(grid[0])
	width := cols * cfg.CellSize
	height := rows * cfg.CellSize
	if height < minHeight {
		height = minHeight
	}
	total := width + legendWidth
	fontSize := int(float32(cfg.CellSize) * cfg.FontSizeRatio)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		total, height, total, height)
	sb.WriteString(styleHead)
	if cfg.ShowGrid {
		sb.WriteString(cellStyle)
	}
	sb.WriteString(textStyle)
	if cfg.ShowGrid {
		sb.WriteString(tokenStyle)
	}
	sb.WriteString(styleTail)

	for y, row := range grid {
		for x, v := range row {
			cx, cy, r := cell(x, y, cfg.CellSize)
			fill := fillOf(legend, v)
			fmt.Fprintf(&sb, `<circle class="gum-circle" cx="%d" cy="%d" r="%d" fill="%s"/>`, cx, cy, r, fill)
			if cfg.ShowNumbers {
				fmt.Fprintf(&sb, `<text class="number" x="%d" y="%d" font-size="%d" fill="%s">%d</text>`,
					cx, cy, fontSize, ContrastColor(fill), v)
			}
		}
	}

	writeLegend(&sb, legend, width+legendPad, rows*cols, cols, rows)
	sb.WriteString("</svg>")
	return sb.String()
}

func writeLegend(sb *strings.Builder, legend gumwall.Legend, x, cells, cols, rows int) {
	fmt.Fprintf(sb, `<text class="legend-title" x="%d" y="25">Legend</text>`, x)
	ix := legend.Indices()
	for i, k := range ix {
		e := legend[k]
		y := legendTop + i*legendRowStep
		fmt.Fprintf(sb, `<circle cx="%d" cy="%d" r="10" fill="%s" stroke="#666" stroke-width="1"/>`,
			x+10, y, Escape(e.Color))
		fmt.Fprintf(sb, `<text class="number" x="%d" y="%d" font-size="10" fill="%s">%d</text>`,
			x+10, y, ContrastColor(e.Color), k)
		fmt.Fprintf(sb, `<text class="legend-text" x="%d" y="%d">%s</text>`,
			x+30, y+4, Escape(e.Name))
	}
	sy := legendTop + len(ix)*legendRowStep + legendPad
	fmt.Fprintf(sb, `<text class="legend-text" x="%d" y="%d">Total gums: %d</text>`, x, sy, cells)
	fmt.Fprintf(sb, `<text class="legend-text" x="%d" y="%d">Grid: %d x %d</text>`, x, sy+20, cols, rows)
}

// RenderCompact returns a document of just the tokens, without labels or
// legend, sized to the grid.
func RenderCompact(grid [][]uint8, legend gumwall.Legend, cellSize int) string {
	if empty(grid) {
		return noData
	}
	width := len(grid[0]) * cellSize
	height := len(grid) * cellSize

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		width, height, width, height)
	for y, row := range grid {
		for x, v := range row {
			cx, cy, r := cell(x, y, cellSize)
			fmt.Fprintf(&sb, `<circle cx="%d" cy="%d" r="%d" fill="%s"/>`, cx, cy, r, fillOf(legend, v))
		}
	}
	sb.WriteString("</svg>")
	return sb.String()
}

func empty(grid [][]uint8) bool {
	return len(grid) == 0 || len(grid[0]) == 0
}

// cell returns the center and radius of the token at column x, row y.
func cell(x, y, size int) (cx, cy, r int) {
	r = size/2 - 1
	if r < 0 {
		r = 0
	}
	return x*size + size/2, y*size + size/2, r
}

func fillOf(legend gumwall.Legend, v uint8) string {
	if e, ok := legend[v]; ok {
		return Escape(e.Color)
	}
	return MissingColor
}

// ContrastColor returns a label color readable on a background of hex,
// which should be "#rrggbb".  Light backgrounds get DarkText and dark ones
// LightText.  A malformed color gets black.
func ContrastColor(hex string) string {
	h := strings.TrimLeft(hex, "#")
	if len(h) != 6 {
		return "#000000"
	}
	r := channel(h[0:2])
	g := channel(h[2:4])
	b := channel(h[4:6])
	// Explicit conversions keep each product rounded to float32.
	lum := float32(0.299*float32(r)) + float32(0.587*float32(g)) + float32(0.114*float32(b))
	if lum > 150 {
		return DarkText
	}
	return LightText
}

// channel parses two hex digits, giving mid gray on failure.
func channel(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 128
	}
	return uint8(v)
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape replaces the five XML special characters in s with entities.
func Escape(s string) string {
	return escaper.Replace(s)
}
