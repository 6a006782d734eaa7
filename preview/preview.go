// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

// Preview rasterizes index grids into anti-aliased images, one disc per
// token on a white ground.
package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/soniakeys/gumwall"
)

// Missing is the fill for cells whose index is not in the legend.
var Missing = gumwall.RGB{R: 0xCC, G: 0xCC, B: 0xCC}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498307936

// Render draws grid with cellSize pixels per cell.  An empty grid gives
// a single blank cell.  Render returns nil if cellSize is not positive.
func Render(grid [][]uint8, legend gumwall.Legend, cellSize int) *image.RGBA {
	if cellSize <= 0 {
		return nil
	}
	rows, cols := 1, 1
	if len(grid) > 0 && len(grid[0]) > 0 {
		rows, cols = len(grid), len(grid[0])
	}
	w, h := cols*cellSize, rows*cellSize
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	// One rasterizer per fill color, in order of first appearance, keeps
	// the work proportional to the number of colors rather than cells.
	var order []gumwall.RGB
	masks := map[gumwall.RGB]*vector.Rasterizer{}
	r := float32(cellSize)/2 - 1
	if r < 0.5 {
		r = 0.5
	}
	for y, row := range grid {
		for x, v := range row {
			c := fillOf(legend, v)
			z, ok := masks[c]
			if !ok {
				z = vector.NewRasterizer(w, h)
				masks[c] = z
				order = append(order, c)
			}
			cx := float32(x*cellSize) + float32(cellSize)/2
			cy := float32(y*cellSize) + float32(cellSize)/2
			disc(z, cx, cy, r)
		}
	}
	for _, c := range order {
		src := image.NewUniform(color.RGBA{c.R, c.G, c.B, 0xff})
		masks[c].Draw(dst, dst.Bounds(), src, image.Point{})
	}
	return dst
}

func fillOf(legend gumwall.Legend, v uint8) gumwall.RGB {
	if e, ok := legend[v]; ok {
		if c, ok := e.RGB(); ok {
			return c
		}
	}
	return Missing
}

// disc adds a closed circle of radius r about (cx, cy) to z.
func disc(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}
