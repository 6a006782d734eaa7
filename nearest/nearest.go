// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

// Nearest maps images onto a token palette by nearest color.
package nearest

import (
	"image"
	"image/color"
	"math"

	"github.com/nfnt/resize"

	"github.com/soniakeys/gumwall"
)

// Quantizer implements gumwall.Quantizer.  The zero value resamples and
// maps directly; set Reducer to simplify the resampled image first.
type Quantizer struct {
	Reducer gumwall.Reducer
}

var _ gumwall.Quantizer = Quantizer{}

// Quantize resamples img to cols x rows with a Lanczos3 filter and maps
// each resampled pixel to the nearest usable entry of p.
//
// Grid indices start at 1 and are handed out in order of first use in a
// row-major scan.  Past 255 distinct entries the index saturates at 255.
// If no entry of p is usable the result is empty.
func (q Quantizer) Quantize(img image.Image, p []gumwall.Entry, cols, rows int) *gumwall.Result {
	pal := gumwall.NewPalette(p)
	if len(pal) == 0 {
		return &gumwall.Result{
			Legend: gumwall.Legend{},
			Counts: map[string]int{},
		}
	}
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	qz := newQuantizer(pal, cols, rows)
	if cols > 0 && rows > 0 {
		qz.scan(q.resample(img, cols, rows))
	}
	return qz.result()
}

// resample returns img scaled to exactly cols x rows.  An image with no
// pixels reads as black.
func (q Quantizer) resample(img image.Image, cols, rows int) image.Image {
	if img == nil || img.Bounds().Empty() {
		return image.NewUniform(color.Black)
	}
	small := resize.Resize(uint(cols), uint(rows), img, resize.Lanczos3)
	if q.Reducer != nil {
		small = q.Reducer.Reduce(small)
	}
	return small
}

type quantizer struct {
	pal   gumwall.Palette
	grid  [][]uint8
	index map[string]uint8 // entry ID to assigned grid index
	next  uint8
	res   *gumwall.Result
}

func newQuantizer(pal gumwall.Palette, cols, rows int) *quantizer {
	qz := &quantizer{
		pal:   pal,
		grid:  make([][]uint8, rows),
		index: make(map[string]uint8),
		next:  1,
		res: &gumwall.Result{
			Legend: gumwall.Legend{},
			Counts: map[string]int{},
			Rows:   rows,
			Cols:   cols,
		},
	}
	for y := range qz.grid {
		qz.grid[y] = make([]uint8, cols)
	}
	return qz
}

// scan visits pixels of img in row-major order, one per grid cell.
func (qz *quantizer) scan(img image.Image) {
	b := img.Bounds()
	for y, row := range qz.grid {
		for x := range row {
			c := gumwall.ToRGB(img.At(b.Min.X+x, b.Min.Y+y))
			row[x] = qz.assign(qz.pal[qz.pal.Nearest(c)].Entry)
		}
	}
}

// assign returns the grid index for e, allocating one on first use, and
// counts the cell.
func (qz *quantizer) assign(e gumwall.Entry) uint8 {
	i, ok := qz.index[e.ID]
	if !ok {
		i = qz.next
		if qz.next < math.MaxUint8 {
			qz.next++
		}
		qz.index[e.ID] = i
		qz.res.Legend[i] = e
	}
	qz.res.Counts[e.ID]++
	return i
}

func (qz *quantizer) result() *gumwall.Result {
	qz.res.Grid = qz.grid
	return qz.res
}
