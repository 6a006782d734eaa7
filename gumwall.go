// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

// Gumwall turns images into paint-by-number mosaics laid out with a fixed
// palette of colored tokens.
//
// The root package holds the palette model and the interfaces shared by
// the quantizer and reducer subpackages.  Subpackage nearest maps a
// resampled image onto a palette, rle compresses the resulting index grid,
// and svg and preview draw it.
package gumwall

import (
	"image"
	"math"
	"sort"
)

// Quantizer maps an image onto a palette of tokens.
type Quantizer interface {
	// Quantize resamples img to cols x rows cells and assigns each cell
	// the nearest usable palette entry.
	Quantize(img image.Image, p []Entry, cols, rows int) *Result
}

// Reducer reduces the colors of an image ahead of palette mapping.
type Reducer interface {
	Reduce(image.Image) image.Image
}

// Legend maps grid indices to the entries they stand for.  Only indices
// present in a grid are listed.
type Legend map[uint8]Entry

// Indices returns the legend's indices in ascending order.
func (l Legend) Indices() []uint8 {
	ix := make([]uint8, 0, len(l))
	for i := range l {
		ix = append(ix, i)
	}
	sort.Slice(ix, func(i, j int) bool { return ix[i] < ix[j] })
	return ix
}

// Result is the output of a single quantization.
type Result struct {
	Grid   [][]uint8      // row-major, values index Legend
	Legend Legend         // indices in use
	Counts map[string]int // cells per entry ID
	Rows   int
	Cols   int
}

// Total returns the number of cells counted, which is Rows*Cols unless
// the palette was empty.
func (r *Result) Total() int {
	n := 0
	for _, c := range r.Counts {
		n += c
	}
	return n
}

// GridSize returns the number of tokens of the given diameter that fit
// across and down a wall.  Partial tokens are dropped.
func GridSize(width, height, diameter float64) (cols, rows int) {
	if diameter <= 0 {
		return 0, 0
	}
	return fit(width, diameter), fit(height, diameter)
}

func fit(length, diameter float64) int {
	if length <= 0 {
		return 0
	}
	return int(math.Floor(length / diameter))
}
