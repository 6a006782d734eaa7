// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

// Rle run-length encodes index grids, one row at a time.
package rle

import (
	"encoding/json"
	"fmt"
)

// Run is Count consecutive cells holding Index.  In JSON a run is the
// pair [count, index].
type Run struct {
	Count int
	Index uint8
}

// MarshalJSON encodes r as [count, index].
func (r Run) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Count, int(r.Index)})
}

// UnmarshalJSON decodes a [count, index] pair.
func (r *Run) UnmarshalJSON(b []byte) error {
	var p [2]int
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if p[0] < 0 || p[1] < 0 || p[1] > 255 {
		return fmt.Errorf("rle: bad run %v", p)
	}
	r.Count, r.Index = p[0], uint8(p[1])
	return nil
}

// EncodeRow collapses maximal runs of equal values in row.  An empty row
// encodes to an empty list.
func EncodeRow(row []uint8) []Run {
	runs := []Run{}
	for _, v := range row {
		if n := len(runs); n > 0 && runs[n-1].Index == v {
			runs[n-1].Count++
			continue
		}
		runs = append(runs, Run{1, v})
	}
	return runs
}

// EncodeGrid encodes each row of grid independently.  Runs never span
// rows.
func EncodeGrid(grid [][]uint8) [][]Run {
	out := make([][]Run, len(grid))
	for i, row := range grid {
		out[i] = EncodeRow(row)
	}
	return out
}

// DecodeRow expands runs back into a row of indices.
func DecodeRow(runs []Run) []uint8 {
	n := 0
	for _, r := range runs {
		if r.Count > 0 {
			n += r.Count
		}
	}
	row := make([]uint8, 0, n)
	for _, r := range runs {
		for i := 0; i < r.Count; i++ {
			row = append(row, r.Index)
		}
	}
	return row
}

// DecodeGrid is the inverse of EncodeGrid.
func DecodeGrid(rows [][]Run) [][]uint8 {
	grid := make([][]uint8, len(rows))
	for i, runs := range rows {
		grid[i] = DecodeRow(runs)
	}
	return grid
}
