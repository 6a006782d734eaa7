// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

package rle_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/soniakeys/gumwall/rle"
)

func TestEncodeRow(t *testing.T) {
	got := rle.EncodeRow([]uint8{1, 1, 2, 2, 2, 1})
	want := []rle.Run{{2, 1}, {3, 2}, {1, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := rle.EncodeRow(nil); len(got) != 0 {
		t.Fatalf("empty row: %v", got)
	}
	if got := rle.EncodeRow([]uint8{7, 7, 7, 7}); !reflect.DeepEqual(got, []rle.Run{{4, 7}}) {
		t.Fatalf("uniform row: %v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	alternating := make([]uint8, 51)
	for i := range alternating {
		alternating[i] = uint8(1 + i%2)
	}
	for _, row := range [][]uint8{
		{},
		{5},
		{3, 3, 3, 3, 3, 3},
		alternating,
		{1, 1, 2, 2, 2, 1},
		{255, 0, 255, 255, 0},
	} {
		runs := rle.EncodeRow(row)
		n := 0
		for _, r := range runs {
			n += r.Count
		}
		if n != len(row) {
			t.Fatalf("%v: counts sum to %d", row, n)
		}
		if got := rle.DecodeRow(runs); !reflect.DeepEqual(got, row) {
			t.Fatalf("%v decoded to %v", row, got)
		}
	}
	if got := rle.EncodeRow(alternating); len(got) != len(alternating) {
		t.Fatalf("alternating row: %d runs", len(got))
	}
}

func TestGridRowsStaySeparate(t *testing.T) {
	grid := [][]uint8{{1, 2, 2}, {2, 2, 3}, {}}
	enc := rle.EncodeGrid(grid)
	want := [][]rle.Run{{{1, 1}, {2, 2}}, {{2, 2}, {1, 3}}, {}}
	if !reflect.DeepEqual(enc, want) {
		t.Fatalf("got %v, want %v", enc, want)
	}
	if got := rle.DecodeGrid(enc); !reflect.DeepEqual(got, grid) {
		t.Fatalf("decoded %v", got)
	}
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(rle.EncodeGrid([][]uint8{{1, 1, 2}, {}}))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[[[2,1],[1,2]],[]]" {
		t.Fatalf("got %s", b)
	}
	var back [][]rle.Run
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back[0][0] != (rle.Run{Count: 2, Index: 1}) {
		t.Fatalf("got %v", back)
	}
	var r rle.Run
	if err := json.Unmarshal([]byte("[1,300]"), &r); err == nil {
		t.Fatal("accepted index 300")
	}
}
