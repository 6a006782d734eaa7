// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

package svg_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/soniakeys/gumwall"
	"github.com/soniakeys/gumwall/svg"
)

func testLegend() gumwall.Legend {
	return gumwall.Legend{
		1: {ID: "red", Name: "Red Gum", Color: "#FF0000", Price: 0.05, Available: true},
		2: {ID: "blue", Name: "Blue Gum", Color: "#0000FF", Price: 0.05, Available: true},
	}
}

func TestRender(t *testing.T) {
	grid := [][]uint8{{1, 2, 1}, {2, 1, 2}}
	doc := svg.Render(grid, testLegend(), svg.DefaultConfig())
	if !strings.HasPrefix(doc, "<svg") || !strings.HasSuffix(doc, "</svg>") {
		t.Fatalf("not a document: %.60s", doc)
	}
	for _, want := range []string{
		`viewBox="0 0 310 400" width="310" height="400"`,
		`<circle class="gum-circle" cx="10" cy="10" r="9" fill="#FF0000"/>`,
		`<text class="number" x="10" y="10" font-size="10" fill="#FFFFFF">1</text>`,
		`<circle class="gum-circle" cx="30" cy="10" r="9" fill="#0000FF"/>`,
		`<text class="legend-text" x="110" y="54">Red Gum</text>`,
		`<text class="legend-text" x="110" y="84">Blue Gum</text>`,
		`<text class="legend-text" x="80" y="130">Total gums: 6</text>`,
		`<text class="legend-text" x="80" y="150">Grid: 3 x 2</text>`,
		".gum-circle { stroke: #999; stroke-width: 1; }",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %s", want)
		}
	}
	if n := strings.Count(doc, `class="gum-circle"`); n != 6 {
		t.Errorf("%d cell circles", n)
	}
	if strings.Index(doc, "Red Gum") > strings.Index(doc, "Blue Gum") {
		t.Error("legend not in index order")
	}
}

func TestRenderOptions(t *testing.T) {
	grid := [][]uint8{{1, 2}}
	cfg := svg.Config{CellSize: 10, FontSizeRatio: 0.4}
	doc := svg.Render(grid, testLegend(), cfg)
	if strings.Contains(doc, `<text class="number" x="5"`) {
		t.Error("cell numbers drawn with ShowNumbers off")
	}
	if strings.Contains(doc, ".gum-circle {") {
		t.Error("grid style emitted with ShowGrid off")
	}
	cfg.ShowNumbers = true
	doc = svg.Render(grid, testLegend(), cfg)
	if !strings.Contains(doc, `<text class="number" x="5" y="5" font-size="4" fill="#FFFFFF">1</text>`) {
		t.Error("missing cell number")
	}
}

func TestRenderTallGrid(t *testing.T) {
	grid := make([][]uint8, 30)
	for i := range grid {
		grid[i] = []uint8{1}
	}
	doc := svg.Render(grid, testLegend(), svg.DefaultConfig())
	if !strings.Contains(doc, `width="270" height="600"`) {
		t.Fatalf("canvas: %.120s", doc)
	}
}

func TestRenderCompact(t *testing.T) {
	grid := [][]uint8{{1, 2}, {2, 1}}
	doc := svg.RenderCompact(grid, testLegend(), 10)
	if !strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 20" width="20" height="20">`) {
		t.Fatalf("header: %.100s", doc)
	}
	if strings.Count(doc, "<circle") != 4 {
		t.Fatal("want 4 circles")
	}
	if strings.Contains(doc, "Red Gum") || strings.Contains(doc, "<text") {
		t.Fatal("compact document has labels")
	}
}

func TestMissingLegendEntry(t *testing.T) {
	doc := svg.RenderCompact([][]uint8{{9}}, testLegend(), 10)
	if !strings.Contains(doc, `fill="`+svg.MissingColor+`"`) {
		t.Fatalf("got %s", doc)
	}
	doc = svg.Render([][]uint8{{9}}, nil, svg.DefaultConfig())
	if !strings.Contains(doc, `fill="#CCCCCC"/><text class="number" x="10" y="10" font-size="10" fill="#333333">9</text>`) {
		t.Fatalf("got %s", doc)
	}
}

func TestEmptyGrid(t *testing.T) {
	for _, grid := range [][][]uint8{nil, {{}}} {
		if doc := svg.Render(grid, nil, svg.DefaultConfig()); !strings.Contains(doc, "No data") {
			t.Fatalf("Render: %s", doc)
		}
		if doc := svg.RenderCompact(grid, nil, 10); !strings.Contains(doc, "No data") {
			t.Fatalf("RenderCompact: %s", doc)
		}
	}
}

func TestDeterministic(t *testing.T) {
	legend := gumwall.Legend{}
	grid := make([][]uint8, 10)
	for i, e := range gumwall.DefaultPalette() {
		legend[uint8(i+1)] = e
	}
	for y := range grid {
		grid[y] = make([]uint8, 12)
		for x := range grid[y] {
			grid[y][x] = uint8(1 + (x*y)%12)
		}
	}
	a := svg.Render(grid, legend, svg.DefaultConfig())
	for i := 0; i < 5; i++ {
		if svg.Render(grid, legend, svg.DefaultConfig()) != a {
			t.Fatal("output differs between runs")
		}
	}
	if strings.Index(a, ">Dubble Bubble Original<") > strings.Index(a, ">Trident Orange<") {
		t.Fatal("legend out of order")
	}
}

func TestEscape(t *testing.T) {
	if got := svg.Escape(`Tom & Jerry's <"best">`); got != "Tom &amp; Jerry&apos;s &lt;&quot;best&quot;&gt;" {
		t.Fatalf("got %s", got)
	}
	legend := gumwall.Legend{1: {ID: "x", Name: "Salt & <Pepper>", Color: "#808080"}}
	doc := svg.Render([][]uint8{{1}}, legend, svg.DefaultConfig())
	if !strings.Contains(doc, ">Salt &amp; &lt;Pepper&gt;<") || strings.Contains(doc, "<Pepper>") {
		t.Fatal("name not escaped")
	}
}

func TestContrastColor(t *testing.T) {
	for _, tc := range []struct{ bg, want string }{
		{"#FFFFFF", svg.DarkText},
		{"#000000", svg.LightText},
		{"#FF0000", svg.LightText},
		{"#FFFF00", svg.DarkText},
		{"#CCCCCC", svg.DarkText},
		{"#959595", svg.LightText},
		{"#979797", svg.DarkText},
		{"bad", "#000000"},
	} {
		if got := svg.ContrastColor(tc.bg); got != tc.want {
			t.Errorf("ContrastColor(%s) = %s, want %s", tc.bg, got, tc.want)
		}
	}
}

func TestConcurrentRender(t *testing.T) {
	grid := [][]uint8{{1, 2, 1}, {2, 1, 2}, {1, 1, 9}}
	legend := testLegend()
	want := svg.Render(grid, legend, svg.DefaultConfig())
	wantCompact := svg.RenderCompact(grid, legend, 12)
	var wg sync.WaitGroup
	bad := make(chan struct{}, 16)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if svg.Render(grid, legend, svg.DefaultConfig()) != want {
				bad <- struct{}{}
			}
			if svg.RenderCompact(grid, legend, 12) != wantCompact {
				bad <- struct{}{}
			}
		}()
	}
	wg.Wait()
	if len(bad) > 0 {
		t.Fatalf("%d concurrent renders differ", len(bad))
	}
}
