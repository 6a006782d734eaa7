// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

// Gumwall plans a gum wall: it maps an image onto the available gum colors
// and writes the token grid, a legend, per-gum counts and drawings.
//
// Usage:
//
//	gumwall -image photo.jpg -width 200 -height 150 [-palette gums.json]
//	        [-json plan.json] [-svg plan.svg] [-png plan.png]
//	gumwall -list [-palette gums.json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"image/png"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/soniakeys/gumwall"
	"github.com/soniakeys/gumwall/internal/logger"
	"github.com/soniakeys/gumwall/preview"
)

func main() {
	imagePath := flag.String("image", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
	palettePath := flag.String("palette", "", "palette JSON file (default: built-in gums)")
	list := flag.Bool("list", false, "print the palette and exit")
	jsonOut := flag.String("json", "-", `plan output file, "-" for stdout, "" for none`)
	svgOut := flag.String("svg", "", "write the SVG drawing to this file")
	pngOut := flag.String("png", "", "write a PNG preview to this file")
	verbose := flag.Bool("v", false, "verbose logging")
	var o options
	flag.Float64Var(&o.width, "width", 200, "wall width in cm")
	flag.Float64Var(&o.height, "height", 150, "wall height in cm")
	flag.Float64Var(&o.diameter, "diameter", 2, "gum diameter in cm")
	flag.IntVar(&o.cellSize, "cell", 15, "pixels per gum in drawings")
	flag.Float64Var(&o.fontRatio, "font-ratio", 0.4, "label size relative to cell size")
	flag.BoolVar(&o.numbers, "numbers", true, "label gums with their index")
	flag.BoolVar(&o.grid, "grid", true, "outline gums")
	flag.BoolVar(&o.compact, "compact", false, "draw gums only, without labels or legend")
	flag.IntVar(&o.colors, "colors", 0, "use at most this many gum colors (0: no limit)")
	flag.Parse()

	var err error
	var l *zap.Logger
	if *verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck

	ctx := logger.NewContext(context.Background(), l)
	entries, source := loadPalette(ctx, *palettePath)

	if *list {
		usable := gumwall.NewPalette(entries)
		out := struct {
			Gums   []gumwall.Entry `json:"gum_types"`
			Count  int             `json:"count"`
			Source string          `json:"source"`
		}{make([]gumwall.Entry, len(usable)), len(usable), source}
		for i, s := range usable {
			out.Gums[i] = s.Entry
		}
		if err := writeJSON(os.Stdout, out); err != nil {
			l.Fatal("write palette", zap.Error(err))
		}
		return
	}

	if *imagePath == "" {
		l.Fatal("no -image given")
	}
	if err := o.validate(); err != nil {
		l.Fatal("options", zap.Error(err))
	}
	img, err := decodeImage(*imagePath)
	if err != nil {
		l.Fatal("read image", zap.String("path", *imagePath), zap.Error(err))
	}
	b := img.Bounds()
	l.Info("loaded image",
		zap.String("path", *imagePath),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()))

	plan := analyze(ctx, img, entries, o)
	l.Info("planned",
		zap.Int("gums", plan.Total),
		zap.Int("colors", len(plan.Legend)))

	if *svgOut != "" {
		if err := os.WriteFile(*svgOut, []byte(plan.SVG), 0o644); err != nil {
			l.Fatal("write svg", zap.String("path", *svgOut), zap.Error(err))
		}
	}
	if *pngOut != "" {
		if err := writePNG(*pngOut, plan, o.cellSize); err != nil {
			l.Fatal("write png", zap.String("path", *pngOut), zap.Error(err))
		}
	}
	switch *jsonOut {
	case "":
	case "-":
		err = writeJSON(os.Stdout, plan)
	default:
		err = writeJSONFile(*jsonOut, plan)
	}
	if err != nil {
		l.Fatal("write plan", zap.String("path", *jsonOut), zap.Error(err))
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSONFile(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeJSON(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePNG(path string, plan *Plan, cellSize int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, preview.Render(plan.grid, plan.Legend, cellSize)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
