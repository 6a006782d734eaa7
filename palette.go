// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

package gumwall

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
)

// Errors returned by ParseHex.
var (
	ErrColorFormat = errors.New("color must be # followed by six hex digits")
	ErrColorDigit  = errors.New("color has a non-hex digit")
)

// Entry is one selectable token color, as listed by a palette directory.
type Entry struct {
	ID        string  `json:"gum_id"`
	Name      string  `json:"name"`
	Color     string  `json:"hex_color"` // "#rrggbb"
	Price     float64 `json:"price_per_piece"`
	Brand     string  `json:"brand,omitempty"`
	Flavor    string  `json:"flavor,omitempty"`
	Available bool    `json:"is_available"`
}

// UnmarshalJSON decodes an entry, treating a missing is_available field
// as true.
func (e *Entry) UnmarshalJSON(b []byte) error {
	type plain Entry
	p := plain{Available: true}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}

// RGB decodes the entry's color.  ok is false if the color is malformed.
func (e Entry) RGB() (c RGB, ok bool) {
	c, err := ParseHex(e.Color)
	return c, err == nil
}

// RGB is an opaque 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// RGBA satisfies color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

// Hex formats c as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex decodes a "#rrggbb" string.  Either case of hex digit is
// accepted.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%q: %w", s, ErrColorFormat)
	}
	var v [3]uint8
	for i := range v {
		hi, ok1 := unhex(s[1+2*i])
		lo, ok2 := unhex(s[2+2*i])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("%q: %w", s, ErrColorDigit)
		}
		v[i] = hi<<4 | lo
	}
	return RGB{v[0], v[1], v[2]}, nil
}

func unhex(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Distance returns the squared Euclidean distance between a and b in RGB
// space.  It is zero only for identical colors.
func Distance(a, b RGB) uint32 {
	dr := int32(a.R) - int32(b.R)
	dg := int32(a.G) - int32(b.G)
	db := int32(a.B) - int32(b.B)
	return uint32(dr*dr + dg*dg + db*db)
}

// Swatch is a palette entry paired with its decoded color.
type Swatch struct {
	Entry Entry
	Color RGB
}

// Palette is a working palette: usable entries in their original order.
type Palette []Swatch

// NewPalette builds a working palette from entries, skipping entries that
// are unavailable or have a malformed color.  Order is preserved.
func NewPalette(entries []Entry) Palette {
	p := make(Palette, 0, len(entries))
	for _, e := range entries {
		if !e.Available {
			continue
		}
		c, ok := e.RGB()
		if !ok {
			continue
		}
		p = append(p, Swatch{Entry: e, Color: c})
	}
	return p
}

// Nearest returns the position in p of the swatch closest to c.  Ties go
// to the earliest swatch.  Nearest returns -1 if p is empty.
func (p Palette) Nearest(c RGB) int {
	best := -1
	var bestD uint32
	for i := range p {
		d := Distance(c, p[i].Color)
		if best < 0 || d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// ToRGB converts any color to non-premultiplied 8-bit RGB, dropping alpha.
func ToRGB(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}
