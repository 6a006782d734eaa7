// Copyright 2013 Sonia Keys.
// Licensed under MIT license.  See "license" file in this source tree.

// Median reduces image colors by median cut.
//
// It is used to cap the number of distinct tokens in a mosaic: the
// resampled grid image is cut down to a few representative colors before
// each is mapped to the palette.
package median

import (
	"container/heap"
	"image"
	"image/color"
	"sort"

	"github.com/soniakeys/gumwall"
)

// Reducer implements gumwall.Reducer.  The value is the maximum number
// of colors kept, at most 256.  Values below 1 leave images unchanged.
type Reducer int

var _ gumwall.Reducer = Reducer(0)

// Reduce returns a paletted copy of img with no more than n colors.  Each
// palette color is the mean of the pixels in its cluster.
func (n Reducer) Reduce(img image.Image) image.Image {
	if n < 1 {
		return img
	}
	if n > 256 {
		n = 256
	}
	qz := newQuantizer(img, int(n))
	if len(qz.px) == 0 {
		return img
	}
	if n > 1 {
		qz.cluster()
	}
	return qz.paletted()
}

type pixel struct {
	x, y int32
	c    [3]uint8 // r, g, b
}

type cluster struct {
	px       []pixel
	widestCh int // channel with widest value range
}

type quantizer struct {
	bounds image.Rectangle
	px     []pixel
	cs     []cluster // len(cs) is the desired number of colors
	ch     chValues  // buffer for computing median
}

type chValues []uint8
type queue []*cluster

func newQuantizer(img image.Image, n int) *quantizer {
	b := img.Bounds()
	px := make([]pixel, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := gumwall.ToRGB(img.At(x, y))
			px = append(px, pixel{int32(x), int32(y), [3]uint8{c.R, c.G, c.B}})
		}
	}
	qz := &quantizer{
		bounds: b,
		px:     px,
		cs:     make([]cluster, n),
		ch:     make(chValues, len(px)),
	}
	qz.cs[0].px = px
	return qz
}

// cluster splits the most populous splittable cluster until there are
// enough clusters or none can be split further.
func (qz *quantizer) cluster() {
	pq := new(queue)
	c := &qz.cs[0]
	for i := 1; ; {
		if setWidestChannel(c) {
			heap.Push(pq, c)
		}
		if pq.Len() == 0 {
			qz.cs = qz.cs[:i]
			return
		}
		s := heap.Pop(pq).(*cluster)
		m := qz.medianCut(s)
		c = &qz.cs[i]
		i++
		split(s, c, m)
		if i == len(qz.cs) {
			return
		}
		if setWidestChannel(s) {
			heap.Push(pq, s)
		}
	}
}

// setWidestChannel reports whether c has any color variation.
func setWidestChannel(c *cluster) bool {
	lo := [3]uint8{255, 255, 255}
	var hi [3]uint8
	for _, p := range c.px {
		for ch, v := range p.c {
			if v < lo[ch] {
				lo[ch] = v
			}
			if v > hi[ch] {
				hi[ch] = v
			}
		}
	}
	c.widestCh = 1 // green wins ties
	w := int(hi[1]) - int(lo[1])
	for _, ch := range []int{0, 2} {
		if d := int(hi[ch]) - int(lo[ch]); d > w {
			c.widestCh, w = ch, d
		}
	}
	return w > 0
}

// medianCut returns a value m such that splitting c at v < m leaves both
// halves non-empty.  c must have a value range in c.widestCh.
func (qz *quantizer) medianCut(c *cluster) uint8 {
	ch := qz.ch[:len(c.px)]
	for i, p := range c.px {
		ch[i] = p.c[c.widestCh]
	}
	sort.Sort(ch)
	m1 := len(ch) / 2
	if ch[m1] != ch[m1-1] {
		return ch[m1]
	}
	m2 := m1
	for m1--; m1 > 0 && ch[m1] == ch[m1-1]; m1-- {
	}
	for m2++; m2 < len(ch) && ch[m2] == ch[m2-1]; m2++ {
	}
	// Prefer the more even cut.
	if m1 > len(ch)-m2 {
		return ch[m1]
	}
	return ch[m2]
}

// split moves pixels of s with value >= m into c.
func split(s, c *cluster, m uint8) {
	px := s.px
	i, last := 0, len(px)-1
	for i <= last {
		if px[i].c[s.widestCh] < m {
			i++
		} else {
			px[last], px[i] = px[i], px[last]
			last--
		}
	}
	s.px = px[:i]
	c.px = px[i:]
}

func (qz *quantizer) paletted() *image.Paletted {
	cp := make(color.Palette, len(qz.cs))
	pi := image.NewPaletted(qz.bounds, cp)
	for i := range qz.cs {
		px := qz.cs[i].px
		var sum [3]int
		for _, p := range px {
			for ch, v := range p.c {
				sum[ch] += int(v)
			}
		}
		n := len(px)
		cp[i] = color.RGBA{uint8(sum[0] / n), uint8(sum[1] / n), uint8(sum[2] / n), 0xff}
		for _, p := range px {
			pi.SetColorIndex(int(p.x), int(p.y), uint8(i))
		}
	}
	return pi
}

// sort.Interface for the median search.
func (c chValues) Len() int           { return len(c) }
func (c chValues) Less(i, j int) bool { return c[i] < c[j] }
func (c chValues) Swap(i, j int)      { c[i], c[j] = c[j], c[i] }

// heap.Interface; priority is cluster population.
func (q queue) Len() int           { return len(q) }
func (q queue) Less(i, j int) bool { return len(q[i].px) > len(q[j].px) }
func (q queue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (pq *queue) Push(x interface{}) {
	*pq = append(*pq, x.(*cluster))
}
func (pq *queue) Pop() interface{} {
	q := *pq
	n := len(q) - 1
	c := q[n]
	*pq = q[:n]
	return c
}
