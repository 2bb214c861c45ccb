package raster

import "image"

const maxPenWidth = 3

// penStamps holds the pixel footprint of a pen for each width, relative to
// the logical point.
var penStamps = [maxPenWidth + 1][]image.Point{
	1: {{0, 0}},
	2: {{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	3: {
		{0, -1}, {-1, -1}, {1, -1},
		{0, 0}, {-1, 0}, {1, 0},
		{0, 1}, {-1, 1}, {1, 1},
	},
}

// PlotPenPixel stamps the pen footprint at (x, y), subject to clipping.
func (c *Canvas) PlotPenPixel(x, y int) {
	c.plotPen(x, y, false)
}

// plotPen stamps the pen at (x, y). accepted is set for points of a segment
// that already passed line clipping; their stamps skip the clip test.
func (c *Canvas) plotPen(x, y int, accepted bool) {
	stamp := penStamps[1]
	if c.penWidth >= 1 && c.penWidth <= maxPenWidth {
		stamp = penStamps[c.penWidth]
	}
	for _, p := range stamp {
		c.plotPixel(x+p.X, y+p.Y, accepted)
	}
}

// plotPixel composites the pen over one buffer pixel. Points outside the clip
// rectangle (unless accepted) or outside the buffer are dropped.
func (c *Canvas) plotPixel(x, y int, accepted bool) {
	if !accepted && !c.clip.Contains(x, y) {
		return
	}
	if !c.fb.InBounds(x, y) {
		return
	}

	i := (y*c.fb.Width + x) * BytesPerPixel
	px := c.fb.Color[i : i+4 : i+4]
	a := c.pen.A
	px[0] = blend(c.pen.R, px[0], a)
	px[1] = blend(c.pen.G, px[1], a)
	px[2] = blend(c.pen.B, px[2], a)
	px[3] = a
}

// blend mixes one channel as (src*a + dst*(255-a)) >> 8. Fully opaque and
// fully transparent sources are exact.
func blend(src, dst, a uint8) uint8 {
	switch a {
	case 255:
		return src
	case 0:
		return dst
	}
	return uint8((int(src)*int(a) + int(dst)*(255-int(a))) >> 8)
}
