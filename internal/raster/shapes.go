package raster

import "github.com/chewxy/math32"

const (
	// QuarterTurn is the corner sweep used by rounded rectangles.
	QuarterTurn float32 = 1.57

	// arcSteps is the number of arc points per QuarterTurn of sweep.
	arcSteps = 130
)

// Circle outlines a circle with the integer midpoint algorithm, plotting the
// four symmetric points of every step.
func (c *Canvas) Circle(cx, cy, radius int) {
	x := 0
	d := (1 - radius) << 1

	for radius >= 0 {
		c.PlotPenPixel(cx+x, cy+radius)
		c.PlotPenPixel(cx+x, cy-radius)
		c.PlotPenPixel(cx-x, cy+radius)
		c.PlotPenPixel(cx-x, cy-radius)

		if d+radius > 0 {
			radius--
			d -= (radius << 1) - 1
		}
		if x > d {
			x++
			d += (x << 1) + 1
		}
	}
}

// Ellipse outlines an axis-aligned ellipse with semi-axes a (horizontal) and
// b (vertical). Region 1 steps y while the slope is shallow, region 2 steps x
// until it passes zero.
func (c *Canvas) Ellipse(cx, cy, a, b int) {
	t1 := a * a
	t2 := t1 << 1
	t3 := t2 << 1
	t4 := b * b
	t5 := t4 << 1
	t6 := t5 << 1
	t7 := a * t5
	t8 := t7 << 1
	t9 := 0

	d1 := t2 - t7 + (t4 >> 1)
	d2 := (t1 >> 1) - t8 + t5
	x := a
	y := 0

	plot4 := func() {
		c.PlotPenPixel(cx+x, cy+y)
		c.PlotPenPixel(cx+x, cy-y)
		c.PlotPenPixel(cx-x, cy+y)
		c.PlotPenPixel(cx-x, cy-y)
	}

	for d2 < 0 {
		plot4()

		y++
		t9 += t3
		if d1 < 0 {
			d1 += t9 + t2
			d2 += t9
		} else {
			x--
			t8 -= t6
			d1 += t9 + t2 - t8
			d2 += t9 + t5 - t8
		}
	}

	for {
		plot4()

		x--
		t8 -= t6
		if d2 < 0 {
			y++
			t9 += t3
			d2 += t9 + t5 - t8
		} else {
			d2 += t5 - t8
		}
		if x < 0 {
			break
		}
	}
}

// arcPoints calls fn for each point of the arc around (cx,cy) that starts at
// (sx,sy) and sweeps the given angle in radians. The start point itself is
// not visited. A sweep too small to yield two steps visits nothing.
func arcPoints(cx, cy, sx, sy int, sweep float32, fn func(x, y int)) {
	n := int(arcSteps * (sweep / QuarterTurn))
	if n < 2 {
		return
	}

	dx := float32(sx - cx)
	dy := float32(sy - cy)
	step := sweep / float32(n-1)
	cos, sin := math32.Cos(step), math32.Sin(step)

	for i := 1; i != n; i++ {
		dx, dy = cos*dx-sin*dy, sin*dx+cos*dy
		fn(int(float32(cx)+dx), int(float32(cy)+dy))
	}
}

// Arc plots a circular arc around (cx,cy) starting on the circle at (sx,sy)
// and sweeping angle radians. Zero or negative sweeps draw nothing.
func (c *Canvas) Arc(cx, cy, sx, sy int, angle float32) {
	arcPoints(cx, cy, sx, sy, angle, c.PlotPenPixel)
}

// FillArc fills the pie wedge of the matching Arc by joining every arc point
// to the centre.
func (c *Canvas) FillArc(cx, cy, sx, sy int, angle float32) {
	arcPoints(cx, cy, sx, sy, angle, func(x, y int) {
		c.LineSegment(cx, cy, x, y)
	})
}

// RoundedRectangle outlines the rectangle (x1,y1)-(x2,y2) with quarter-circle
// corners of the given radius.
func (c *Canvas) RoundedRectangle(x1, y1, x2, y2, radius int) {
	c.LineSegment(x1+radius, y1, x2-radius, y1)     // top
	c.LineSegment(x2-1, y1+radius, x2-1, y2-radius) // right
	c.LineSegment(x1+radius, y2-1, x2-radius, y2-1) // bottom
	c.LineSegment(x1, y1+radius, x1, y2-radius)     // left

	c.Arc(x1+radius, y1+radius, x1, y1+radius, QuarterTurn)
	c.Arc(x2-radius, y1+radius, x2-radius, y1, QuarterTurn)
	c.Arc(x2-radius, y2-radius, x2, y2-radius, QuarterTurn)
	c.Arc(x1+radius, y2-radius, x1+radius, y2, QuarterTurn)
}

// FillCircle fills the disc around (cx,cy). The membership test is loosened
// to dx²+dy² <= r²+0.8r, which rounds the rim outwards.
func (c *Canvas) FillCircle(cx, cy, radius int) {
	r2 := float32(radius * radius)
	delta := float32(radius) * 0.8

	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if float32(x*x+y*y) <= r2+delta {
				c.PlotPenPixel(cx+x, cy+y)
			}
		}
	}
}

// FillRoundedRectangle fills three stacked bands and four corner wedges.
func (c *Canvas) FillRoundedRectangle(x1, y1, x2, y2, radius int) {
	c.FillRectangle(x1+radius, y1, x2-radius, y1+radius)
	c.FillRectangle(x1, y1+radius, x2, y2-radius)
	c.FillRectangle(x1+radius, y2-radius, x2-radius, y2+1)

	c.FillArc(x1+radius, y1+radius, x1, y1+radius, QuarterTurn)
	c.FillArc(x2-radius, y1+radius, x2-radius, y1, QuarterTurn)
	c.FillArc(x2-radius, y2-radius, x2, y2-radius, QuarterTurn)
	c.FillArc(x1+radius, y2-radius, x1+radius, y2, QuarterTurn)
}
