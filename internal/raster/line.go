package raster

// Cohen-Sutherland out-codes.
const (
	outInside = 0
	outLeft   = 1
	outRight  = 2
	outBottom = 4
	outTop    = 8
)

func (r ClipRect) outCode(x, y int) int {
	code := outInside
	if x < r.MinX {
		code |= outLeft
	} else if x > r.MaxX {
		code |= outRight
	}
	if y < r.MinY {
		code |= outBottom
	} else if y > r.MaxY {
		code |= outTop
	}
	return code
}

// clipLine clips the segment against r. ok is false when no part of the
// segment lies inside. Intersections are computed in float32 and truncated.
func (r ClipRect) clipLine(x0, y0, x1, y1 int) (cx0, cy0, cx1, cy1 int, ok bool) {
	code0 := r.outCode(x0, y0)
	code1 := r.outCode(x1, y1)

	for {
		if code0|code1 == 0 {
			return x0, y0, x1, y1, true
		}
		if code0&code1 != 0 {
			return 0, 0, 0, 0, false
		}

		code := code0
		if code == 0 {
			code = code1
		}

		var x, y int
		switch {
		case code&outTop != 0:
			x = intersect(x0, x1-x0, r.MaxY-y0, y1-y0)
			y = r.MaxY
		case code&outBottom != 0:
			x = intersect(x0, x1-x0, r.MinY-y0, y1-y0)
			y = r.MinY
		case code&outRight != 0:
			x = r.MaxX
			y = intersect(y0, y1-y0, r.MaxX-x0, x1-x0)
		case code&outLeft != 0:
			x = r.MinX
			y = intersect(y0, y1-y0, r.MinX-x0, x1-x0)
		}

		if code == code0 {
			x0, y0 = x, y
			code0 = r.outCode(x0, y0)
		} else {
			x1, y1 = x, y
			code1 = r.outCode(x1, y1)
		}
	}
}

// intersect returns base + delta*num/den, truncated toward zero.
func intersect(base, delta, num, den int) int {
	return int(float32(base) + float32(delta*num)/float32(den))
}

// LineSegment draws the segment from (x1,y1) to (x2,y2) with the current pen,
// clipped to the clip rectangle. Both endpoints of the visible part are
// always plotted.
func (c *Canvas) LineSegment(x1, y1, x2, y2 int) {
	x1, y1, x2, y2, ok := c.clip.clipLine(x1, y1, x2, y2)
	if !ok {
		return
	}

	sx, sy := -1, -1
	if x2-x1 > 0 {
		sx = 1
	}
	if y2-y1 > 0 {
		sy = 1
	}
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	// Step along the dominant axis.
	steep := dy > dx
	if steep {
		x1, y1 = y1, x1
		dx, dy = dy, dx
		sx, sy = sy, sx
	}

	e := 2*dy - dx
	for i := 0; i < dx; i++ {
		if steep {
			c.plotPen(y1, x1, true)
		} else {
			c.plotPen(x1, y1, true)
		}
		for e >= 0 {
			y1 += sy
			e -= dx << 1
		}
		x1 += sx
		e += dy << 1
	}

	c.plotPen(x2, y2, true)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
