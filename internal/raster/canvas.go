package raster

import "image/color"

// ClipRect is a clip rectangle with inclusive bounds in buffer coordinates.
type ClipRect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r ClipRect) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Canvas draws primitives onto a FrameBuffer it does not own.
//
// Several canvases may target the same buffer. Nothing is synchronized: a
// buffer must only be drawn on from one goroutine at a time.
type Canvas struct {
	fb       *FrameBuffer
	penWidth int
	pen      color.NRGBA
	clip     ClipRect
}

// NewCanvas returns a canvas with a 1 pixel opaque white pen and a clip
// rectangle covering the whole buffer.
func NewCanvas(fb *FrameBuffer) *Canvas {
	c := &Canvas{
		fb:       fb,
		penWidth: 1,
		pen:      color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
	c.ResetClip()
	return c
}

// Target returns the buffer the canvas draws on.
func (c *Canvas) Target() *FrameBuffer { return c.fb }

// Width returns the width of the target buffer.
func (c *Canvas) Width() int { return c.fb.Width }

// Height returns the height of the target buffer.
func (c *Canvas) Height() int { return c.fb.Height }

// SetClip restricts drawing to the inclusive rectangle [minX,maxX]x[minY,maxY].
func (c *Canvas) SetClip(minX, minY, maxX, maxY int) {
	c.clip = ClipRect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// ResetClip sets the clip rectangle back to the full target buffer.
func (c *Canvas) ResetClip() {
	c.clip = ClipRect{MaxX: c.fb.Width - 1, MaxY: c.fb.Height - 1}
}

// Clip returns the current clip rectangle.
func (c *Canvas) Clip() ClipRect { return c.clip }

// SetPenWidth sets the stroke width. Values outside 1..3 are ignored.
func (c *Canvas) SetPenWidth(w int) {
	if w >= 1 && w <= maxPenWidth {
		c.penWidth = w
	}
}

// PenWidth returns the stroke width in pixels.
func (c *Canvas) PenWidth() int { return c.penWidth }

// SetPenColor sets the non-premultiplied pen color used by every primitive.
func (c *Canvas) SetPenColor(r, g, b, a uint8) {
	c.pen = color.NRGBA{R: r, G: g, B: b, A: a}
}

// PenColor returns the current pen color.
func (c *Canvas) PenColor() color.NRGBA { return c.pen }

// Rectangle outlines the rectangle with corners (x1,y1) and (x2,y2).
func (c *Canvas) Rectangle(x1, y1, x2, y2 int) {
	c.LineSegment(x1, y1, x2, y1)
	c.LineSegment(x2, y1, x2, y2)
	c.LineSegment(x2, y2, x1, y2)
	c.LineSegment(x1, y2, x1, y1)
}

// Triangle outlines the triangle through the three vertices.
func (c *Canvas) Triangle(x1, y1, x2, y2, x3, y3 int) {
	c.LineSegment(x1, y1, x2, y2)
	c.LineSegment(x2, y2, x3, y3)
	c.LineSegment(x3, y3, x1, y1)
}

// Quad outlines the quadrilateral through the four vertices in order.
func (c *Canvas) Quad(x1, y1, x2, y2, x3, y3, x4, y4 int) {
	c.LineSegment(x1, y1, x2, y2)
	c.LineSegment(x2, y2, x3, y3)
	c.LineSegment(x3, y3, x4, y4)
	c.LineSegment(x4, y4, x1, y1)
}

// FillRectangle draws one horizontal segment per row from y1 up to, but not
// including, y2.
func (c *Canvas) FillRectangle(x1, y1, x2, y2 int) {
	for y := y1; y < y2; y++ {
		c.LineSegment(x1, y, x2, y)
	}
}

// Blit copies the w x h block at (srcX,srcY) of src to (dstX,dstY).
//
// The block is shrunk to fit inside both buffers. Every source pixel is
// composited with its own color and alpha and passes the clip test; the pen
// is left as it was.
func (c *Canvas) Blit(src *FrameBuffer, srcX, srcY, dstX, dstY, w, h int) {
	if srcX < 0 {
		w += srcX
		dstX -= srcX
		srcX = 0
	}
	if srcY < 0 {
		h += srcY
		dstY -= srcY
		srcY = 0
	}
	if dstX < 0 {
		w += dstX
		srcX -= dstX
		dstX = 0
	}
	if dstY < 0 {
		h += dstY
		srcY -= dstY
		dstY = 0
	}
	w = min(w, src.Width-srcX, c.fb.Width-dstX)
	h = min(h, src.Height-srcY, c.fb.Height-dstY)
	if w <= 0 || h <= 0 {
		return
	}

	saved := c.pen
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			r, g, b, a := src.GetPixel(srcX+i, srcY+j)
			c.pen = color.NRGBA{R: r, G: g, B: b, A: a}
			c.plotPixel(dstX+i, dstY+j, false)
		}
	}
	c.pen = saved
}
