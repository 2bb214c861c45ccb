package raster

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// BytesPerPixel is the size of one RGBA pixel in FrameBuffer.Color.
const BytesPerPixel = 4

// FrameBuffer holds the drawing surface as a flat slice for cache locality.
//
// Direct pixel access (SetPixel/GetPixel) is checked and panics on coordinates
// outside the buffer. Canvas never triggers that: it drops such writes before
// they reach the buffer.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a zeroed buffer. Negative dimensions count as zero.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(w, h)
	return fb
}

// NewFrameBufferFromPixels copies row-major RGBA bytes into a new buffer.
// pix must hold exactly w*h*4 bytes.
func NewFrameBufferFromPixels(pix []uint8, w, h int) *FrameBuffer {
	fb := NewFrameBuffer(w, h)
	if len(pix) != len(fb.Color) {
		panic(fmt.Sprintf("raster: pixel data is %d bytes, want %d for %dx%d", len(pix), len(fb.Color), fb.Width, fb.Height))
	}
	copy(fb.Color, pix)
	return fb
}

// Resize reallocates the buffer. Prior contents are discarded and the new
// storage is zeroed.
func (fb *FrameBuffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	fb.Width = w
	fb.Height = h
	fb.Color = make([]uint8, w*h*BytesPerPixel)
}

// Clone returns an independent copy with the same size and contents.
func (fb *FrameBuffer) Clone() *FrameBuffer {
	c := &FrameBuffer{
		Width:  fb.Width,
		Height: fb.Height,
		Color:  make([]uint8, len(fb.Color)),
	}
	copy(c.Color, fb.Color)
	return c
}

// Clear sets every byte, alpha included, to v.
func (fb *FrameBuffer) Clear(v uint8) {
	for i := range fb.Color {
		fb.Color[i] = v
	}
}

// SetAlpha overwrites the alpha channel of every pixel.
func (fb *FrameBuffer) SetAlpha(a uint8) {
	for i := 3; i < len(fb.Color); i += BytesPerPixel {
		fb.Color[i] = a
	}
}

// SetPixel writes one pixel. It panics if (x, y) is outside the buffer.
func (fb *FrameBuffer) SetPixel(x, y int, r, g, b, a uint8) {
	i := fb.offset(x, y)
	fb.Color[i] = r
	fb.Color[i+1] = g
	fb.Color[i+2] = b
	fb.Color[i+3] = a
}

// GetPixel reads one pixel. It panics if (x, y) is outside the buffer.
func (fb *FrameBuffer) GetPixel(x, y int) (r, g, b, a uint8) {
	i := fb.offset(x, y)
	return fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (fb *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

func (fb *FrameBuffer) offset(x, y int) int {
	if !fb.InBounds(x, y) {
		panic(fmt.Sprintf("raster: pixel (%d,%d) outside %dx%d buffer", x, y, fb.Width, fb.Height))
	}
	return (y*fb.Width + x) * BytesPerPixel
}

// BytesPerPixel returns the size of one pixel in Color.
func (fb *FrameBuffer) BytesPerPixel() int { return BytesPerPixel }

// PixelCount returns Width*Height.
func (fb *FrameBuffer) PixelCount() int { return fb.Width * fb.Height }

// Data returns the raw pixel bytes. Writes through the slice modify the buffer.
func (fb *FrameBuffer) Data() []uint8 { return fb.Color }

// Bounds returns the buffer rectangle anchored at the origin.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// Image copies the buffer into an NRGBA image for encoders.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(fb.Bounds())
	copy(img.Pix, fb.Color)
	return img
}

// FromImage converts any image into a new FrameBuffer with origin (0,0).
func FromImage(src image.Image) *FrameBuffer {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && n.Stride == b.Dx()*BytesPerPixel {
		fb := NewFrameBuffer(b.Dx(), b.Dy())
		copy(fb.Color, n.Pix)
		return fb
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &FrameBuffer{
		Width:  b.Dx(),
		Height: b.Dy(),
		Color:  dst.Pix,
	}
}
