package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameBufferSetGetRoundTrip(t *testing.T) {
	fb := NewFrameBuffer(7, 5)
	require.Len(t, fb.Color, 7*5*4)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			fb.SetPixel(x, y, uint8(x), uint8(y), uint8(x+y), uint8(200-x))
		}
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b, a := fb.GetPixel(x, y)
			assert.Equal(t, [4]uint8{uint8(x), uint8(y), uint8(x + y), uint8(200 - x)}, [4]uint8{r, g, b, a}, "pixel (%d,%d)", x, y)
		}
	}
}

func TestFrameBufferClear(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.SetPixel(1, 1, 1, 2, 3, 4)
	fb.Clear(77)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b, a := fb.GetPixel(x, y)
			assert.Equal(t, [4]uint8{77, 77, 77, 77}, [4]uint8{r, g, b, a})
		}
	}
}

func TestFrameBufferSetAlpha(t *testing.T) {
	fb := NewFrameBuffer(3, 3)
	fb.Clear(9)
	fb.SetAlpha(255)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b, a := fb.GetPixel(x, y)
			assert.Equal(t, [4]uint8{9, 9, 9, 255}, [4]uint8{r, g, b, a})
		}
	}
}

func TestFrameBufferAccessors(t *testing.T) {
	fb := NewFrameBuffer(6, 2)
	assert.Equal(t, 4, fb.BytesPerPixel())
	assert.Equal(t, 12, fb.PixelCount())
	assert.Equal(t, image.Rect(0, 0, 6, 2), fb.Bounds())
	assert.Len(t, fb.Data(), 48)
	assert.True(t, fb.InBounds(5, 1))
	assert.False(t, fb.InBounds(6, 1))
	assert.False(t, fb.InBounds(0, -1))
}

func TestFrameBufferNegativeSize(t *testing.T) {
	fb := NewFrameBuffer(-3, 4)
	assert.Equal(t, 0, fb.Width)
	assert.Equal(t, 4, fb.Height)
	assert.Empty(t, fb.Color)
	assert.Equal(t, 0, fb.PixelCount())
}

func TestFrameBufferResizeDiscardsContents(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Clear(255)
	fb.Resize(3, 1)

	assert.Equal(t, 3, fb.Width)
	assert.Equal(t, 1, fb.Height)
	assert.Equal(t, make([]uint8, 12), fb.Color)
}

func TestFrameBufferFromPixelsCopies(t *testing.T) {
	pix := []uint8{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	fb := NewFrameBufferFromPixels(pix, 2, 2)
	pix[0] = 99

	r, g, b, a := fb.GetPixel(0, 0)
	assert.Equal(t, [4]uint8{1, 2, 3, 4}, [4]uint8{r, g, b, a})
	r, g, b, a = fb.GetPixel(1, 1)
	assert.Equal(t, [4]uint8{13, 14, 15, 16}, [4]uint8{r, g, b, a})
}

func TestFrameBufferFromPixelsSizeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewFrameBufferFromPixels(make([]uint8, 15), 2, 2)
	})
}

func TestFrameBufferOutOfRangePanics(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	assert.Panics(t, func() { fb.GetPixel(4, 0) })
	assert.Panics(t, func() { fb.GetPixel(0, -1) })
	assert.Panics(t, func() { fb.SetPixel(-1, 2, 0, 0, 0, 0) })
	// (4,0) would alias (0,1) in flat storage without the check.
	assert.Panics(t, func() { fb.SetPixel(4, 0, 1, 1, 1, 1) })
}

func TestFrameBufferCloneIsIndependent(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.SetPixel(0, 0, 10, 20, 30, 40)

	c := fb.Clone()
	c.SetPixel(0, 0, 1, 1, 1, 1)

	r, g, b, a := fb.GetPixel(0, 0)
	assert.Equal(t, [4]uint8{10, 20, 30, 40}, [4]uint8{r, g, b, a})
	assert.Equal(t, fb.Width, c.Width)
	assert.Equal(t, fb.Height, c.Height)
}

func TestFrameBufferImageRoundTrip(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.SetPixel(2, 1, 200, 100, 50, 255)

	img := fb.Image()
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, img.NRGBAAt(2, 1))

	back := FromImage(img)
	assert.Equal(t, fb.Color, back.Color)
}

func TestFromImageConvertsAndRebases(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.SetRGBA(6, 5, color.RGBA{R: 0, G: 255, B: 0, A: 255})

	fb := FromImage(src)
	require.Equal(t, 2, fb.Width)
	require.Equal(t, 1, fb.Height)

	r, g, b, a := fb.GetPixel(1, 0)
	assert.Equal(t, [4]uint8{0, 255, 0, 255}, [4]uint8{r, g, b, a})
	_, _, _, a = fb.GetPixel(0, 0)
	assert.Equal(t, uint8(0), a)
}
