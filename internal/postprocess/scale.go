package postprocess

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"

	"rgba-canvas/internal/raster"
)

// Filters accepted by Scale.
const (
	FilterNearest    = "nearest"
	FilterCatmullRom = "catmullrom"
)

// ValidFilter reports whether filter is accepted by Scale.
func ValidFilter(filter string) bool {
	switch strings.ToLower(filter) {
	case FilterNearest, FilterCatmullRom, "":
		return true
	}
	return false
}

// Scale enlarges fb by an integer factor. Factors below 2 return fb itself.
//
// Nearest keeps hard pixel edges, which suits the unantialiased output of
// the rasterizer. CatmullRom works on premultiplied alpha so transparent
// neighbours do not darken edges.
func Scale(fb *raster.FrameBuffer, factor int, filter string) (*raster.FrameBuffer, error) {
	if factor < 2 {
		return fb, nil
	}

	w, h := fb.Width*factor, fb.Height*factor
	switch strings.ToLower(filter) {
	case FilterNearest, "":
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), fb.Image(), fb.Bounds(), draw.Src, nil)
		return raster.FromImage(dst), nil
	case FilterCatmullRom:
		return smoothScale(fb, w, h), nil
	}
	return nil, fmt.Errorf("postprocess: unknown filter %q", filter)
}

func smoothScale(fb *raster.FrameBuffer, w, h int) *raster.FrameBuffer {
	// Premultiply alpha
	premul := image.NewRGBA(fb.Bounds())
	for i := 0; i < len(fb.Color); i += raster.BytesPerPixel {
		a := float64(fb.Color[i+3]) / 255.0
		premul.Pix[i] = uint8(float64(fb.Color[i])*a + 0.5)
		premul.Pix[i+1] = uint8(float64(fb.Color[i+1])*a + 0.5)
		premul.Pix[i+2] = uint8(float64(fb.Color[i+2])*a + 0.5)
		premul.Pix[i+3] = fb.Color[i+3]
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	// Unpremultiply alpha
	out := raster.NewFrameBuffer(w, h)
	for i := 0; i < len(dst.Pix); i += raster.BytesPerPixel {
		a := float64(dst.Pix[i+3])
		if a > 1 {
			inv := 255.0 / a
			out.Color[i] = clamp8(float64(dst.Pix[i]) * inv)
			out.Color[i+1] = clamp8(float64(dst.Pix[i+1]) * inv)
			out.Color[i+2] = clamp8(float64(dst.Pix[i+2]) * inv)
		}
		out.Color[i+3] = dst.Pix[i+3]
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
