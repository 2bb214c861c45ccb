package postprocess

import "rgba-canvas/internal/raster"

// Trim crops fb to the bounding box of pixels with non-zero alpha, then adds
// pad transparent pixels on every side. A fully transparent buffer is
// returned unchanged.
func Trim(fb *raster.FrameBuffer, pad int) *raster.FrameBuffer {
	minX, minY := fb.Width, fb.Height
	maxX, maxY := -1, -1
	for y := 0; y < fb.Height; y++ {
		row := fb.Color[y*fb.Width*raster.BytesPerPixel:]
		for x := 0; x < fb.Width; x++ {
			if row[x*raster.BytesPerPixel+3] == 0 {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if maxX < 0 {
		return fb
	}
	pad = max(pad, 0)

	cropW := maxX - minX + 1
	cropH := maxY - minY + 1
	out := raster.NewFrameBuffer(cropW+2*pad, cropH+2*pad)
	stride := fb.Width * raster.BytesPerPixel
	for y := 0; y < cropH; y++ {
		srcOff := (minY+y)*stride + minX*raster.BytesPerPixel
		dstOff := ((pad+y)*out.Width + pad) * raster.BytesPerPixel
		copy(out.Color[dstOff:dstOff+cropW*raster.BytesPerPixel], fb.Color[srcOff:srcOff+cropW*raster.BytesPerPixel])
	}
	return out
}

// FlipHorizontal returns a mirrored copy of fb.
func FlipHorizontal(fb *raster.FrameBuffer) *raster.FrameBuffer {
	out := raster.NewFrameBuffer(fb.Width, fb.Height)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			src := (y*fb.Width + x) * raster.BytesPerPixel
			dst := (y*fb.Width + fb.Width - 1 - x) * raster.BytesPerPixel
			copy(out.Color[dst:dst+raster.BytesPerPixel], fb.Color[src:src+raster.BytesPerPixel])
		}
	}
	return out
}
