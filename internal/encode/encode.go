// Package encode writes finished frame buffers as image files.
package encode

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"

	"rgba-canvas/internal/raster"
)

// Output formats.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
	FormatBMP  = "bmp"
)

// Ext returns the file extension for format, including the dot.
func Ext(format string) string {
	return "." + strings.ToLower(format)
}

// Valid reports whether format is supported.
func Valid(format string) bool {
	switch strings.ToLower(format) {
	case FormatWebP, FormatPNG, FormatBMP:
		return true
	}
	return false
}

// Encode writes fb to w. WebP output is lossless.
func Encode(w io.Writer, fb *raster.FrameBuffer, format string) error {
	img := fb.Image()
	var err error
	switch strings.ToLower(format) {
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("encode: unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode: %s: %w", format, err)
	}
	return nil
}

// WriteFile encodes fb into path, creating parent directories as needed.
func WriteFile(path string, fb *raster.FrameBuffer, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("encode: mkdir %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	if err := Encode(f, fb, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
