package sprite

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"

	"rgba-canvas/internal/raster"
)

type decodeFunc func(io.Reader) (image.Image, error)

// decoders is keyed by lowercase extension. TGA has no magic number, so the
// format is chosen from the file name rather than sniffed.
var decoders = map[string]decodeFunc{
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".tga":  tga.Decode,
	".bmp":  bmp.Decode,
	".webp": nativewebp.Decode,
}

// Load decodes a PNG, JPEG, TGA, BMP or WebP file into a FrameBuffer.
func Load(path string) (*raster.FrameBuffer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: read %s: %w", path, err)
	}
	return Decode(raw, path)
}

// Decode decodes an in-memory image whose format is given by the extension
// of name.
func Decode(raw []byte, name string) (*raster.FrameBuffer, error) {
	ext := strings.ToLower(filepath.Ext(name))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("sprite: unknown extension: %q", ext)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("sprite: empty file: %s", name)
	}

	img, err := dec(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("sprite: decode %s: %w", name, err)
	}
	return raster.FromImage(img), nil
}
