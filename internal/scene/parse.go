package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads a .json or .toml scene file. An empty Name defaults to the
// file stem.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	s, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes and validates a scene. format is ".json" or ".toml".
func Parse(data []byte, format string) (*Scene, error) {
	var s Scene
	switch strings.ToLower(format) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown scene format %q", format)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// IsSceneFile reports whether path has a scene file extension.
func IsSceneFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".toml":
		return true
	}
	return false
}

// MaxPixels bounds the buffer size of a single scene.
const MaxPixels = 1 << 26

// Validate checks the name, sizes, byte ranges and per-op arguments.
func (s *Scene) Validate() error {
	if strings.ContainsAny(s.Name, `/\`) || s.Name == "." || s.Name == ".." {
		return fmt.Errorf("invalid name %q", s.Name)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", s.Width, s.Height)
	}
	if s.Width > MaxPixels/s.Height {
		return fmt.Errorf("size %dx%d exceeds %d pixels", s.Width, s.Height, MaxPixels)
	}
	if !isByte(s.Clear) {
		return fmt.Errorf("clear value %d out of range", s.Clear)
	}
	if s.Alpha != nil && !isByte(*s.Alpha) {
		return fmt.Errorf("alpha value %d out of range", *s.Alpha)
	}
	for i, op := range s.Ops {
		if err := op.validate(); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
		}
	}
	return nil
}

func (op *Op) validate() error {
	rule, ok := pointRules[op.Kind]
	if !ok {
		return fmt.Errorf("unknown op")
	}

	n := len(op.Points)
	if n < rule.min || (rule.max >= 0 && n > rule.max) {
		if rule.min == rule.max {
			return fmt.Errorf("want %d points, got %d", rule.min, n)
		}
		return fmt.Errorf("want at least %d points, got %d", rule.min, n)
	}
	for j, p := range op.Points {
		if len(p) != 2 {
			return fmt.Errorf("point %d has %d coordinates", j, len(p))
		}
	}

	if op.Color != nil {
		if len(op.Color) != 4 {
			return fmt.Errorf("color needs 4 channels, got %d", len(op.Color))
		}
		for _, v := range op.Color {
			if !isByte(v) {
				return fmt.Errorf("color channel %d out of range", v)
			}
		}
	}

	switch op.Kind {
	case OpClip:
		if len(op.Clip) != 4 {
			return fmt.Errorf("clip needs 4 values, got %d", len(op.Clip))
		}
	case OpCircle, OpFillCircle, OpRoundedRect, OpFillRoundedRect:
		if op.Radius < 0 {
			return fmt.Errorf("negative radius %d", op.Radius)
		}
	case OpEllipse:
		if op.RX < 0 || op.RY < 0 {
			return fmt.Errorf("negative semi-axis %dx%d", op.RX, op.RY)
		}
	case OpBlit:
		if op.Sprite == "" {
			return fmt.Errorf("missing sprite")
		}
		if op.Src != nil && len(op.Src) != 4 {
			return fmt.Errorf("src needs 4 values, got %d", len(op.Src))
		}
	}
	return nil
}

func isByte(v int) bool { return v >= 0 && v <= 255 }
