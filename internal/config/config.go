package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`
	SceneDir  string `json:"scene_dir"`
	SpriteDir string `json:"sprite_dir"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Format  string `json:"format"`
	Scale   int    `json:"scale"`
	Filter  string `json:"filter"`
	Workers int    `json:"workers"`

	// Post-processing, applied before scaling
	Trim   bool `json:"trim"`
	Pad    int  `json:"pad"`
	Mirror bool `json:"mirror"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.SceneDir != "" {
		c.SceneDir = flags.SceneDir
	}
	if flags.SpriteDir != "" {
		c.SpriteDir = flags.SpriteDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Filter != "" {
		c.Filter = flags.Filter
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Trim {
		c.Trim = true
	}
	if flags.Pad > 0 {
		c.Pad = flags.Pad
	}
	if flags.Mirror {
		c.Mirror = true
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	// Resolve relative paths against base dir
	c.SceneDir = resolvePath(c.BaseDir, c.SceneDir, "scenes")
	c.SpriteDir = resolvePath(c.BaseDir, c.SpriteDir, "sprites")
	c.OutputDir = resolvePath(c.BaseDir, c.OutputDir, "renders")

	// Defaults for render settings
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Filter == "" {
		c.Filter = "nearest"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Pad < 0 {
		c.Pad = 0
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SceneDir  string
	SpriteDir string
	OutputDir string
	Format    string
	Scale     int
	Filter    string
	Workers   int
	Trim      bool
	Pad       int
	Mirror    bool
}

func resolvePath(base, path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}
