package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"rgba-canvas/internal/batch"
	"rgba-canvas/internal/config"
	"rgba-canvas/internal/encode"
	"rgba-canvas/internal/logging"
	"rgba-canvas/internal/postprocess"
	"rgba-canvas/internal/sprite"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneDir := flag.String("scenes", "", "Directory of .json/.toml scene files (default: scenes)")
	spriteDir := flag.String("sprites", "", "Directory of sprites for blit ops (default: sprites)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Output format: webp, png or bmp (default: webp)")
	scale := flag.Int("scale", 0, "Integer upscale factor (default: 1)")
	filter := flag.String("filter", "", "Upscale filter: nearest or catmullrom (default: nearest)")
	trim := flag.Bool("trim", false, "Crop renders to their visible pixels")
	pad := flag.Int("pad", 0, "Transparent border kept around trimmed renders")
	mirror := flag.Bool("mirror", false, "Flip renders horizontally")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Log debug output")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneDir:  *sceneDir,
		SpriteDir: *spriteDir,
		OutputDir: *outputDir,
		Format:    *format,
		Scale:     *scale,
		Filter:    *filter,
		Workers:   *workers,
		Trim:      *trim,
		Pad:       *pad,
		Mirror:    *mirror,
	})

	if !encode.Valid(cfg.Format) {
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", cfg.Format)
		os.Exit(1)
	}
	if !postprocess.ValidFilter(cfg.Filter) {
		fmt.Fprintf(os.Stderr, "Error: unknown filter %q\n", cfg.Filter)
		os.Exit(1)
	}

	paths, err := batch.Discover(cfg.SceneDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding scenes: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Println("No scenes to render.")
		os.Exit(0)
	}

	// Build sprite index
	spriteIndex := sprite.BuildIndex(cfg.SpriteDir)
	spriteCache := sprite.NewCache(spriteIndex)

	fmt.Printf("Scenes: %d, Sprites: %d indexed, Workers: %d\n", len(paths), spriteIndex.Len(), cfg.Workers)
	fmt.Printf("Output: %s (%s, x%d)\n", cfg.OutputDir, cfg.Format, cfg.Scale)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:     cfg.OutputDir,
		Sprites:       spriteCache,
		Format:        cfg.Format,
		Scale:         cfg.Scale,
		Filter:        cfg.Filter,
		Workers:       cfg.Workers,
		Trim:          cfg.Trim,
		Pad:           cfg.Pad,
		Mirror:        cfg.Mirror,
		ProgressEvery: 2 * time.Second,
	}, paths)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(paths))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(20, len(errors))
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Source, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: create output dir: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
