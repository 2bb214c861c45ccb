package batch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"rgba-canvas/internal/encode"
	"rgba-canvas/internal/logging"
	"rgba-canvas/internal/postprocess"
	"rgba-canvas/internal/scene"
	"rgba-canvas/internal/sprite"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	Sprites   sprite.Resolver
	Format    string
	Scale     int
	Filter    string
	Workers   int

	// Trim crops each render to its visible pixels plus Pad.
	Trim   bool
	Pad    int
	Mirror bool

	// ProgressEvery is the progress log interval. Zero disables it.
	ProgressEvery time.Duration
}

// Result holds the outcome of rendering one scene file.
type Result struct {
	Source  string
	Name    string
	Output  string // relative to OutputDir
	Width   int
	Height  int
	Success bool
	Error   string
}

// Discover returns the scene files under dir in lexical order.
func Discover(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && scene.IsSceneFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Run renders all scene files using a worker pool. Results keep the order
// of paths.
func Run(cfg Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()
	log := logging.Logger()

	// Progress reporter
	done := make(chan struct{})
	if cfg.ProgressEvery > 0 {
		go func() {
			ticker := time.NewTicker(cfg.ProgressEvery)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						log.Info("progress", "done", p, "total", total, "rate", float64(p)/elapsed)
					}
				}
			}
		}()
	}

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processScene(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range paths {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func processScene(cfg Config, path string) Result {
	res := Result{
		Source: path,
		Name:   strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}
	fail := func(err error) Result {
		res.Error = err.Error()
		logging.Logger().Warn("scene failed", "source", path, "err", err)
		return res
	}

	s, err := scene.Load(path)
	if err != nil {
		return fail(err)
	}
	res.Name = s.Name

	fb, err := scene.Render(s, cfg.Sprites)
	if err != nil {
		return fail(err)
	}

	if cfg.Trim {
		fb = postprocess.Trim(fb, cfg.Pad)
	}
	if cfg.Mirror {
		fb = postprocess.FlipHorizontal(fb)
	}

	fb, err = postprocess.Scale(fb, cfg.Scale, cfg.Filter)
	if err != nil {
		return fail(err)
	}

	res.Output = s.Name + encode.Ext(cfg.Format)
	if err := encode.WriteFile(filepath.Join(cfg.OutputDir, res.Output), fb, cfg.Format); err != nil {
		res.Output = ""
		return fail(err)
	}

	res.Width = fb.Width
	res.Height = fb.Height
	res.Success = true
	logging.Logger().Debug("scene written", "name", s.Name, "output", res.Output)
	return res
}
