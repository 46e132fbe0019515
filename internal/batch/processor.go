// Package batch renders thumbnail previews for a whole preset library
// using a worker pool.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"rigctl/internal/preset"
	"rigctl/internal/preview"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Library     *preset.Library
	OutputDir   string
	Size        int
	Supersample int
	Format      string // preview.FormatWebP or preview.FormatTGA
	Workers     int
	Overrides   map[string]preview.Display
}

// Result holds the outcome of processing one preset.
type Result struct {
	Name    string
	Image   string
	Success bool
	Error   string
}

// Run renders every named preset using a worker pool.
func Run(cfg Config, names []string) []Result {
	total := len(names)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f presets/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	nameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range nameChan {
				results[idx] = processPreset(cfg, names[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range names {
		nameChan <- i
	}
	close(nameChan)

	wg.Wait()
	close(done)

	return results
}

func processPreset(cfg Config, name string) Result {
	records, ok := cfg.Library.Get(name)
	if !ok {
		return Result{Name: name, Error: "preset not in library"}
	}

	opts := preview.Options{
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
	}
	if ov, ok := cfg.Overrides[name]; ok {
		opts.Angle = ov.Angle
		opts.Fill = ov.Fill
	}

	img := preview.Render(records, opts)

	image := fmt.Sprintf("%s.%s", name, cfg.Format)
	outPath := filepath.Join(cfg.OutputDir, image)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return Result{Name: name, Error: err.Error()}
	}
	if err := preview.WriteFile(outPath, img, cfg.Format); err != nil {
		return Result{Name: name, Error: err.Error()}
	}

	return Result{Name: name, Image: image, Success: true}
}
