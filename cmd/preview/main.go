package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"rigctl/internal/batch"
	"rigctl/internal/config"
	"rigctl/internal/preset"
	"rigctl/internal/preview"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	presetFile := flag.String("presets", "", "Path to shape library JSON (default: user config dir)")
	outputDir := flag.String("output", "", "Output directory (default: previews)")
	size := flag.Int("size", 0, "Thumbnail size in pixels (default: 256)")
	format := flag.String("format", "", "Output format: webp or tga (default: webp)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	watch := flag.Bool("watch", false, "Keep running and re-render when the library file changes")

	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

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
		PresetFile: *presetFile,
		OutputDir:  *outputDir,
		Size:       *size,
		Format:     *format,
		Workers:    *workers,
	})

	lib, err := preset.Open(cfg.PresetFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading shape library: %v\n", err)
		os.Exit(1)
	}

	overrides, err := preview.LoadOverrides(cfg.OverridesFile)
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.OverridesFile).Msg("display overrides skipped")
	}

	fmt.Printf("Controller Shape Previews → %s\n", cfg.Format)
	fmt.Printf("Library: %s\n", cfg.PresetFile)
	fmt.Printf("Presets: %d, Workers: %d\n", len(lib.Names()), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	batchCfg := batch.Config{
		Library:     lib,
		OutputDir:   cfg.OutputDir,
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		Format:      cfg.Format,
		Workers:     cfg.Workers,
		Overrides:   overrides,
	}

	failed := renderAll(batchCfg)

	if *watch {
		stop, err := lib.Watch(log, func() {
			log.Info().Str("file", cfg.PresetFile).Msg("library changed, re-rendering")
			renderAll(batchCfg)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting watcher: %v\n", err)
			os.Exit(1)
		}
		defer stop()

		log.Info().Str("file", cfg.PresetFile).Msg("watching for changes")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// renderAll renders every preset in the library and writes the manifest.
// It returns the number of failed presets.
func renderAll(cfg batch.Config) int {
	names := cfg.Library.Names()
	if len(names) == 0 {
		fmt.Println("No presets to render.")
		return 0
	}

	start := time.Now()
	results := batch.Run(cfg, names)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

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

	fmt.Printf("Rendered: %d/%d\n", success, len(names))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, cfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	return failed
}
