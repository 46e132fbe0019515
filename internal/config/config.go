// Package config loads tool settings from an optional JSON file and merges
// CLI flag overrides on top.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"rigctl/internal/preset"
	"rigctl/internal/preview"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	PresetFile    string `json:"preset_file"`
	OverridesFile string `json:"overrides_file"`
	OutputDir     string `json:"output_dir"`

	// Render settings
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	Format      string `json:"format"`
	Workers     int    `json:"workers"`
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

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	PresetFile string
	OutputDir  string
	Size       int
	Format     string
	Workers    int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.PresetFile != "" {
		c.PresetFile = flags.PresetFile
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.PresetFile == "" {
		if p, err := preset.DefaultPath(); err == nil {
			c.PresetFile = p
		}
	}
	if c.OverridesFile == "" && c.PresetFile != "" {
		c.OverridesFile = filepath.Join(filepath.Dir(c.PresetFile), "display.json")
	}
	if c.OutputDir == "" {
		c.OutputDir = "previews"
	}

	// Defaults for render settings
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Format == "" {
		c.Format = preview.FormatWebP
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
