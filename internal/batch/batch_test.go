package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"rigctl/internal/preset"
	"rigctl/internal/preview"
)

func TestRunRendersLibrary(t *testing.T) {
	lib, err := preset.Open(filepath.Join(t.TempDir(), "shapes.json"))
	if err != nil {
		t.Fatalf("open library: %v", err)
	}

	outDir := t.TempDir()
	cfg := Config{
		Library:     lib,
		OutputDir:   outDir,
		Size:        64,
		Supersample: 2,
		Format:      preview.FormatWebP,
		Workers:     2,
	}

	names := []string{"circle", "square"}
	results := Run(cfg, names)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if !r.Success {
			t.Errorf("%s: %s", r.Name, r.Error)
			continue
		}
		if _, err := os.Stat(filepath.Join(outDir, r.Image)); err != nil {
			t.Errorf("%s: missing output: %v", r.Name, err)
		}
	}
}

func TestRunUnknownPreset(t *testing.T) {
	lib, err := preset.Open(filepath.Join(t.TempDir(), "shapes.json"))
	if err != nil {
		t.Fatalf("open library: %v", err)
	}

	cfg := Config{
		Library:     lib,
		OutputDir:   t.TempDir(),
		Size:        32,
		Supersample: 1,
		Format:      preview.FormatWebP,
		Workers:     1,
	}

	results := Run(cfg, []string{"no_such_preset"})
	if results[0].Success {
		t.Fatal("expected failure for unknown preset")
	}
	if results[0].Error == "" {
		t.Fatal("expected error message")
	}
}

func TestWriteManifest(t *testing.T) {
	lib, err := preset.Open(filepath.Join(t.TempDir(), "shapes.json"))
	if err != nil {
		t.Fatalf("open library: %v", err)
	}

	outDir := t.TempDir()
	cfg := Config{
		Library:     lib,
		OutputDir:   outDir,
		Size:        32,
		Supersample: 1,
		Format:      preview.FormatWebP,
		Workers:     1,
	}

	results := Run(cfg, []string{"circle", "no_such_preset"})

	manifest := filepath.Join(outDir, "manifest.json")
	if err := WriteManifest(manifest, cfg, results); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (failures excluded)", len(entries))
	}
	if entries[0].Name != "circle" || entries[0].Image != "circle.webp" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
	if entries[0].Shapes != 1 {
		t.Fatalf("circle preset should have 1 shape, got %d", entries[0].Shapes)
	}
}
