// Package preset stores named curve-shape sets: a JSON file mapping preset
// name to an ordered list of shape geometries. A bundled read-only set of
// defaults backs the library until a user file exists.
//
// The file schema ({degree, form, point, knot} per shape) persists geometry
// only. Color overrides are deliberately not written, for compatibility
// with existing library files; the in-session clipboard is where colors
// travel.
package preset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"rigctl/internal/curve"
)

//go:embed default_shapes.json
var defaultShapes []byte

// Library is a named-preset collection bound to a file path. The path may
// not exist yet; reads then fall back to the bundled defaults.
type Library struct {
	path string
	sets map[string][]curve.Geometry
}

// DefaultPath returns the user library location under the platform config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("preset: user config dir: %w", err)
	}
	return filepath.Join(dir, "controller-editor", "shapes.json"), nil
}

// Open loads the library at path, or the bundled defaults when no file
// exists there yet.
func Open(path string) (*Library, error) {
	l := &Library{path: path}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Path returns the file the library reads from and saves to.
func (l *Library) Path() string { return l.path }

// Reload re-reads the backing file (or the bundled defaults), replacing the
// in-memory sets.
func (l *Library) Reload() error {
	data := defaultShapes
	fromFile := false
	if l.path != "" {
		if b, err := os.ReadFile(l.path); err == nil {
			data = b
			fromFile = true
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("preset: read %s: %w", l.path, err)
		}
	}

	sets := make(map[string][]curve.Geometry)
	if err := json.Unmarshal(data, &sets); err != nil {
		src := "bundled defaults"
		if fromFile {
			src = l.path
		}
		return fmt.Errorf("preset: parse %s: %w", src, err)
	}
	for name, shapes := range sets {
		for i, g := range shapes {
			if err := g.Validate(); err != nil {
				return fmt.Errorf("preset: %s shape %d: %w", name, i, err)
			}
		}
	}
	l.sets = sets
	return nil
}

// Names returns every preset name, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.sets))
	for name := range l.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the records of a preset. Library records never carry color.
func (l *Library) Get(name string) ([]curve.Record, bool) {
	shapes, ok := l.sets[name]
	if !ok {
		return nil, false
	}
	records := make([]curve.Record, len(shapes))
	for i, g := range shapes {
		records[i] = curve.Record{Geometry: g.Clone()}
	}
	return records, true
}

// Set stores a preset in memory, replacing any previous entry with the
// same name. Record colors are dropped (see the package comment).
func (l *Library) Set(name string, records []curve.Record) {
	shapes := make([]curve.Geometry, len(records))
	for i, r := range records {
		shapes[i] = r.Geometry.Clone()
	}
	l.sets[name] = shapes
}

// Delete removes a preset in memory.
func (l *Library) Delete(name string) {
	delete(l.sets, name)
}

// Save writes the library to its file, creating the directory if needed.
func (l *Library) Save() error {
	if l.path == "" {
		return fmt.Errorf("preset: library has no file path")
	}
	data, err := json.MarshalIndent(l.sets, "", "    ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("preset: create %s: %w", filepath.Dir(l.path), err)
	}
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("preset: write %s: %w", l.path, err)
	}
	return nil
}
