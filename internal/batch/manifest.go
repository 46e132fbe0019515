package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one preset in the output manifest.
type ManifestEntry struct {
	Name   string `json:"name"`
	Shapes int    `json:"shapes"`
	Image  string `json:"image"`
}

// WriteManifest writes manifest.json next to the rendered thumbnails.
func WriteManifest(path string, cfg Config, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		records, _ := cfg.Library.Get(r.Name)
		entries = append(entries, ManifestEntry{
			Name:   r.Name,
			Shapes: len(records),
			Image:  r.Image,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
