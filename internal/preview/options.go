package preview

import (
	"encoding/json"
	"fmt"
	"os"
)

// Display is a per-preset render override: a view-plane rotation and a
// fill ratio, keyed by preset name in an optional user JSON file.
type Display struct {
	Angle float64 `json:"angle"`
	Fill  float64 `json:"fill"`
}

// LoadOverrides reads the per-preset display overrides file. A missing
// file is not an error and yields an empty map.
func LoadOverrides(path string) (map[string]Display, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]Display{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("preview: read %s: %w", path, err)
	}
	out := make(map[string]Display)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("preview: parse %s: %w", path, err)
	}
	return out, nil
}
