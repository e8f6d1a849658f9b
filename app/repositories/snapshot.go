package repositories

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// loadJSON reads a snapshot file into v. Callers treat any error as "no
// usable snapshot" and keep their seeded state.
func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// saveJSON writes v as indented JSON, creating the data directory on first
// use. Matches the simple write-after-every-mutation persistence model.
func saveJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
