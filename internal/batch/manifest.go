package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered image in the output manifest.
type ManifestEntry struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// WriteManifest writes manifest.json listing the successful results.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:   r.Name,
			Source: r.Source,
			Image:  r.Output,
			Width:  r.Width,
			Height: r.Height,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
