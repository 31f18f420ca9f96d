package batch

import (
	"encoding/json"
	"os"
)

// Manifest describes one export run.
type Manifest struct {
	Scene  string   `json:"scene"`
	FPS    float64  `json:"fps"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Frames []Result `json:"frames"`
}

// WriteManifest writes manifest.json to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
