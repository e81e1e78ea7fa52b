package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hlxtools/sidekick/models"
)

// FromFile reads a project options record from a JSON file. The file
// uses the same keys as the remote configuration document.
func FromFile(path string) (models.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Options{}, fmt.Errorf("error reading an options file: %w", err)
	}
	defer f.Close()

	var opts models.Options
	if err := json.NewDecoder(f).Decode(&opts); err != nil {
		return models.Options{}, fmt.Errorf("error decoding options file: %w", err)
	}

	return opts, nil
}
