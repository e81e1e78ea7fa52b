package config

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/hlxtools/sidekick/models"
)

// Merge combines option records from multiple sources into one. Later
// overlays override earlier non-zero fields, so callers list sources in
// ascending priority order (e.g. env, flags, file).
func Merge(base models.Options, overlays ...models.Options) (models.Options, error) {
	merged := base
	for _, overlay := range overlays {
		if err := mergo.Merge(&merged, overlay, mergo.WithOverride); err != nil {
			return models.Options{}, fmt.Errorf("error merging options: %w", err)
		}
	}

	return merged, nil
}
