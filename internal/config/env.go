// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 hlxtools authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/hlxtools/sidekick/models"
)

// envPrefix is applied to every env tag lookup on [models.Options], so
// the owner is read from SIDEKICK_OWNER, the repo from SIDEKICK_REPO,
// and so on.
const envPrefix = "SIDEKICK_"

// FromEnv reads the ambient project options from environment variables.
// This is the process-boundary replacement for the ambient global
// options record: it is consulted exactly once, by the caller, and the
// result is passed to [Resolve] explicitly.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func FromEnv() (models.Options, error) {
	var opts models.Options
	if err := env.ParseWithOptions(&opts, env.Options{Prefix: envPrefix}); err != nil {
		return models.Options{}, fmt.Errorf("error getting env options: %w", err)
	}

	return opts, nil
}
