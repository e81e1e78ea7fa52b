// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 hlxtools authors

// Command sidekick resolves a project's sidekick configuration and
// prints the resulting snapshot as JSON.
//
// It is the process-boundary adapter for the resolver: ambient options
// are read exactly once here (environment variables, then flags, then
// an optional JSON options file, later sources winning) and passed to
// the resolver explicitly.
package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hlxtools/sidekick/internal/admin"
	"github.com/hlxtools/sidekick/internal/config"
	"github.com/hlxtools/sidekick/internal/logger"
	"github.com/hlxtools/sidekick/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sidekick")

	envOpts, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("error reading env options")
	}

	flagOpts, optionsPath := config.ParseFlags()

	overlays := []models.Options{flagOpts}
	if optionsPath != "" {
		fileOpts, err := config.FromFile(optionsPath)
		if err != nil {
			log.Fatal().Err(err).Msg("error reading options file")
		}
		overlays = append(overlays, fileOpts)
	}

	opts, err := config.Merge(envOpts, overlays...)
	if err != nil {
		log.Fatal().Err(err).Msg("error merging options")
	}

	log.Debug().Any("options", opts).Msg("received ambient options")

	snap := config.Resolve(context.Background(), opts, config.Deps{
		Fetcher: admin.NewClient(admin.ClientConfig{}, log),
		Log:     log,
	})

	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding snapshot")
	}

	fmt.Println(string(out))
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
