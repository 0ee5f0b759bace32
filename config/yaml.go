// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

// readYAML decodes the file at configFilePath over cfg. A missing file is
// skipped.
//
// Unknown keys are an error, so a misspelt setting such as
// pageNotice.disablePerPageNotice cannot silently keep its default.
func (cfg *ServerConfig) readYAML(configFilePath string) error {
	if configFilePath == "" {
		return nil
	}

	data, err := os.ReadFile(configFilePath) // #nosec G304 -- Only loading a config file
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().
			Str("path", configFilePath).
			Msg("No YAML configuration file found, skipping")

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", configFilePath, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		log.Warn().
			Str("path", configFilePath).
			Msg("YAML configuration file is empty, using defaults")

		return nil
	}

	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return fmt.Errorf("failed to parse YAML from %s: %w", configFilePath, err)
	}

	log.Info().
		Str("path", configFilePath).
		Bool("disable_per_page_notices", cfg.PageNotice.DisablePerPageNotices).
		Msg("Successfully loaded configuration")

	return nil
}
