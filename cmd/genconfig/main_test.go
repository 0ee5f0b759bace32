// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/pixivfe/pagenotice/config"
)

func defaultConfig() *config.ServerConfig {
	cfg := &config.ServerConfig{}
	cfg.SetDefaults()

	return cfg
}

func TestEnvFile(t *testing.T) {
	t.Parallel()

	out := envFile(defaultConfig())

	assert.Contains(t, out, "## Basic\n")
	assert.Contains(t, out, "PAGENOTICE_PORT=\"8383\"\n")
	assert.Contains(t, out, "# PAGENOTICE_DISABLE_PER_PAGE_NOTICES=false\n")
	assert.Contains(t, out, "# PAGENOTICE_LOG_OUTPUTS=/dev/stderr\n")
	assert.NotContains(t, out, "## Build")
}

func TestYAMLFile(t *testing.T) {
	t.Parallel()

	out, err := yamlFile(defaultConfig())
	require.NoError(t, err)

	assert.Contains(t, out, "\npageNotice:\n  disablePerPageNotices: false\n")
	assert.Contains(t, out, "  # logLevel: info\n")

	// The uncommented part is itself a valid partial configuration.
	var parsed struct {
		Basic struct {
			Port string `yaml:"port"`
		} `yaml:"basic"`
	}

	require.NoError(t, yaml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "8383", parsed.Basic.Port)
	assert.True(t, strings.HasPrefix(out, "# PageNotice configuration"))
}
