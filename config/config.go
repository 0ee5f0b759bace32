// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Build buildInfo `yaml:"-"`

	Basic struct {
		Host       string `env:"PAGENOTICE_HOST,overwrite" yaml:"host"`
		Port       string `env:"PAGENOTICE_PORT,overwrite" yaml:"port"`
		UnixSocket string `env:"PAGENOTICE_UNIXSOCKET" yaml:"unixSocket"`
	} `yaml:"basic"`

	Content struct {
		// PagesFile is a YAML page fixture on disk. Empty uses the embedded fixture.
		PagesFile string `env:"PAGENOTICE_PAGES_FILE,overwrite" yaml:"pagesFile"`
		// MessagesDir is a directory with po/ and messages/ subdirectories.
		// Empty uses the embedded catalogues.
		MessagesDir string `env:"PAGENOTICE_MESSAGES_DIR,overwrite" yaml:"messagesDir"`
		MainPage    string `env:"PAGENOTICE_MAIN_PAGE,overwrite" yaml:"mainPage"`
	} `yaml:"content"`

	PageNotice struct {
		// DisablePerPageNotices stops page-specific notices from being looked up.
		// Namespace-wide notices are unaffected.
		DisablePerPageNotices bool `env:"PAGENOTICE_DISABLE_PER_PAGE_NOTICES,overwrite" yaml:"disablePerPageNotices"`
	} `yaml:"pageNotice"`

	HTTPCache struct {
		MaxAge               time.Duration `env:"PAGENOTICE_CACHE_CONTROL_MAX_AGE,overwrite" yaml:"cacheControlMaxAge"`
		StaleWhileRevalidate time.Duration `env:"PAGENOTICE_CACHE_CONTROL_STALE_WHILE_REVALIDATE,overwrite" yaml:"cacheControlStaleWhileRevalidate"`
	} `yaml:"httpCache"`

	Response struct {
		Compression bool `env:"PAGENOTICE_COMPRESSION,overwrite" yaml:"compression"`
	} `yaml:"response"`

	Limiter struct {
		Enabled           bool    `env:"PAGENOTICE_LIMITER,overwrite" yaml:"enabled"`
		RequestsPerSecond float64 `env:"PAGENOTICE_LIMITER_RPS,overwrite" yaml:"requestsPerSecond"`
		Burst             int     `env:"PAGENOTICE_LIMITER_BURST,overwrite" yaml:"burst"`
	} `yaml:"limiter"`

	Development struct {
		InDevelopment bool `env:"PAGENOTICE_DEV" yaml:"inDevelopment"`
	} `yaml:"development"`

	Log struct {
		Level   string   `env:"PAGENOTICE_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"PAGENOTICE_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"PAGENOTICE_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`

	Internationalization struct {
		BaseLocale string `env:"PAGENOTICE_BASE_LOCALE,overwrite" yaml:"baseLocale"`
		// Strict mode for missing interface strings.
		//
		// When enabled, missing keys are logged (deduplicated per locale+key) and
		// visibly wrapped using markers.
		StrictMissingKeys bool `env:"PAGENOTICE_STRICT_MISSING_KEYS" yaml:"strictMissingKeys"`
	} `yaml:"internationalization"`
}

// DisablePerPageNotices reports whether page-specific notices are switched off.
func (cfg *ServerConfig) DisablePerPageNotices() bool {
	return cfg.PageNotice.DisablePerPageNotices
}

// LoadConfig loads the configuration from the path given by the -config
// flag or PAGENOTICE_CONFIGFILE, then sets up logging and prints the result.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (PAGENOTICE_CONFIGFILE)
	// 3. Default path with fallback check
	if configFlagUserSet {
		configFilePath = parsedConfigFlagValue
	} else if envVar := os.Getenv("PAGENOTICE_CONFIGFILE"); envVar != "" {
		configFilePath = envVar
	} else {
		configFilePath = parsedConfigFlagValue

		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	if err := cfg.Load(configFilePath); err != nil {
		return err
	}

	cfg.setupAudit()
	cfg.print()

	return nil
}

// Load applies, in order: defaults, the YAML file at configFilePath (if it
// exists), a .env file, environment variables. It then validates the result.
func (cfg *ServerConfig) Load(configFilePath string) error {
	cfg.SetDefaults()

	cfg.Build.load()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	useDotEnv()

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	log.Debug().
		Bool("disable_per_page_notices", cfg.PageNotice.DisablePerPageNotices).
		Msg("Configuration loaded")

	return nil
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
