// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/text/language"

	"codeberg.org/pixivfe/pagenotice/wiki"
)

// validation errors.
var (
	errUnixSocketWithHostPort = errors.New("unix socket configured - cannot specify Host and Port simultaneously")
	errInvalidPort            = errors.New("invalid Basic.Port value")
	errInvalidLogLevel        = errors.New("invalid Log.Level value")
	errInvalidLogFormat       = errors.New("invalid Log.Format value")
	errInvalidLimiterRate     = errors.New("Limiter.RequestsPerSecond must be positive")
	errInvalidLimiterBurst    = errors.New("Limiter.Burst must be at least 1")
	errInvalidBaseLocale      = errors.New("invalid Internationalization.BaseLocale")
	errInvalidMainPage        = errors.New("invalid Content.MainPage")
	errNegativeCacheDuration  = errors.New("HTTP cache durations cannot be negative")
)

const maxPort = 65535

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// validateAndSet validates the server configuration and populates some fields.
func (cfg *ServerConfig) validateAndSet() error {
	if cfg.Basic.UnixSocket != "" {
		if cfg.Basic.Host != "" || cfg.Basic.Port != "" {
			return errUnixSocketWithHostPort
		}
	} else {
		if cfg.Basic.Host == "" {
			cfg.Basic.Host = "localhost"
		}

		if cfg.Basic.Port == "" {
			cfg.Basic.Port = "8383"
		}

		port, err := strconv.Atoi(cfg.Basic.Port)
		if err != nil || port < 1 || port > maxPort {
			return fmt.Errorf("%w: %q", errInvalidPort, cfg.Basic.Port)
		}
	}

	if !slices.Contains(validLogLevels, cfg.Log.Level) {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.Log.Level)
	}

	if !slices.Contains(validLogFormats, cfg.Log.Format) {
		return fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.Log.Format)
	}

	if cfg.HTTPCache.MaxAge < 0 || cfg.HTTPCache.StaleWhileRevalidate < 0 {
		return errNegativeCacheDuration
	}

	if _, err := language.Parse(cfg.Internationalization.BaseLocale); err != nil {
		return fmt.Errorf("%w %q: %w", errInvalidBaseLocale, cfg.Internationalization.BaseLocale, err)
	}

	mainPage, err := wiki.ParseTitle(cfg.Content.MainPage)
	if err != nil {
		return fmt.Errorf("%w %q: %w", errInvalidMainPage, cfg.Content.MainPage, err)
	}

	cfg.Content.MainPage = mainPage.PrefixedText()

	// Skip validating Limiter configuration if it's not enabled
	if !cfg.Limiter.Enabled {
		return nil
	}

	if cfg.Limiter.RequestsPerSecond <= 0 {
		return errInvalidLimiterRate
	}

	if cfg.Limiter.Burst < 1 {
		return errInvalidLimiterBurst
	}

	return nil
}
