// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const (
	// Default HTTP cache max age in seconds.
	defaultHTTPCacheMaxAgeSeconds = 30
	// Default HTTP cache stale while revalidate in seconds.
	defaultHTTPCacheStaleWhileRevalidateSeconds = 60

	defaultLimiterRequestsPerSecond = 10
	defaultLimiterBurst             = 20
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "8383"
	cfg.Basic.UnixSocket = ""

	cfg.Content.PagesFile = ""
	cfg.Content.MessagesDir = ""
	cfg.Content.MainPage = "Main Page"

	cfg.PageNotice.DisablePerPageNotices = false

	cfg.HTTPCache.MaxAge = defaultHTTPCacheMaxAgeSeconds * time.Second
	cfg.HTTPCache.StaleWhileRevalidate = defaultHTTPCacheStaleWhileRevalidateSeconds * time.Second

	cfg.Response.Compression = true

	cfg.Limiter.Enabled = false
	cfg.Limiter.RequestsPerSecond = defaultLimiterRequestsPerSecond
	cfg.Limiter.Burst = defaultLimiterBurst

	cfg.Development.InDevelopment = false

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Internationalization.BaseLocale = "en"
	cfg.Internationalization.StrictMissingKeys = false
}
