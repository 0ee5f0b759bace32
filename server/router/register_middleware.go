// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"fmt"

	"codeberg.org/pixivfe/pagenotice/config"
	"codeberg.org/pixivfe/pagenotice/i18n"
	"codeberg.org/pixivfe/pagenotice/server/middleware"
	"codeberg.org/pixivfe/pagenotice/server/middleware/limiter"
	"codeberg.org/pixivfe/pagenotice/server/middleware/set_request_context"
)

// RegisterMiddleware installs the middleware chain configured in cfg.
// Request languages are negotiated against catalog.
func (router *Router) RegisterMiddleware(cfg *config.ServerConfig, catalog *i18n.Catalog) error {
	// the first middleware is the most outer / first executed one
	router.Use(middleware.WithServerTiming)
	router.Use(middleware.NormalizeURL)          // legacy links, underscores and trailing slashes
	router.Use(set_request_context.For(catalog)) // needed for everything else
	router.Use(middleware.SetResponseHeaders)    // all pages need this

	if cfg.Response.Compression {
		compress, err := middleware.NewCompression()
		if err != nil {
			return fmt.Errorf("failed to set up compression: %w", err)
		}

		router.Use(compress)
	}

	if cfg.Limiter.Enabled {
		router.Use(limiter.New(cfg.Limiter.RequestsPerSecond, cfg.Limiter.Burst).Evaluate)
	}

	return nil
}
