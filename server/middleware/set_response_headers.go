// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"codeberg.org/pixivfe/pagenotice/config"
)

// staticMaxAge is the Cache-Control max-age for stylesheets (1 week).
const staticMaxAge = "max-age=604800"

var (
	// baseHeaders defines the default headers to be set in responses.
	//
	// Pagenotice-Version and Pagenotice-Revision are added dynamically in SetResponseHeaders.
	baseHeaders = http.Header{
		"Referrer-Policy":        {"no-referrer"},
		"X-Frame-Options":        {"DENY"},
		"X-Content-Type-Options": {"nosniff"},
		"Permissions-Policy":     {strings.Join(defaultPermissionsPolicy, ", ")},
		"Content-Security-Policy": {strings.Join([]string{
			"base-uri 'self'",
			"default-src 'self'",
			"style-src 'self'",
			"img-src 'self' data:",
			"script-src 'none'",
			"form-action 'self'",
			"frame-ancestors 'none'",
		}, "; ") + ";"},
	}

	defaultPermissionsPolicy = []string{
		"camera=()",
		"display-capture=()",
		"geolocation=()",
		"microphone=()",
		"payment=()",
		"usb=()",
	}
)

// SetResponseHeaders adds default headers to HTTP responses.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	if config.Global.Development.InDevelopment {
		invalidateCacheInDevelopment(headers)
	}

	setCacheControl(headers, r.URL.Path)

	headers.Set("Pagenotice-Version", config.BuildVersion)
	headers.Set("Pagenotice-Revision", config.Global.Build.Revision())

	next.ServeHTTP(w, r)
}

var firstDevResponse atomic.Bool

// clear cache in development
func invalidateCacheInDevelopment(headers http.Header) {
	if firstDevResponse.CompareAndSwap(false, true) {
		headers.Set("Clear-Site-Data", `"cache"`)
	}
}

// setCacheControl sets cache headers by route.
//
// Rendered pages vary with the negotiated language, so caches must key on it.
func setCacheControl(headers http.Header, path string) {
	switch {
	case strings.HasPrefix(path, "/css/"):
		headers.Set("Cache-Control", staticMaxAge)
	case strings.HasPrefix(path, WikiPrefix) && !config.Global.Development.InDevelopment:
		headers.Set("Cache-Control", "public, max-age="+
			strconv.Itoa(int(config.Global.HTTPCache.MaxAge.Seconds()))+
			", stale-while-revalidate="+
			strconv.Itoa(int(config.Global.HTTPCache.StaleWhileRevalidate.Seconds())))
		headers.Add("Vary", "Accept-Language")
		headers.Add("Vary", "Cookie")
	default:
		headers.Set("Cache-Control", "private, no-cache")
	}
}
