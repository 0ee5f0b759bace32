// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/pixivfe/pagenotice/config"
)

func TestSetResponseHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path         string
		cacheControl string
		vary         []string
	}{
		{"/css/ext.pageNotice.css", staticMaxAge, nil},
		{"/", "private, no-cache", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			handler := Wrap(SetResponseHeaders, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.cacheControl, rr.Header().Get("Cache-Control"))
			assert.Equal(t, tt.vary, rr.Header().Values("Vary"))
			assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
			assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "script-src 'none'")
			assert.Equal(t, config.BuildVersion, rr.Header().Get("Pagenotice-Version"))
		})
	}
}

func TestSetCacheControlForPages(t *testing.T) {
	t.Parallel()

	headers := http.Header{}
	setCacheControl(headers, "/wiki/Main_Page")

	if config.Global.Development.InDevelopment {
		t.Skip("page caching is disabled in development")
	}

	assert.Contains(t, headers.Get("Cache-Control"), "public, max-age=")
	assert.Equal(t, []string{"Accept-Language", "Cookie"}, headers.Values("Vary"))
}
