// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		location string
	}{
		{"title", "/search?search=Main+Page", "/wiki/Main_Page"},
		{"namespaced", "/search?search=File:Cat.png", "/wiki/File:Cat.png"},
		{"trimmed", "/search?search=+Help+", "/wiki/Help"},
		{"missing", "/search", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()

			redirectWithQueryParam("/wiki/", "search").ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, tt.location, rr.Header().Get("Location"))
		})
	}
}
