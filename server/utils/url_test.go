// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetQueryParam(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/wiki/Main_Page?action=edit&empty=", nil)

	assert.Equal(t, "edit", GetQueryParam(r, "action"))
	assert.Equal(t, "view", GetQueryParam(r, "empty", "view"))
	assert.Empty(t, GetQueryParam(r, "missing"))
}

func TestGetPathVar(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/wiki/Help:Contents", nil)
	r.SetPathValue("title", "Help:Contents")

	assert.Equal(t, "Help:Contents", GetPathVar(r, "title"))
	assert.Equal(t, "fallback", GetPathVar(r, "other", "fallback"))
}

func TestPreservedQuery(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/?uselang=de&action=&x=1", nil)

	preserved := PreservedQuery(r, "uselang", "action")
	assert.Equal(t, url.Values{"uselang": {"de"}}, preserved)

	assert.Equal(t, "/wiki/Main_Page?uselang=de", WithQuery("/wiki/Main_Page", preserved))
	assert.Equal(t, "/wiki/Main_Page", WithQuery("/wiki/Main_Page", nil))
}
