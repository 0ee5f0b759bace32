// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/pixivfe/pagenotice/config"
)

// newTestServer serves the embedded pages and catalogues with default settings.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.ServerConfig{}
	cfg.SetDefaults()

	handler, err := newHandler(cfg)
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

func fetch(t *testing.T, server *httptest.Server, path string, header http.Header) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, server.URL+path, nil)
	require.NoError(t, err)

	for k, v := range header {
		req.Header[k] = v
	}

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestEmbeddedSite(t *testing.T) {
	server := newTestServer(t)

	t.Run("main page", func(t *testing.T) {
		resp := fetch(t, server, "/wiki/Main_Page", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		require.NoError(t, err)

		assert.Contains(t, doc.Find("#top-notice").Text(), "Welcome!")
		assert.Contains(t, doc.Find("#top-notice-ns").Text(), "This is a preview wiki.")
		assert.Zero(t, doc.Find("#bottom-notice").Length())
		assert.Equal(t, 1, doc.Find("#bottom-notice-ns").Length())
		assert.Equal(t, 1, doc.Find(`link[href="/css/ext.pageNotice.css"]`).Length())
		assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
		assert.Contains(t, resp.Header.Get("Server-Timing"), "hooks")
	})

	t.Run("german notices", func(t *testing.T) {
		resp := fetch(t, server, "/wiki/Main_Page", http.Header{"Accept-Language": {"de"}})

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		require.NoError(t, err)

		assert.Contains(t, doc.Find("#top-notice-ns").Text(), "Vorschau-Wiki")
		assert.Equal(t, "Bearbeiten", doc.Find("#ca-edit a").Text())
		assert.Contains(t, doc.Find("#bottom-notice-ns").Text(), "CC BY-SA", "missing translations fall back to English")
	})

	t.Run("file page", func(t *testing.T) {
		resp := fetch(t, server, "/wiki/File:Cat.png", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, 1, doc.Find("#top-notice").Length())
		assert.Equal(t, 1, doc.Find("#filetoc ~ #bottom-notice").Length())
	})

	t.Run("stylesheet", func(t *testing.T) {
		resp := fetch(t, server, "/css/ext.pageNotice.css", nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
	})

	t.Run("compressed", func(t *testing.T) {
		resp := fetch(t, server, "/wiki/Main_Page", http.Header{"Accept-Encoding": {"gzip"}})

		assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	})

	redirects := []struct {
		path     string
		location string
	}{
		{"/", "/wiki/Main_Page"},
		{"/index.php?title=Help:Editing", "/wiki/Help:Editing"},
		{"/wiki/Main Page", "/wiki/Main_Page"},
		{"/about/", "/about"},
		{"/search?search=User:Example/Sandbox", "/wiki/User:Example/Sandbox"},
	}

	for _, tt := range redirects {
		t.Run("redirect "+tt.path, func(t *testing.T) {
			resp := fetch(t, server, tt.path, nil)

			assert.GreaterOrEqual(t, resp.StatusCode, 300)
			assert.Less(t, resp.StatusCode, 400)
			assert.Equal(t, tt.location, resp.Header.Get("Location"))
		})
	}
}
