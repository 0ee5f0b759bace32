// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// WikiPrefix is the path prefix of page routes.
const WikiPrefix = "/wiki/"

// directoryPrefixes are path prefixes under which a trailing slash is meaningful.
var directoryPrefixes = []string{
	WikiPrefix,
	"/css/",
}

// NormalizeURL is a middleware that handles URL normalization by:
//  1. Redirecting legacy /index.php?title=... links to /wiki/<title>.
//  2. Replacing spaces in page paths with underscores.
//  3. Removing trailing slashes from URLs outside directory prefixes.
func NormalizeURL(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if r.URL.Path == "/index.php" {
		redirectIndexPHP(w, r)

		return
	}

	if strings.HasPrefix(r.URL.Path, WikiPrefix) && strings.Contains(r.URL.Path, " ") {
		target := *r.URL
		target.Path = strings.ReplaceAll(r.URL.Path, " ", "_")
		target.RawPath = ""

		http.Redirect(w, r, target.String(), http.StatusMovedPermanently)

		return
	}

	if hasTrailingSlash(r) {
		removeTrailingSlash(w, r)

		return
	}

	next.ServeHTTP(w, r)
}

// hasTrailingSlash checks if a request path has a trailing slash outside directory prefixes.
func hasTrailingSlash(r *http.Request) bool {
	if r.URL.Path == "/" || !strings.HasSuffix(r.URL.Path, "/") {
		return false
	}

	for _, prefix := range directoryPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}

	return true
}

// removeTrailingSlash removes trailing slash and redirects.
func removeTrailingSlash(w http.ResponseWriter, r *http.Request) {
	target := *r.URL
	target.Path = strings.TrimRight(r.URL.Path, "/")
	target.RawPath = ""

	if target.Path == "" {
		target.Path = "/"
	}

	http.Redirect(w, r, target.String(), http.StatusPermanentRedirect)
}

// redirectIndexPHP maps /index.php?title=T&action=A to /wiki/T?action=A.
// Without a title, it redirects to the site root.
func redirectIndexPHP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	title := query.Get("title")
	if title == "" {
		http.Redirect(w, r, "/", http.StatusMovedPermanently)

		return
	}

	query.Del("title")

	target := url.URL{
		Path:     WikiPrefix + strings.ReplaceAll(title, " ", "_"),
		RawQuery: query.Encode(),
	}

	http.Redirect(w, r, target.String(), http.StatusMovedPermanently)
}
