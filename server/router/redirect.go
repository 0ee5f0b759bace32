// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// The code in this file redirects search-style links straight to pages, like
// the "Go" button of a wiki search box.
//
// Add more redirects in (*Router).DefineRoutes

package router

import (
	"net/http"
	"net/url"
	"strings"

	"codeberg.org/pixivfe/pagenotice/server/utils"
)

// redirectWithQueryParam is a helper function to redirect requests to
// a target path built from the specified query parameter.
// Without the parameter, it redirects to the site root.
//
// Example:   /search?search=Main+Page   ->   /wiki/Main_Page
func redirectWithQueryParam(targetPath, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value := strings.TrimSpace(utils.GetQueryParam(r, param))
		if value == "" {
			http.Redirect(w, r, "/", http.StatusFound)

			return
		}

		target := url.URL{Path: targetPath + strings.ReplaceAll(value, " ", "_")}

		http.Redirect(w, r, target.String(), http.StatusFound)
	}
}
