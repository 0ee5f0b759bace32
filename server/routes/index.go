// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/pixivfe/pagenotice/server/utils"
	"codeberg.org/pixivfe/pagenotice/views"
)

// IndexPage redirects the site root to the main page, keeping the
// interface language override.
func (s *Site) IndexPage(w http.ResponseWriter, r *http.Request) error {
	http.Redirect(w, r, utils.WithQuery(views.PageHref(s.MainPage, ""), utils.PreservedQuery(r, "uselang")), http.StatusFound)

	return nil
}
