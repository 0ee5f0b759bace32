// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"context"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"codeberg.org/pixivfe/pagenotice/config"
	"codeberg.org/pixivfe/pagenotice/i18n"
	"codeberg.org/pixivfe/pagenotice/views"
)

// AboutPage is the handler for the /about page. It reports the build, the
// loaded content and the registered hooks.
func (s *Site) AboutPage(w http.ResponseWriter, r *http.Request) error {
	return renderDocument(w, r, http.StatusOK, views.About(s.aboutRows(r.Context())))
}

func (s *Site) aboutRows(ctx context.Context) []views.AboutRow {
	languages := make([]string, 0)
	if s.Catalog != nil {
		for _, tag := range s.Catalog.Languages() {
			languages = append(languages, tag.String())
		}
	}

	counts := s.Hooks.Counts()
	hookLines := make([]string, 0, len(counts))

	for _, name := range slices.Sorted(maps.Keys(counts)) {
		hookLines = append(hookLines, name+": "+strconv.Itoa(counts[name]))
	}

	perPage := i18n.Tr(ctx, "enabled")
	if s.Settings != nil && s.Settings.DisablePerPageNotices() {
		perPage = i18n.Tr(ctx, "disabled")
	}

	return []views.AboutRow{
		{ID: "about-version", Label: "Version", Value: config.BuildVersion},
		{ID: "about-revision", Label: "Revision", Value: config.Global.Build.Revision()},
		{ID: "about-started", Label: "Started", Value: s.Started.UTC().Format(time.RFC3339)},
		{ID: "about-pages", Label: "Pages", Value: strconv.Itoa(s.Pages.Len())},
		{ID: "about-languages", Label: "Languages", Value: strings.Join(languages, ", ")},
		{ID: "about-hooks", Label: "Hooks", Value: strings.Join(hookLines, "; ")},
		{ID: "about-per-page", Label: "Page-specific notices", Value: perPage},
	}
}
