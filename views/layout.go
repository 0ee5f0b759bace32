// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"net/url"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"codeberg.org/pixivfe/pagenotice/i18n"
)

// SiteStyle is the stylesheet module loaded on every page.
const SiteStyle = "site"

// LayoutData describes the document shell around a page body.
type LayoutData struct {
	// Title is the text of the document title and first heading.
	Title string
	// Lang is the language of the interface.
	Lang language.Tag
	// Styles lists the style modules requested while rendering.
	Styles []string
	// Tabs is shown above the heading. It may be nil.
	Tabs templ.Component
}

// StylesheetHref returns the URL of a style module.
func StylesheetHref(module string) string {
	return "/css/" + url.PathEscape(module) + ".css"
}

func styleHrefs(modules []string) []string {
	hrefs := make([]string, 0, len(modules)+1)
	hrefs = append(hrefs, StylesheetHref(SiteStyle))

	for _, module := range modules {
		hrefs = append(hrefs, StylesheetHref(module))
	}

	return hrefs
}

// documentLang falls back to the request language when tag is unset.
// It returns "" when neither is known.
func documentLang(ctx context.Context, tag language.Tag) string {
	if tag == language.Und {
		tag = i18n.TagFrom(ctx)
	}

	if tag == language.Und {
		return ""
	}

	return tag.String()
}

func documentTitle(ctx context.Context, title string) string {
	return title + " - " + i18n.Tr(ctx, "PageNotice preview")
}
