// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"net/url"

	"github.com/a-h/templ"

	"codeberg.org/pixivfe/pagenotice/i18n"
	"codeberg.org/pixivfe/pagenotice/wiki"
)

// PageHref returns the URL of title with an optional action.
func PageHref(title wiki.Title, action string) string {
	u := url.URL{Path: "/wiki/" + title.PrefixedDBKey()}
	if action != "" && action != wiki.ActionView {
		u.RawQuery = url.Values{"action": {action}}.Encode()
	}

	return u.String()
}

// Output renders the accumulated HTML of an output page.
func Output(out *wiki.OutputPage) templ.Component {
	return templ.Raw(out.HTML())
}

func pageLayout(ctx context.Context, out *wiki.OutputPage) LayoutData {
	title := out.Title().PrefixedText()
	if out.Action() == wiki.ActionEdit {
		title = i18n.Tr(ctx, "Editing {{.Title}}", "Title", title)
	}

	return LayoutData{
		Title:  title,
		Styles: out.ModuleStyles(),
		Tabs:   Tabs(out.Title(), out.Action()),
	}
}
