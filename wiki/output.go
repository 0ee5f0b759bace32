// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package wiki

import (
	"slices"
	"strings"
)

// Actions understood by the host.
const (
	ActionView = "view"
	ActionEdit = "edit"
)

// OutputPage accumulates the HTML and page-level state of one response.
//
// An OutputPage belongs to a single request and is not safe for concurrent use.
type OutputPage struct {
	title      Title
	action     string
	revisionID int64
	isArticle  bool

	html    strings.Builder
	modules []string
}

// NewOutputPage returns an empty output page for title rendered under action.
//
// An empty action is treated as ActionView.
func NewOutputPage(title Title, action string) *OutputPage {
	if action == "" {
		action = ActionView
	}

	return &OutputPage{title: title, action: action}
}

// Title returns the title being rendered.
func (out *OutputPage) Title() Title { return out.title }

// Action returns the current action name.
func (out *OutputPage) Action() string { return out.action }

// SetRevisionID records the revision being displayed. Zero means none.
func (out *OutputPage) SetRevisionID(id int64) { out.revisionID = id }

// RevisionID returns the displayed revision and whether there is one.
func (out *OutputPage) RevisionID() (int64, bool) {
	return out.revisionID, out.revisionID != 0
}

// SetArticleFlag marks the output as showing article content.
func (out *OutputPage) SetArticleFlag(v bool) { out.isArticle = v }

// IsArticle reports whether the output shows article content.
func (out *OutputPage) IsArticle() bool { return out.isArticle }

// AddHTML appends raw HTML to the page body.
func (out *OutputPage) AddHTML(s string) {
	out.html.WriteString(s)
}

// PrependHTML inserts raw HTML before everything added so far.
func (out *OutputPage) PrependHTML(s string) {
	if s == "" {
		return
	}

	rest := out.html.String()

	out.html.Reset()
	out.html.WriteString(s)
	out.html.WriteString(rest)
}

// HTML returns the accumulated body HTML.
func (out *OutputPage) HTML() string {
	return out.html.String()
}

// AddModuleStyles requests the given style modules. Duplicates are ignored.
func (out *OutputPage) AddModuleStyles(modules ...string) {
	for _, m := range modules {
		if !slices.Contains(out.modules, m) {
			out.modules = append(out.modules, m)
		}
	}
}

// ModuleStyles returns the requested style modules in request order.
func (out *OutputPage) ModuleStyles() []string {
	return slices.Clone(out.modules)
}

// EditPage holds the edit form being rendered.
type EditPage struct {
	Title Title

	// FormPageTop is HTML shown above the edit form.
	FormPageTop string

	// Text is the current wikitext shown in the textarea.
	Text string
}

// ImagePage holds a file description page being rendered.
type ImagePage struct {
	Title Title

	// Description is the file description HTML.
	Description string
}
