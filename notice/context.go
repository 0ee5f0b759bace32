// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package notice

import (
	"codeberg.org/pixivfe/pagenotice/wiki"
)

// StyleLoader accepts style module requests.
type StyleLoader interface {
	AddModuleStyles(modules ...string)
}

// HTMLOutput is a page buffer that can be prepended to and appended to.
type HTMLOutput interface {
	StyleLoader
	PrependHTML(s string)
	AddHTML(s string)
}

// EditForm places notices around the HTML shown above an edit form.
//
// It always applies.
type EditForm struct {
	Prelude *string
	Styles  StyleLoader
}

// ForEditForm returns the render context of edit within out.
func ForEditForm(edit *wiki.EditPage, out *wiki.OutputPage) EditForm {
	return EditForm{Prelude: &edit.FormPageTop, Styles: out}
}

func (EditForm) Name() string { return "edit-form" }

func (EditForm) Applicable() bool { return true }

func (c EditForm) Insert(top, bottom string) {
	*c.Prelude = top + *c.Prelude + bottom
}

func (c EditForm) LoadStyles(module string) {
	c.Styles.AddModuleStyles(module)
}

// FilePage places notices on a file description page.
//
// It applies only in the file namespace and never while editing.
type FilePage struct {
	Output    HTMLOutput
	Namespace wiki.Namespace
	Action    string
}

// ForFilePage returns the render context of the file page being written to out.
func ForFilePage(out *wiki.OutputPage) FilePage {
	return FilePage{Output: out, Namespace: out.Title().Namespace, Action: out.Action()}
}

func (FilePage) Name() string { return "file-page" }

func (c FilePage) Applicable() bool {
	return c.Namespace == wiki.NSFile && c.Action != wiki.ActionEdit
}

// Insert prepends the whole top sequence at once so that its internal order
// is kept above the existing output.
func (c FilePage) Insert(top, bottom string) {
	if top != "" {
		c.Output.PrependHTML(top)
	}

	if bottom != "" {
		c.Output.AddHTML(bottom)
	}
}

func (c FilePage) LoadStyles(module string) {
	c.Output.AddModuleStyles(module)
}

// PageBody places notices around the body text of a page.
//
// It does not apply in the file namespace, which has FilePage, nor to output
// that has no revision and is not an article.
type PageBody struct {
	Text        *string
	Styles      StyleLoader
	Namespace   wiki.Namespace
	HasRevision bool
	IsArticle   bool
}

// ForPageBody returns the render context of text being written to out.
func ForPageBody(out *wiki.OutputPage, text *string) PageBody {
	_, hasRevision := out.RevisionID()

	return PageBody{
		Text:        text,
		Styles:      out,
		Namespace:   out.Title().Namespace,
		HasRevision: hasRevision,
		IsArticle:   out.IsArticle(),
	}
}

func (PageBody) Name() string { return "page-body" }

func (c PageBody) Applicable() bool {
	return c.Namespace != wiki.NSFile && (c.HasRevision || c.IsArticle)
}

func (c PageBody) Insert(top, bottom string) {
	*c.Text = top + *c.Text + bottom
}

func (c PageBody) LoadStyles(module string) {
	c.Styles.AddModuleStyles(module)
}
