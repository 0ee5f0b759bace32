// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"codeberg.org/pixivfe/pagenotice/i18n"
	"codeberg.org/pixivfe/pagenotice/markup"
	"codeberg.org/pixivfe/pagenotice/wiki"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()

	return renderContext(t, t.Context(), c)
}

func renderContext(t *testing.T, ctx context.Context, c templ.Component) *goquery.Document {
	t.Helper()

	s, err := markup.String(ctx, c)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	require.NoError(t, err)

	return doc
}

func TestPageHref(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title  string
		action string
		want   string
	}{
		{"Main Page", "", "/wiki/Main_Page"},
		{"Main Page", wiki.ActionView, "/wiki/Main_Page"},
		{"File:Cat.png", wiki.ActionEdit, "/wiki/File:Cat.png?action=edit"},
		{"User:Example/Sandbox", "", "/wiki/User:Example/Sandbox"},
		{"What?", "", "/wiki/What%3F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PageHref(wiki.MustParseTitle(tt.title), tt.action), tt.title)
	}
}

func TestLayout(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(t.Context(), templ.Raw(`<p id="inner">body</p>`))

	doc := renderContext(t, ctx, Layout(LayoutData{
		Title:  "Main Page",
		Lang:   language.German,
		Styles: []string{"ext.pageNotice"},
	}))

	assert.Equal(t, "de", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, "Main Page", doc.Find("#firstHeading").Text())
	assert.Equal(t, 1, doc.Find("#bodyContent > #inner").Length())
	assert.Zero(t, doc.Find("#page-tabs").Length())

	var hrefs []string

	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, s *goquery.Selection) {
		hrefs = append(hrefs, s.AttrOr("href", ""))
	})

	assert.Equal(t, []string{"/css/site.css", "/css/ext.pageNotice.css"}, hrefs)
}

func TestLayoutUsesContextLanguage(t *testing.T) {
	t.Parallel()

	ctx := i18n.WithTag(t.Context(), language.French)

	s, err := markup.String(ctx, Layout(LayoutData{Title: "x"}))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, `<!doctype html><html lang="fr"><head>`), s)
	assert.Contains(t, s, `<title>x - PageNotice preview</title>`)
}

func TestLayoutWithoutLanguage(t *testing.T) {
	t.Parallel()

	s, err := markup.String(t.Context(), Layout(LayoutData{Title: "x"}))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, `<!doctype html><html><head>`), s)
}

func TestPageDocument(t *testing.T) {
	t.Parallel()

	out := wiki.NewOutputPage(wiki.MustParseTitle("Help:Editing"), wiki.ActionEdit)
	out.AddHTML(`<div id="top-notice">Read this</div>`)
	out.AddModuleStyles("ext.pageNotice")

	doc := render(t, PageDocument(out))

	assert.Equal(t, "selected", doc.Find("#ca-edit").AttrOr("class", ""))
	assert.False(t, doc.Find("#ca-view").HasClass("selected"))
	assert.Equal(t, "/wiki/Help:Editing", doc.Find("#ca-view a").AttrOr("href", ""))
	assert.Equal(t, "Read this", doc.Find("#bodyContent #top-notice").Text())
	assert.Equal(t, 1, doc.Find(`link[href="/css/ext.pageNotice.css"]`).Length())
}

func TestTabs(t *testing.T) {
	t.Parallel()

	doc := render(t, Tabs(wiki.MustParseTitle("Main Page"), wiki.ActionView))

	assert.True(t, doc.Find("#ca-view").HasClass("selected"))
	assert.False(t, doc.Find("#ca-edit").HasClass("selected"))
	assert.Equal(t, "Read", doc.Find("#ca-view a").Text())
	assert.Equal(t, "/wiki/Main_Page?action=edit", doc.Find("#ca-edit a").AttrOr("href", ""))
}

func TestEditForm(t *testing.T) {
	t.Parallel()

	doc := render(t, EditForm(&wiki.EditPage{
		Title:       wiki.MustParseTitle("Main Page"),
		FormPageTop: `<div id="top-notice">Top</div>`,
		Text:        "a < b",
	}))

	assert.Equal(t, 1, doc.Find("#top-notice + #editform").Length())
	assert.Equal(t, "a < b", doc.Find("#wpTextbox1").Text())
	assert.True(t, doc.Find("#wpTextbox1").Is("[readonly]"))
}

func TestFileViews(t *testing.T) {
	t.Parallel()

	title := wiki.MustParseTitle("File:Cat.png")

	toc := render(t, FileTOC(title))
	assert.Equal(t, 3, toc.Find("#filetoc li").Length())
	assert.Equal(t, "#file", toc.Find("#filetoc a").First().AttrOr("href", ""))

	image := render(t, FileImage(title))
	assert.Equal(t, "Cat.png", image.Find("#file .filename").Text())

	description := render(t, FileDescription(`<p id="d">A cat</p>`))
	assert.Equal(t, 1, description.Find("#mw-imagepage-content > #d").Length())
}

func TestMissingPage(t *testing.T) {
	t.Parallel()

	doc := render(t, MissingPage(wiki.MustParseTitle("Nowhere")))

	assert.Equal(t, "/wiki/Nowhere?action=edit", doc.Find(".noarticletext a").AttrOr("href", ""))
}

func TestError(t *testing.T) {
	t.Parallel()

	doc := render(t, Error(ErrorData{
		Title:      "Error",
		Error:      errors.New("<bad> title"),
		StatusCode: http.StatusBadRequest,
	}))

	assert.Equal(t, "400 Bad Request", doc.Find("#error-status").Text())
	assert.Equal(t, "<bad> title", doc.Find("#error-message").Text())
	assert.Equal(t, "/", doc.Find("#bodyContent a").AttrOr("href", ""))
}

func TestErrorWithoutCause(t *testing.T) {
	t.Parallel()

	doc := render(t, Error(ErrorData{Title: "Error", StatusCode: http.StatusTeapot}))

	assert.Equal(t, "418 I'm a teapot", doc.Find("#error-status").Text())
	assert.Equal(t, "I'm a teapot", doc.Find("#error-message").Text())
}

func TestAbout(t *testing.T) {
	t.Parallel()

	doc := render(t, About([]AboutRow{
		{ID: "about-version", Label: "Version", Value: "v1.0.0"},
		{ID: "about-pages", Label: "Pages", Value: "<4>"},
	}))

	assert.Equal(t, "About", doc.Find("#firstHeading").Text())
	assert.Equal(t, 2, doc.Find("#about dt").Length())
	assert.Equal(t, "v1.0.0", doc.Find("#about-version").Text())
	assert.Equal(t, "<4>", doc.Find("#about-pages").Text())
}
