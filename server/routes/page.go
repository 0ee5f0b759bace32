// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"codeberg.org/pixivfe/pagenotice/core/audit"
	"codeberg.org/pixivfe/pagenotice/markup"
	"codeberg.org/pixivfe/pagenotice/server/request_context"
	"codeberg.org/pixivfe/pagenotice/server/utils"
	"codeberg.org/pixivfe/pagenotice/views"
	"codeberg.org/pixivfe/pagenotice/wiki"
)

var (
	errUnknownAction    = errors.New("unknown action")
	errVirtualNamespace = errors.New("pages in this namespace cannot be viewed")
)

// preservedParams are carried over when redirecting to a canonical page URL.
var preservedParams = []string{"action", "uselang"}

// Page is the handler for /wiki/{title...}. The action query parameter
// selects between the article view (default) and the edit form.
//
// Non-canonical titles redirect to their canonical form.
func (s *Site) Page(w http.ResponseWriter, r *http.Request) error {
	raw := utils.GetPathVar(r, "title")
	if raw == "" {
		http.Redirect(w, r, utils.WithQuery(views.PageHref(s.MainPage, ""), utils.PreservedQuery(r, preservedParams...)), http.StatusFound)

		return nil
	}

	title, err := wiki.ParseTitle(raw)
	if err != nil {
		return clientError(w, r, http.StatusBadRequest, fmt.Errorf("invalid title %q: %w", raw, err))
	}

	if title.Namespace.IsVirtual() {
		return clientError(w, r, http.StatusNotFound, fmt.Errorf("%w: %s", errVirtualNamespace, title.PrefixedText()))
	}

	if title.PrefixedDBKey() != raw {
		http.Redirect(w, r, utils.WithQuery(views.PageHref(title, ""), utils.PreservedQuery(r, preservedParams...)), http.StatusMovedPermanently)

		return nil
	}

	page, err := s.Pages.Page(title)
	exists := err == nil

	if err != nil && !errors.Is(err, wiki.ErrPageNotFound) {
		return err
	}

	switch action := utils.GetQueryParam(r, "action", wiki.ActionView); action {
	case wiki.ActionView:
		return s.view(w, r, title, page, exists)
	case wiki.ActionEdit:
		return s.edit(w, r, title, page)
	default:
		return clientError(w, r, http.StatusBadRequest, fmt.Errorf("%w: %q", errUnknownAction, action))
	}
}

// view renders the article. Missing pages are rendered with a 404 status
// and still pass through the page hooks.
func (s *Site) view(w http.ResponseWriter, r *http.Request, title wiki.Title, page wiki.Page, exists bool) error {
	out := wiki.NewOutputPage(title, wiki.ActionView)
	out.SetArticleFlag(true)

	ctx, span := s.beginHooks(r, out)

	body := page.HTML
	if exists {
		out.SetRevisionID(page.RevisionID)
	} else {
		missing, err := markup.String(ctx, views.MissingPage(title))
		if err != nil {
			return err
		}

		body = missing
	}

	if title.Namespace == wiki.NSFile {
		if err := s.fileHeader(ctx, out, body); err != nil {
			return err
		}
	}

	s.Hooks.RunOutputPageBeforeHTML(ctx, out, &body)

	if title.Namespace == wiki.NSFile {
		description, err := markup.String(ctx, views.FileDescription(body))
		if err != nil {
			return err
		}

		body = description
	}

	out.AddHTML(body)
	endHooks(span)

	status := http.StatusOK
	if !exists {
		status = http.StatusNotFound
	}

	return renderDocument(w, r, status, views.PageDocument(out))
}

// fileHeader writes the file table of contents, runs the inline-image hook
// and writes the image link, in that order.
func (s *Site) fileHeader(ctx context.Context, out *wiki.OutputPage, description string) error {
	toc, err := markup.String(ctx, views.FileTOC(out.Title()))
	if err != nil {
		return err
	}

	out.AddHTML(toc)

	s.Hooks.RunImagePageInline(ctx, &wiki.ImagePage{Title: out.Title(), Description: description}, out)

	image, err := markup.String(ctx, views.FileImage(out.Title()))
	if err != nil {
		return err
	}

	out.AddHTML(image)

	return nil
}

// edit renders the edit form. The output page carries no revision and is
// not an article, as for any edit form.
func (s *Site) edit(w http.ResponseWriter, r *http.Request, title wiki.Title, page wiki.Page) error {
	out := wiki.NewOutputPage(title, wiki.ActionEdit)

	ctx, span := s.beginHooks(r, out)

	edit := &wiki.EditPage{Title: title, Text: page.Source}
	s.Hooks.RunEditFormInitial(ctx, edit, out)

	form, err := markup.String(ctx, views.EditForm(edit))
	if err != nil {
		return err
	}

	s.Hooks.RunOutputPageBeforeHTML(ctx, out, &form)
	out.AddHTML(form)
	endHooks(span)

	return renderDocument(w, r, http.StatusOK, views.PageDocument(out))
}

// beginHooks starts a span timing the page hooks of out.
func (s *Site) beginHooks(r *http.Request, out *wiki.OutputPage) (context.Context, *audit.Span) {
	span := &audit.Span{
		Destination: audit.ToHooks,
		RequestID:   request_context.FromRequest(r).RequestID,
		Method:      out.Action(),
		URL:         out.Title().PrefixedDBKey(),
	}

	return span.Begin(r.Context()), span
}

func endHooks(span *audit.Span) {
	span.End()
	span.StatusCode = http.StatusOK
	span.Log()
}
