// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"codeberg.org/pixivfe/pagenotice/server/request_context"
	"codeberg.org/pixivfe/pagenotice/views"
)

// renderDocument writes c as an HTML document with the given status code.
//
// The document is rendered into a buffer first so that a render error can
// still become an error page.
func renderDocument(w http.ResponseWriter, r *http.Request, status int, c templ.Component) error {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		return err
	}

	headers := w.Header()
	headers.Set("Content-Type", "text/html; charset=utf-8")

	if tag := request_context.FromRequest(r).T; tag != language.Und {
		headers.Set("Content-Language", tag.String())
	}

	w.WriteHeader(status)

	_, err := buf.WriteTo(w)

	return err
}

// clientError renders an error page with a 4xx status and returns err so
// that it is logged with the request.
func clientError(w http.ResponseWriter, r *http.Request, status int, err error) error {
	ctx := request_context.FromRequest(r)
	ctx.StatusCode = status

	w.Header().Set("Cache-Control", "no-store")

	if renderErr := renderDocument(w, r, status, views.Error(views.ErrorData{
		Title:      "Error",
		Error:      err,
		StatusCode: status,
	})); renderErr != nil {
		return renderErr
	}

	return err
}
