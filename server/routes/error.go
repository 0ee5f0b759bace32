// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"bytes"
	"net/http"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/pagenotice/server/request_context"
	"codeberg.org/pixivfe/pagenotice/views"
)

// ErrorPage renders an error page for the request's RequestError and
// StatusCode. The status line and headers must already be written. It
// returns the number of body bytes written.
func ErrorPage(w http.ResponseWriter, r *http.Request) int {
	ctx := request_context.FromRequest(r)

	pageData := views.ErrorData{
		Title:      "Error",
		Error:      ctx.RequestError,
		StatusCode: ctx.StatusCode,
	}

	var buf bytes.Buffer
	if err := views.Error(pageData).Render(r.Context(), &buf); err != nil {
		log.Err(err).
			Str("request_id", ctx.RequestID).
			Msg("Failed to render the error page")
	}

	n, _ := buf.WriteTo(w)

	return int(n)
}
