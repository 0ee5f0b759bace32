// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"mime"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/pagenotice/core/audit"
	"codeberg.org/pixivfe/pagenotice/server/request_context"
	"codeberg.org/pixivfe/pagenotice/server/routes"
)

// CatchError wraps HTTP handlers that return an error, providing centralized error handling,
// response buffering, and request logging.
//
// The handler's output is buffered. Afterwards:
//   - If the handler returned an error without writing an error status
//     (status < 400), the buffer is discarded and a 500 error page is rendered.
//   - If the handler wrote a 404 Not Found status without an HTML body, the
//     buffer is discarded and replaced with the themed error page.
//   - Otherwise the buffered response is written to the client.
//
// Finally, it logs the completed request via the audit package.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := request_context.FromRequest(r)

		span := audit.Span{
			Destination: audit.ToUser,
			RequestID:   ctx.RequestID,
			Method:      r.Method,
			URL:         r.URL.String(),
		}

		_ = span.Begin(r.Context())
		defer span.End()

		recorder := httptest.NewRecorder()

		err := handler(recorder, r)

		ctx.RequestError = err

		switch {
		case (err != nil && recorder.Code < http.StatusBadRequest) || (recorder.Code == http.StatusNotFound && !isHTML(recorder.Header())):
			if recorder.Code == http.StatusNotFound {
				ctx.StatusCode = http.StatusNotFound
			} else {
				ctx.StatusCode = http.StatusInternalServerError
			}

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("Cache-Control", "no-store")
			w.WriteHeader(ctx.StatusCode)
			span.Size = routes.ErrorPage(w, r) // ErrorPage uses ctx.RequestError and ctx.StatusCode

		default:
			ctx.StatusCode = recorder.Code
			span.Size = recorder.Body.Len()

			maps.Copy(w.Header(), recorder.Header())
			w.WriteHeader(recorder.Code)

			if _, err := recorder.Body.WriteTo(w); err != nil {
				log.Err(err).Msg("Failed to write response body")
			}
		}

		span.End()
		span.StatusCode = ctx.StatusCode
		span.Error = ctx.RequestError
		span.Log()
	}
}

// isHTML reports whether headers declare an HTML body.
func isHTML(headers http.Header) bool {
	mediaType, _, err := mime.ParseMediaType(headers.Get("Content-Type"))

	return err == nil && mediaType == "text/html"
}
