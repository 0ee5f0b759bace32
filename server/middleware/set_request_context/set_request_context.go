// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package set_request_context

import (
	"net/http"

	"codeberg.org/pixivfe/pagenotice/i18n"
	"codeberg.org/pixivfe/pagenotice/server/middleware"
	"codeberg.org/pixivfe/pagenotice/server/request_context"
)

// WithRequestContext is a middleware that attaches a RequestContext to each
// HTTP request, negotiating the language against i18n.Default.
func WithRequestContext(w http.ResponseWriter, r *http.Request, next http.Handler) {
	For(i18n.Default)(w, r, next)
}

// For returns a WithRequestContext middleware bound to catalog.
func For(catalog *i18n.Catalog) middleware.Middleware {
	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		ctx := request_context.WithRequestContext(r.Context(), r, catalog)
		w.Header().Set("X-Request-Id", request_context.FromContext(ctx).RequestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
