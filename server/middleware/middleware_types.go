// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import "net/http"

// Middleware runs around next. It may write a response itself instead of calling next.
type Middleware func(w http.ResponseWriter, r *http.Request, next http.Handler)

// Wrap adapts m into a handler that calls next.
func Wrap(m Middleware, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m(w, r, next)
	}
}

// FromHandlerWrapper adapts conventional func(http.Handler) http.Handler
// middleware, such as those provided by third-party packages.
func FromHandlerWrapper(wrap func(http.Handler) http.Handler) Middleware {
	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		wrap(next).ServeHTTP(w, r)
	}
}
