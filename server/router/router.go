// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"slices"
	"sync"

	"codeberg.org/pixivfe/pagenotice/server/middleware"
)

// Router wraps http.ServeMux and runs every request through a middleware
// chain before the mux dispatches it.
type Router struct {
	*http.ServeMux

	middlewares []middleware.Middleware

	once    sync.Once
	handler http.Handler
}

// NewRouter creates a new Router instance.
func NewRouter() *Router {
	return &Router{
		ServeMux: http.NewServeMux(),
	}
}

// Use adds a middleware to the end of the chain. The first middleware added
// runs first.
//
// The chain is fixed by the first request, so Use must be called before the
// router serves.
func (router *Router) Use(middleware middleware.Middleware) {
	router.middlewares = append(router.middlewares, middleware)
}

// chain wraps the mux in the middlewares, innermost last.
func (router *Router) chain() http.Handler {
	var h http.Handler = router.ServeMux

	for _, m := range slices.Backward(router.middlewares) {
		h = middleware.Wrap(m, h)
	}

	return h
}

func (router *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router.once.Do(func() {
		router.handler = router.chain()
	})

	router.handler.ServeHTTP(w, r)
}
