// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/pixivfe/pagenotice/server/middleware"
)

func recordCall(name string, calls *[]string) middleware.Middleware {
	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		*calls = append(*calls, name)
		next.ServeHTTP(w, r)
	}
}

func TestMiddlewareOrder(t *testing.T) {
	t.Parallel()

	var calls []string

	router := NewRouter()
	router.HandleFunc("GET /wiki/{title...}", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "page "+r.PathValue("title"))
	})
	router.Use(recordCall("timing", &calls))
	router.Use(recordCall("context", &calls))

	for range 2 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/wiki/Main_Page", nil))
	}

	assert.Equal(t, []string{
		"timing", "context", "page Main_Page",
		"timing", "context", "page Main_Page",
	}, calls)
}

func TestMiddlewareCanAnswer(t *testing.T) {
	t.Parallel()

	reached := false

	router := NewRouter()
	router.HandleFunc("GET /about", func(http.ResponseWriter, *http.Request) {
		reached = true
	})
	router.Use(func(w http.ResponseWriter, _ *http.Request, _ http.Handler) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/about", nil))

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.False(t, reached)
}

func TestNoMiddleware(t *testing.T) {
	t.Parallel()

	router := NewRouter()
	router.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
