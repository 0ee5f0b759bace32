// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"runtime/trace"
	"strconv"
	"time"

	"codeberg.org/pixivfe/pagenotice/server/assets"
	"codeberg.org/pixivfe/pagenotice/server/middleware"
	"codeberg.org/pixivfe/pagenotice/server/routes"
)

// DefineRoutes sets up all the routes of site.
//
// Debug routes are registered only when dev is set.
func (router *Router) DefineRoutes(site *routes.Site, dev bool) {
	// Patterns ending in "/" are prefix matches.
	router.Handle("GET /css/", fileServer(site.Started))

	// Page routes
	router.HandleFunc("GET "+middleware.WikiPrefix+"{title...}", middleware.CatchError(site.Page))
	router.HandleFunc("GET /search", redirectWithQueryParam(middleware.WikiPrefix, "search"))

	// About routes
	router.HandleFunc("GET /about", middleware.CatchError(site.AboutPage))

	// Index page routes
	// /{$} matches only the root path
	router.HandleFunc("GET /{$}", middleware.CatchError(site.IndexPage))

	if dev {
		registerDebugRoutes(router)
	}
}

// fileServer serves the embedded stylesheets below /css/.
func fileServer(started time.Time) http.HandlerFunc {
	styles, err := assets.Styles()
	if err != nil {
		panic(fmt.Errorf("failed to open embedded stylesheets: %w", err))
	}

	// Embedded files only change with a new build, so one ETag per process is enough.
	etag := strconv.Quote(strconv.FormatInt(started.UnixNano(), 36))

	fileServer := http.StripPrefix("/css", http.FileServer(http.FS(styles)))
	fileServerHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", etag)
		fileServer.ServeHTTP(w, r)
	})

	return fileServerHandler
}

var flightRecorder = trace.NewFlightRecorder(trace.FlightRecorderConfig{MinAge: time.Minute})

func registerDebugRoutes(router *Router) {
	err := flightRecorder.Start()
	if err != nil {
		panic(err)
	}

	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	router.HandleFunc("GET /debug/flight", func(w http.ResponseWriter, r *http.Request) {
		_, _ = flightRecorder.WriteTo(w)
	})
}
