// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
PageNotice renders wiki pages with the top and bottom notices configured in
the site message catalog.
*/
package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/pagenotice/config"
	"codeberg.org/pixivfe/pagenotice/core/audit"
	"codeberg.org/pixivfe/pagenotice/hooks"
	"codeberg.org/pixivfe/pagenotice/i18n"
	"codeberg.org/pixivfe/pagenotice/notice"
	"codeberg.org/pixivfe/pagenotice/server/assets"
	"codeberg.org/pixivfe/pagenotice/server/router"
	"codeberg.org/pixivfe/pagenotice/server/routes"
	"codeberg.org/pixivfe/pagenotice/views"
	"codeberg.org/pixivfe/pagenotice/wiki"
)

const (
	// Values for http.Server timeouts.
	// ref: gosec: G112
	readHeaderTimeout time.Duration = 15 * time.Second
	readTimeout       time.Duration = 15 * time.Second
	writeTimeout      time.Duration = 10 * time.Second
	idleTimeout       time.Duration = 30 * time.Second

	serverShutdownDeadline time.Duration = 5 * time.Second

	// unixSocketPermissions lets a reverse proxy in the same group connect.
	unixSocketPermissions os.FileMode = 0o660

	embeddedPagesFile = "content/pages.yaml"
)

var errChmodSocket = errors.New("failed to change unix socket permissions")

// embeddedContent holds the static web server content, the message
// catalogues and the default page fixture.
//
//go:embed assets/css
//go:embed po messages
//go:embed content/pages.yaml
var embeddedContent embed.FS

// init assigns the embedded filesystem to the exported assets.FS variable.
//
//nolint:gochecknoinits // this is a good use of init()
func init() {
	assets.FS = embeddedContent
}

// main is the entry point of the application.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

// run orchestrates the application startup and graceful shutdown.
func run() error {
	audit.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	handler, err := newHandler(&config.Global)
	if err != nil {
		return err
	}

	// Create http.Server instance
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	// Channel to listen for server errors
	serverErrors := make(chan error, 1)

	// Start main server in a goroutine
	go func() {
		listener, err := chooseListener(&config.Global)
		if err != nil {
			serverErrors <- fmt.Errorf("failed to create listener: %w", err)

			return
		}

		serverErrors <- server.Serve(listener)
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until a shutdown signal or a server error is received
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case s := <-quit:
		log.Info().Str("signal", s.String()).Msg("Shutdown signal received")
		log.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), serverShutdownDeadline)

		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
	}

	log.Info().Msg("Server exited gracefully")

	return nil
}

// newHandler loads the catalogues and pages named by cfg, registers the
// notice hooks and returns the routed handler.
func newHandler(cfg *config.ServerConfig) (http.Handler, error) {
	var messages fs.FS = embeddedContent
	if cfg.Content.MessagesDir != "" {
		messages = os.DirFS(cfg.Content.MessagesDir)
	}

	if err := i18n.Setup(messages, i18n.Options{
		BaseLocale:        cfg.Internationalization.BaseLocale,
		StrictMissingKeys: cfg.Internationalization.StrictMissingKeys,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize i18n engine: %w", err)
	}

	pages, err := loadPages(cfg.Content.PagesFile)
	if err != nil {
		return nil, err
	}

	mainPage, err := wiki.ParseTitle(cfg.Content.MainPage)
	if err != nil {
		return nil, fmt.Errorf("invalid main page: %w", err)
	}

	if err := assets.RequireStyles(views.SiteStyle, notice.StyleModule); err != nil {
		return nil, err
	}

	registry := hooks.NewRegistry()
	notice.Register(registry, notice.NewPlacer(i18n.Default), cfg)

	site := &routes.Site{
		Pages:    pages,
		Hooks:    registry,
		Catalog:  i18n.Default,
		Settings: cfg,
		MainPage: mainPage,
		Started:  time.Now(),
	}

	router := router.NewRouter()
	router.DefineRoutes(site, cfg.Development.InDevelopment)

	if err := router.RegisterMiddleware(cfg, i18n.Default); err != nil {
		return nil, err
	}

	log.Info().
		Int("pages", pages.Len()).
		Str("main_page", mainPage.PrefixedText()).
		Msg("Initialized site")

	return router, nil
}

// loadPages reads the page fixture at path, or the embedded one if path is empty.
func loadPages(path string) (*wiki.Store, error) {
	fsys, name := fs.FS(embeddedContent), embeddedPagesFile
	if path != "" {
		fsys, name = os.DirFS(filepath.Dir(path)), filepath.Base(path)
	}

	pages, err := wiki.LoadStore(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load pages: %w", err)
	}

	return pages, nil
}

func chooseListener(cfg *config.ServerConfig) (net.Listener, error) {
	// Check if we should use a Unix domain socket
	if cfg.Basic.UnixSocket != "" {
		unixAddr := cfg.Basic.UnixSocket

		unixListener, err := (&net.ListenConfig{}).Listen(context.Background(), "unix", unixAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to start Unix socket listener on %v: %w", unixAddr, err)
		}

		if err := os.Chmod(unixAddr, unixSocketPermissions); err != nil {
			_ = unixListener.Close()

			return nil, fmt.Errorf("%w: %w", errChmodSocket, err)
		}

		// Assign the listener and log where we are listening
		log.Info().
			Str("address", unixAddr).
			Msg("Listening on Unix domain socket")

		return unixListener, nil
	}

	// Otherwise, fall back to TCP listener
	addr := net.JoinHostPort(cfg.Basic.Host, cfg.Basic.Port)

	tcpListener, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to start TCP listener on %v: %w", addr, err)
	}

	addr = tcpListener.Addr().String()

	// Extract the port for logging
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		_ = tcpListener.Close()

		return nil, fmt.Errorf("failed to parse listener address %q: %w", addr, err)
	}

	// Log the address and convenient URL for local development
	log.Info().
		Str("address", addr).
		Str("port", port).
		Str("url", fmt.Sprintf("http://localhost:%v/", port)).
		Msg("Listening on address")

	return tcpListener, nil
}
