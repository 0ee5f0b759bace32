// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package routes contains the HTTP handlers of the preview server.

Handlers return an error and are wrapped with middleware.CatchError.
*/
package routes

import (
	"time"

	"codeberg.org/pixivfe/pagenotice/hooks"
	"codeberg.org/pixivfe/pagenotice/i18n"
	"codeberg.org/pixivfe/pagenotice/notice"
	"codeberg.org/pixivfe/pagenotice/wiki"
)

// Site holds what the page handlers render from. It is read-only after
// construction and shared by all requests.
type Site struct {
	Pages    *wiki.Store
	Hooks    *hooks.Registry
	Catalog  *i18n.Catalog
	Settings notice.Settings
	MainPage wiki.Title
	Started  time.Time
}
