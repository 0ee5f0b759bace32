// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package views renders the preview server's HTML documents as templ components.

Interface strings are translated with the default i18n catalog. Page
content and notice HTML are written unescaped.

The components are written in .templ files. Regenerate the _templ.go files
with `go tool templ generate` after editing them.
*/
package views
