// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"fmt"
	"io/fs"
)

// Default is the catalog installed by Setup. It is used by [Tr] and [MsgKey].
var Default *Catalog

// Setup loads the catalogues in fsys and installs them as Default.
//
// Calling Setup again replaces the previous catalog.
func Setup(fsys fs.FS, opts Options) error {
	c, err := Load(fsys, opts)
	if err != nil {
		return fmt.Errorf("failed to load message catalogues: %w", err)
	}

	Default = c

	c.Logger.Info().
		Int("locales", len(c.tags)).
		Str("base", c.base.String()).
		Msg("Initialized message catalogues")

	return nil
}

// Tr translates msgid with Default. Before Setup it returns msgid unchanged
// with placeholders left in place.
func Tr(ctx context.Context, msgid string, kv ...any) string {
	if Default == nil {
		return msgid
	}

	return Default.Tr(ctx, msgid, kv...)
}
