// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// MsgKey is a source message id (msgid) string.
//
// MsgKey should be the original English UI text, not an invented key.
type MsgKey string

// Tr translates this msgid with [Tr].
func (s MsgKey) Tr(ctx context.Context) string {
	return Tr(ctx, string(s))
}

// Render writes the escaped translation, making MsgKey a templ.Component.
func (s MsgKey) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, templ.EscapeString(s.Tr(ctx)))

	return err
}
