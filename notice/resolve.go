// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package notice

import (
	"context"
	"strings"
)

// MessageSource looks up localized notice content.
type MessageSource interface {
	// Message returns the rendered HTML for key, or ok == false when the
	// message is undefined or blank.
	Message(ctx context.Context, key string) (html string, ok bool)
}

// MessageSourceFunc adapts a function to MessageSource.
type MessageSourceFunc func(ctx context.Context, key string) (string, bool)

// Message implements MessageSource.
func (f MessageSourceFunc) Message(ctx context.Context, key string) (string, bool) {
	return f(ctx, key)
}

// ResolvedNotice is the outcome of looking up one key.
type ResolvedNotice struct {
	Key  string
	HTML string
	// Present is false for undefined and blank messages.
	Present bool
}

// Resolve looks up key in src.
//
// Content that is empty or only whitespace is absent.
func Resolve(ctx context.Context, src MessageSource, key string) ResolvedNotice {
	html, ok := src.Message(ctx, key)
	if !ok || strings.TrimSpace(html) == "" {
		return ResolvedNotice{Key: key}
	}

	return ResolvedNotice{Key: key, HTML: html, Present: true}
}
