// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Message is the result of looking up a message key.
type Message struct {
	key    string
	text   string
	locale language.Tag
	exists bool
}

// Key returns the looked-up key.
func (m Message) Key() string { return m.key }

// Exists reports whether any locale in the fallback chain defines the key.
func (m Message) Exists() bool { return m.exists }

// IsBlank reports whether the message is undefined, empty, or only whitespace.
func (m Message) IsBlank() bool {
	return !m.exists || strings.TrimSpace(m.text) == ""
}

// Text returns the raw message content.
func (m Message) Text() string { return m.text }

// Locale returns the tag of the locale that defined the message, or
// language.Und if it does not exist.
func (m Message) Locale() language.Tag { return m.locale }

// Parse returns the message as a sanitized HTML fragment.
func (m Message) Parse() string {
	if !m.exists {
		return ""
	}

	return Sanitize(m.text)
}

// Msg looks up key in the locale of ctx, falling back to the base locale.
func (c *Catalog) Msg(ctx context.Context, key string) Message {
	for _, l := range c.chain(TagFrom(ctx)) {
		if text, ok := l.lookup(key); ok {
			return Message{key: key, text: text, locale: l.tag, exists: true}
		}
	}

	return Message{key: key, locale: language.Und}
}

// Message returns the parsed HTML of key, or ok == false if the message is blank.
func (c *Catalog) Message(ctx context.Context, key string) (string, bool) {
	msg := c.Msg(ctx, key)
	if msg.IsBlank() {
		c.Logger.Trace().
			Str("key", key).
			Msg("Message is blank")

		return "", false
	}

	return msg.Parse(), true
}
