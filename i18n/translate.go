// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"text/template"
)

// templateCache caches compiled templates per unique template text.
var templateCache sync.Map // key: text, value: *template.Template

// Vars holds named placeholder values.
type Vars map[string]any

// Tr returns the translation of a source-text msgid in the locale of ctx.
// Key-value pairs fill text/template-style named placeholders.
//
// A missing translation returns the msgid unchanged, or visibly wrapped in
// strict mode.
func (c *Catalog) Tr(ctx context.Context, msgid string, kv ...any) string {
	finalText := msgid

	msg := c.Msg(ctx, msgid)
	switch {
	case msg.Exists() && msg.Text() != "":
		finalText = msg.Text()
	case c.strict:
		c.logMissingOnce(strippedTagString(TagFrom(ctx)), msgid)

		finalText = "⟦" + msgid + "⟧"
	}

	return c.render(finalText, v(kv...))
}

// render formats s as a text/template using the provided data.
func (c *Catalog) render(s string, data Vars) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	var tmpl *template.Template
	if t, ok := templateCache.Load(s); ok {
		tmpl = t.(*template.Template)
	} else {
		var err error

		tmpl, err = template.New("msg").Option("missingkey=error").Parse(s)
		if err != nil {
			c.Logger.Warn().Err(err).Str("text", s).Msg("Message template parse error")

			if c.strict {
				return "⟦" + s + "⟧"
			}

			return s
		}

		templateCache.Store(s, tmpl)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(data)); err != nil {
		c.Logger.Warn().Err(err).Str("text", s).Msg("Message template execute error")

		if c.strict {
			return "⟦" + s + "⟧"
		}

		return s
	}

	return buf.String()
}

// v builds Vars from alternating key, value pairs.
// Panics on programmer error.
func v(kv ...any) Vars {
	if len(kv)%2 != 0 {
		panic("i18n.V: odd number of arguments, want key, value pairs")
	}

	m := make(Vars, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic("i18n.V: key must be string")
		}

		m[k] = kv[i+1]
	}

	return m
}
