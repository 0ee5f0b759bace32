// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type contextKeyType struct{}

var tagKey = contextKeyType{}

// LangParam is the URL query parameter used to override the interface language.
const LangParam = "uselang"

// LangCookie is the cookie that stores the preferred interface language.
const LangCookie = "pagenotice-lang"

// WithTag stores t in ctx and returns a derived context that carries it.
//
// The ctx must not be nil.
func WithTag(ctx context.Context, t language.Tag) context.Context {
	return context.WithValue(ctx, tagKey, t)
}

// TagFrom returns the language tag stored in ctx, or language.Und if none is
// present. A nil ctx is allowed.
func TagFrom(ctx context.Context) language.Tag {
	if ctx != nil {
		if t, ok := ctx.Value(tagKey).(language.Tag); ok {
			return t
		}
	}

	return language.Und
}

// FromRequest returns the best loaded language for r by inspecting user
// preferences in priority order:
// 1) query parameter [LangParam]
// 2) cookie [LangCookie]
// 3) Accept-Language header
//
// If LangParam is "auto" (case-insensitive), the cookie is ignored.
// A nil r yields the base tag.
func (c *Catalog) FromRequest(r *http.Request) language.Tag {
	if r == nil {
		return c.base
	}

	q := r.URL.Query().Get(LangParam)
	auto := strings.EqualFold(q, "auto")

	preferred := make([]string, 0, 3)
	if q != "" && !auto {
		preferred = append(preferred, q)
	}

	if !auto {
		if cookie, err := r.Cookie(LangCookie); err == nil && cookie.Value != "" {
			preferred = append(preferred, cookie.Value)
		}
	}

	if al := r.Header.Get("Accept-Language"); al != "" {
		preferred = append(preferred, al)
	}

	tag, _ := language.MatchStrings(c.matcher, preferred...)

	return tag
}

// WithRequest installs the language of r in ctx. It is equivalent to:
//
//	WithTag(ctx, c.FromRequest(r))
func (c *Catalog) WithRequest(ctx context.Context, r *http.Request) context.Context {
	return WithTag(ctx, c.FromRequest(r))
}
