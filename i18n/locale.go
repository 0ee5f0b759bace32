// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"slices"

	"golang.org/x/text/language"
)

// BaseLocale is the default base locale.
const BaseLocale = "en"

// locale holds every message loaded for one language tag.
type locale struct {
	tag  language.Tag
	po   map[string]string
	json map[string]string
}

// lookup returns the content of key in l. Gettext entries take precedence
// over JSON messages.
func (l *locale) lookup(key string) (string, bool) {
	if text, ok := l.po[key]; ok {
		return text, true
	}

	text, ok := l.json[key]

	return text, ok
}

// Languages returns the loaded language tags, base locale first, the rest
// sorted by tag string. The returned slice is a copy.
func (c *Catalog) Languages() []language.Tag {
	return slices.Clone(c.tags)
}

// BaseTag returns the tag of the base locale.
func (c *Catalog) BaseTag() language.Tag {
	return c.base
}

// chain returns the locales to search for t, most specific first.
func (c *Catalog) chain(t language.Tag) []*locale {
	chain := make([]*locale, 0, 2)

	matched, _ := language.MatchStrings(c.matcher, t.String())
	if l, ok := c.locales[strippedTagString(matched)]; ok {
		chain = append(chain, l)
	}

	if base, ok := c.locales[c.base.String()]; ok && (len(chain) == 0 || chain[0] != base) {
		chain = append(chain, base)
	}

	return chain
}

// strippedTagString removes variants and extensions to form a stable key
// using base, script and region only.
func strippedTagString(tag language.Tag) string {
	b, s, r := tag.Raw()
	stripped, _ := language.Compose(b, s, r)

	return stripped.String()
}
