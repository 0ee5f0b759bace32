// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package wiki

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	errEmptyTitle   = errors.New("title is empty")
	errInvalidTitle = errors.New("title contains invalid characters")
)

// invalidTitleChars are characters that may not appear in a page title.
const invalidTitleChars = "#<>[]|{}"

// Title identifies a page by namespace and DB key.
//
// The DB key uses underscores instead of spaces and has its first letter
// capitalised, e.g. "Main_Page".
type Title struct {
	Namespace Namespace
	DBKey     string
}

// NewTitle returns a title in ns for an already normalized DB key.
func NewTitle(ns Namespace, dbKey string) Title {
	return Title{Namespace: ns, DBKey: dbKey}
}

// ParseTitle parses user-facing text such as "file:cat.png" or "Main Page".
//
// A leading recognized namespace prefix selects the namespace; unknown
// prefixes stay part of the page name.
func ParseTitle(text string) (Title, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "_", " "))
	text = strings.TrimPrefix(text, ":")

	if text == "" {
		return Title{}, errEmptyTitle
	}

	if strings.ContainsAny(text, invalidTitleChars) {
		return Title{}, errInvalidTitle
	}

	ns := NSMain

	if prefix, rest, found := strings.Cut(text, ":"); found {
		if parsed, ok := lookupNamespace(prefix); ok {
			ns = parsed
			text = strings.TrimSpace(rest)
		}
	}

	if text == "" {
		return Title{}, errEmptyTitle
	}

	return Title{Namespace: ns, DBKey: toDBKey(text)}, nil
}

// MustParseTitle is like ParseTitle but panics on invalid input.
func MustParseTitle(text string) Title {
	t, err := ParseTitle(text)
	if err != nil {
		panic("wiki: " + err.Error() + ": " + text)
	}

	return t
}

// PrefixedDBKey returns the DB key with its namespace prefix, e.g. "File:Cat.png".
func (t Title) PrefixedDBKey() string {
	if t.Namespace == NSMain {
		return t.DBKey
	}

	return t.Namespace.Name() + ":" + t.DBKey
}

// PrefixedText returns the display form, using spaces instead of underscores.
func (t Title) PrefixedText() string {
	return strings.ReplaceAll(t.PrefixedDBKey(), "_", " ")
}

// Text returns the page name without namespace, using spaces.
func (t Title) Text() string {
	return strings.ReplaceAll(t.DBKey, "_", " ")
}

// toDBKey collapses whitespace runs into underscores and capitalises the first letter.
func toDBKey(text string) string {
	key := strings.Join(strings.Fields(text), "_")

	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}

	return string(unicode.ToUpper(r)) + key[size:]
}
