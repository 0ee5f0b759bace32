// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package notice

import (
	"strconv"
	"strings"

	"codeberg.org/pixivfe/pagenotice/wiki"
)

// Key prefixes.
const (
	topPrefix    = "top-notice-"
	bottomPrefix = "bottom-notice-"
	nsInfix      = "ns-"
)

// PageIdentity is the part of a page that notice keys are derived from.
type PageIdentity struct {
	// PrefixedName is the prefixed DB key, e.g. "File:Cat.png".
	PrefixedName string
	Namespace    wiki.Namespace
}

// IdentityOf returns the identity of title.
func IdentityOf(title wiki.Title) PageIdentity {
	return PageIdentity{PrefixedName: title.PrefixedDBKey(), Namespace: title.Namespace}
}

// Keys are the four candidate message keys of a page.
type Keys struct {
	SlugTop    string
	NSTop      string
	SlugBottom string
	NSBottom   string
}

// Slug returns name with every "/" replaced by "-".
func Slug(name string) string {
	return strings.ReplaceAll(name, "/", "-")
}

// DeriveKeys returns the notice keys of id.
func DeriveKeys(id PageIdentity) Keys {
	slug := Slug(id.PrefixedName)
	ns := strconv.Itoa(int(id.Namespace))

	return Keys{
		SlugTop:    topPrefix + slug,
		NSTop:      topPrefix + nsInfix + ns,
		SlugBottom: bottomPrefix + slug,
		NSBottom:   bottomPrefix + nsInfix + ns,
	}
}

// All returns the keys in placement order: slug top, namespace top, slug bottom, namespace bottom.
func (k Keys) All() []string {
	return []string{k.SlugTop, k.NSTop, k.SlugBottom, k.NSBottom}
}
