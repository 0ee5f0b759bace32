// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package wiki

import (
	"strconv"
	"strings"
)

// Namespace is the integer classification of a page's kind.
//
// Negative values are virtual namespaces that have no stored pages.
type Namespace int

// Built-in namespaces.
const (
	NSMedia     Namespace = -2
	NSSpecial   Namespace = -1
	NSMain      Namespace = 0
	NSTalk      Namespace = 1
	NSUser      Namespace = 2
	NSUserTalk  Namespace = 3
	NSProject   Namespace = 4
	NSFile      Namespace = 6
	NSMediaWiki Namespace = 8
	NSTemplate  Namespace = 10
	NSHelp      Namespace = 12
	NSCategory  Namespace = 14
)

// namespaceNames maps namespaces to their canonical prefix, without the colon.
var namespaceNames = map[Namespace]string{
	NSMedia:     "Media",
	NSSpecial:   "Special",
	NSMain:      "",
	NSTalk:      "Talk",
	NSUser:      "User",
	NSUserTalk:  "User_talk",
	NSProject:   "Project",
	NSFile:      "File",
	NSMediaWiki: "MediaWiki",
	NSTemplate:  "Template",
	NSHelp:      "Help",
	NSCategory:  "Category",
}

// namespaceAliases holds additional, case-insensitive prefixes.
var namespaceAliases = map[string]Namespace{
	"image": NSFile,
}

// Name returns the canonical prefix of ns, or the decimal id for unknown namespaces.
func (ns Namespace) Name() string {
	if name, ok := namespaceNames[ns]; ok {
		return name
	}

	return strconv.Itoa(int(ns))
}

// String implements fmt.Stringer.
func (ns Namespace) String() string {
	return strconv.Itoa(int(ns))
}

// IsVirtual reports whether ns cannot hold stored pages.
func (ns Namespace) IsVirtual() bool {
	return ns < NSMain
}

// lookupNamespace resolves a title prefix to a namespace.
func lookupNamespace(prefix string) (Namespace, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(prefix), " ", "_"))
	if normalized == "" {
		return NSMain, false
	}

	for ns, name := range namespaceNames {
		if name != "" && strings.ToLower(name) == normalized {
			return ns, true
		}
	}

	ns, ok := namespaceAliases[normalized]

	return ns, ok
}
