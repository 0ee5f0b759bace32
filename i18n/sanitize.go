// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// droppedElements are removed together with their content.
var droppedElements = []atom.Atom{
	atom.Script,
	atom.Style,
	atom.Iframe,
	atom.Object,
	atom.Embed,
	atom.Form,
	atom.Base,
	atom.Meta,
	atom.Link,
}

// urlAttributes hold URLs and are checked for dangerous schemes.
var urlAttributes = []string{"href", "src", "action", "formaction", "xlink:href"}

// dangerousSchemes are URL schemes that run code.
var dangerousSchemes = []string{"javascript:", "vbscript:", "data:"}

// Sanitize parses s as an HTML fragment inside a <div> and renders it back
// without active content: script-like elements, event handler attributes and
// URLs with executable schemes are removed. Unbalanced tags are closed.
func Sanitize(s string) string {
	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

	nodes, err := html.ParseFragment(strings.NewReader(s), container)
	if err != nil {
		return html.EscapeString(s)
	}

	var sb strings.Builder

	for _, n := range nodes {
		if dropNode(n) {
			continue
		}

		cleanNode(n)

		if err := html.Render(&sb, n); err != nil {
			return html.EscapeString(s)
		}
	}

	return sb.String()
}

func dropNode(n *html.Node) bool {
	return n.Type == html.CommentNode ||
		(n.Type == html.ElementNode && slices.Contains(droppedElements, n.DataAtom))
}

// cleanNode removes dropped descendants and unsafe attributes in place.
func cleanNode(n *html.Node) {
	if n.Type == html.ElementNode {
		n.Attr = slices.DeleteFunc(n.Attr, unsafeAttr)
	}

	for child := n.FirstChild; child != nil; {
		next := child.NextSibling

		if dropNode(child) {
			n.RemoveChild(child)
		} else {
			cleanNode(child)
		}

		child = next
	}
}

func unsafeAttr(a html.Attribute) bool {
	key := strings.ToLower(a.Key)
	if strings.HasPrefix(key, "on") {
		return true
	}

	if !slices.Contains(urlAttributes, key) {
		return false
	}

	value := strings.ToLower(strings.Join(strings.Fields(a.Val), ""))
	for _, scheme := range dangerousSchemes {
		if strings.HasPrefix(value, scheme) {
			return true
		}
	}

	return false
}
