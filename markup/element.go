// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package markup builds the small HTML wrappers that notices are placed in.

Attribute values are escaped; inner content is written as-is and must
already be trusted HTML.
*/
package markup

import (
	"bytes"
	"context"
	"io"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// Attrs holds element attributes. Keys are written in sorted order.
type Attrs map[string]string

// voidElements cannot have content or a closing tag.
var voidElements = []string{"br", "hr", "img", "input", "link", "meta"}

// RawElement returns a component rendering <tag attrs>inner</tag>.
//
// inner is not escaped.
func RawElement(tag string, attrs Attrs, inner string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var sb strings.Builder

		sb.WriteString("<")
		sb.WriteString(tag)
		writeAttrs(&sb, attrs)
		sb.WriteString(">")

		if !slices.Contains(voidElements, tag) {
			sb.WriteString(inner)
			sb.WriteString("</")
			sb.WriteString(tag)
			sb.WriteString(">")
		}

		_, err := io.WriteString(w, sb.String())

		return err
	})
}

// RawElementString renders RawElement to a string.
func RawElementString(tag string, attrs Attrs, inner string) string {
	s, _ := String(context.Background(), RawElement(tag, attrs, inner))

	return s
}

// String renders c into a string.
func String(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer

	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func writeAttrs(sb *strings.Builder, attrs Attrs) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		sb.WriteString(" ")
		sb.WriteString(k)
		sb.WriteString(`="`)
		sb.WriteString(templ.EscapeString(attrs[k]))
		sb.WriteString(`"`)
	}
}
