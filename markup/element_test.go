// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package markup

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
)

func TestRawElementString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tag   string
		attrs Attrs
		inner string
		want  string
	}{
		{
			name:  "id attribute with raw content",
			tag:   "div",
			attrs: Attrs{"id": "top-notice"},
			inner: "<b>Welcome</b>",
			want:  `<div id="top-notice"><b>Welcome</b></div>`,
		},
		{
			name:  "attributes are sorted and escaped",
			tag:   "a",
			attrs: Attrs{"title": `say "hi"`, "href": "/wiki/A&B"},
			inner: "link",
			want:  `<a href="/wiki/A&amp;B" title="say &#34;hi&#34;">link</a>`,
		},
		{
			name:  "no attributes",
			tag:   "p",
			inner: "",
			want:  `<p></p>`,
		},
		{
			name:  "void element drops content",
			tag:   "link",
			attrs: Attrs{"rel": "stylesheet", "href": "/css/ext.pageNotice.css"},
			inner: "ignored",
			want:  `<link href="/css/ext.pageNotice.css" rel="stylesheet">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, RawElementString(tt.tag, tt.attrs, tt.inner))
		})
	}
}

func TestStringPropagatesRenderErrors(t *testing.T) {
	t.Parallel()

	failing := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("boom")
	})

	_, err := String(context.Background(), failing)
	assert.EqualError(t, err, "boom")
}
