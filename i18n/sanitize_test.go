// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "Welcome", want: "Welcome"},
		{name: "inline markup is kept", input: `<b>Bold</b> and <a href="/wiki/Help" title="Help">link</a>`, want: `<b>Bold</b> and <a href="/wiki/Help" title="Help">link</a>`},
		{name: "unclosed tags are closed", input: "<i>open", want: "<i>open</i>"},
		{name: "script removed with content", input: "a<script>alert(1)</script>b", want: "ab"},
		{name: "nested style removed", input: "<div><style>p{}</style><p>x</p></div>", want: "<div><p>x</p></div>"},
		{name: "event handlers removed", input: `<span onmouseover="x()" class="c">y</span>`, want: `<span class="c">y</span>`},
		{name: "javascript url removed", input: `<a href=" JavaScript:evil()">z</a>`, want: `<a>z</a>`},
		{name: "data url removed", input: `<img src="data:text/html;base64,AAAA" alt="i">`, want: `<img alt="i"/>`},
		{name: "comments removed", input: "a<!-- hidden -->b", want: "ab"},
		{name: "bare ampersand is escaped", input: "Tom & Jerry", want: "Tom &amp; Jerry"},
		{name: "iframe removed", input: `<iframe src="https://example.com"></iframe>ok`, want: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestMessageZeroValue(t *testing.T) {
	t.Parallel()

	var msg Message

	assert.False(t, msg.Exists())
	assert.True(t, msg.IsBlank())
	assert.Empty(t, msg.Parse())
	assert.Empty(t, msg.Text())
}
