// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package wiki

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantNS     Namespace
		wantPrefix string
	}{
		{name: "main namespace with spaces", input: "Main Page", wantNS: NSMain, wantPrefix: "Main_Page"},
		{name: "underscores are kept", input: "Main_Page", wantNS: NSMain, wantPrefix: "Main_Page"},
		{name: "first letter is capitalised", input: "main page", wantNS: NSMain, wantPrefix: "Main_page"},
		{name: "file namespace", input: "File:Cat.png", wantNS: NSFile, wantPrefix: "File:Cat.png"},
		{name: "lowercase namespace prefix", input: "file:cat.png", wantNS: NSFile, wantPrefix: "File:Cat.png"},
		{name: "image alias", input: "Image:Cat.png", wantNS: NSFile, wantPrefix: "File:Cat.png"},
		{name: "project subpage", input: "Project:Rules/Voting", wantNS: NSProject, wantPrefix: "Project:Rules/Voting"},
		{name: "special namespace", input: "Special:RecentChanges", wantNS: NSSpecial, wantPrefix: "Special:RecentChanges"},
		{name: "unknown prefix stays in name", input: "Foo:Bar", wantNS: NSMain, wantPrefix: "Foo:Bar"},
		{name: "leading colon forces main", input: ":Help me", wantNS: NSMain, wantPrefix: "Help_me"},
		{name: "whitespace is collapsed", input: "  Help:  Getting   started ", wantNS: NSHelp, wantPrefix: "Help:Getting_started"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			title, err := ParseTitle(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.wantNS, title.Namespace)
			assert.Equal(t, tt.wantPrefix, title.PrefixedDBKey())
		})
	}
}

func TestParseTitleInvalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "File:", "A[b]", "x|y", "#anchor"} {
		_, err := ParseTitle(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestTitleText(t *testing.T) {
	t.Parallel()

	title := MustParseTitle("Talk:Some page")

	assert.Equal(t, "Talk:Some page", title.PrefixedText())
	assert.Equal(t, "Some page", title.Text())
	assert.Equal(t, "Talk:Some_page", title.PrefixedDBKey())
}

func TestNamespaceName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "File", NSFile.Name())
	assert.Equal(t, "", NSMain.Name())
	assert.Equal(t, "100", Namespace(100).Name())
	assert.Equal(t, "-2", NSMedia.String())
	assert.True(t, NSSpecial.IsVirtual())
	assert.False(t, NSTalk.IsVirtual())
}
