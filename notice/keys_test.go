// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package notice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"codeberg.org/pixivfe/pagenotice/wiki"
)

func TestDeriveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   PageIdentity
		want Keys
	}{
		{
			name: "main page",
			id:   PageIdentity{PrefixedName: "Main_Page", Namespace: wiki.NSMain},
			want: Keys{
				SlugTop:    "top-notice-Main_Page",
				NSTop:      "top-notice-ns-0",
				SlugBottom: "bottom-notice-Main_Page",
				NSBottom:   "bottom-notice-ns-0",
			},
		},
		{
			name: "subpages replace every slash",
			id:   PageIdentity{PrefixedName: "Project:Rules/Voting/2024", Namespace: wiki.NSProject},
			want: Keys{
				SlugTop:    "top-notice-Project:Rules-Voting-2024",
				NSTop:      "top-notice-ns-4",
				SlugBottom: "bottom-notice-Project:Rules-Voting-2024",
				NSBottom:   "bottom-notice-ns-4",
			},
		},
		{
			name: "empty name is not special-cased",
			id:   PageIdentity{PrefixedName: "", Namespace: wiki.NSMain},
			want: Keys{
				SlugTop:    "top-notice-",
				NSTop:      "top-notice-ns-0",
				SlugBottom: "bottom-notice-",
				NSBottom:   "bottom-notice-ns-0",
			},
		},
		{
			name: "negative namespace",
			id:   PageIdentity{PrefixedName: "Special:Search", Namespace: wiki.NSSpecial},
			want: Keys{
				SlugTop:    "top-notice-Special:Search",
				NSTop:      "top-notice-ns--1",
				SlugBottom: "bottom-notice-Special:Search",
				NSBottom:   "bottom-notice-ns--1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, DeriveKeys(tt.id))
		})
	}
}

func TestSlugOnlyReplacesSlashes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a-b_c:d.e-f\\g", Slug("a/b_c:d.e-f\\g"))
	assert.Equal(t, "--", Slug("//"))
}

func TestKeysAllOrder(t *testing.T) {
	t.Parallel()

	keys := DeriveKeys(IdentityOf(wiki.MustParseTitle("File:Cat.png")))

	assert.Equal(t, []string{
		"top-notice-File:Cat.png",
		"top-notice-ns-6",
		"bottom-notice-File:Cat.png",
		"bottom-notice-ns-6",
	}, keys.All())
}
