// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package wiki

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPagePrependAndAdd(t *testing.T) {
	t.Parallel()

	out := NewOutputPage(MustParseTitle("File:Cat.png"), "")

	out.AddHTML("<p>body</p>")
	out.PrependHTML("<b>second</b>")
	out.PrependHTML("<b>first</b>")
	out.AddHTML("<i>tail</i>")
	out.PrependHTML("")

	assert.Equal(t, "<b>first</b><b>second</b><p>body</p><i>tail</i>", out.HTML())
	assert.Equal(t, ActionView, out.Action())
}

func TestOutputPageRevisionAndArticle(t *testing.T) {
	t.Parallel()

	out := NewOutputPage(MustParseTitle("Main Page"), ActionEdit)

	_, ok := out.RevisionID()
	assert.False(t, ok)
	assert.False(t, out.IsArticle())

	out.SetRevisionID(42)
	out.SetArticleFlag(true)

	id, ok := out.RevisionID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.True(t, out.IsArticle())
}

func TestOutputPageModuleStyles(t *testing.T) {
	t.Parallel()

	out := NewOutputPage(MustParseTitle("Main Page"), ActionView)

	out.AddModuleStyles("ext.pageNotice", "site.styles")
	out.AddModuleStyles("ext.pageNotice")

	modules := out.ModuleStyles()
	assert.Equal(t, []string{"ext.pageNotice", "site.styles"}, modules)

	modules[0] = "mutated"
	assert.Equal(t, "ext.pageNotice", out.ModuleStyles()[0])
}
