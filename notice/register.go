// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package notice

import (
	"context"

	"codeberg.org/pixivfe/pagenotice/hooks"
	"codeberg.org/pixivfe/pagenotice/wiki"
)

// Settings supplies configuration read on every hook invocation.
type Settings interface {
	DisablePerPageNotices() bool
}

// StaticSettings is a fixed Settings value.
type StaticSettings bool

// DisablePerPageNotices implements Settings.
func (s StaticSettings) DisablePerPageNotices() bool { return bool(s) }

// Register binds p to the three notice extension points of reg.
func Register(reg *hooks.Registry, p *Placer, settings Settings) {
	reg.OnEditFormInitial(func(ctx context.Context, edit *wiki.EditPage, out *wiki.OutputPage) {
		p.Place(ctx, ForEditForm(edit, out), IdentityOf(out.Title()), settings.DisablePerPageNotices())
	})

	reg.OnImagePageInline(func(ctx context.Context, _ *wiki.ImagePage, out *wiki.OutputPage) {
		p.Place(ctx, ForFilePage(out), IdentityOf(out.Title()), settings.DisablePerPageNotices())
	})

	reg.OnOutputPageBeforeHTML(func(ctx context.Context, out *wiki.OutputPage, text *string) {
		p.Place(ctx, ForPageBody(out, text), IdentityOf(out.Title()), settings.DisablePerPageNotices())
	})
}
