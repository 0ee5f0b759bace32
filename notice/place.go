// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package notice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/pagenotice/markup"
)

// StyleModule is the style module requested whenever a notice is placed.
const StyleModule = "ext.pageNotice"

// Container ids of the four notice blocks.
const (
	TopID      = "top-notice"
	TopNSID    = "top-notice-ns"
	BottomID   = "bottom-notice"
	BottomNSID = "bottom-notice-ns"
)

// RenderContext is an output slot that notices can be placed into.
type RenderContext interface {
	// Name identifies the context in logs.
	Name() string
	// Applicable reports whether notices belong in this context at all.
	Applicable() bool
	// Insert writes top before and bottom after the existing content.
	// Either may be empty.
	Insert(top, bottom string)
	// LoadStyles requests the given style module.
	LoadStyles(module string)
}

// Placement describes what Place did.
type Placement struct {
	// Skipped is true when the context was not applicable.
	Skipped bool
	// Top and Bottom are the inserted HTML sequences.
	Top    string
	Bottom string
	// Placed lists the keys that produced a block, in output order.
	Placed []string
}

// StylesRequested reports whether the style module was requested.
func (p Placement) StylesRequested() bool {
	return len(p.Placed) > 0
}

// Placer resolves and places notices.
type Placer struct {
	Messages MessageSource
	Logger   zerolog.Logger
}

// NewPlacer returns a Placer reading notices from src.
func NewPlacer(src MessageSource) *Placer {
	return &Placer{
		Messages: src,
		Logger:   log.With().Str("sys", "notice").Logger(),
	}
}

// Place puts the notices of id into rc.
//
// When disablePerPage is true the page-specific keys are not looked up.
// Place never fails; absent notices are skipped.
func (p *Placer) Place(ctx context.Context, rc RenderContext, id PageIdentity, disablePerPage bool) Placement {
	if !rc.Applicable() {
		p.Logger.Debug().
			Str("context", rc.Name()).
			Str("page", id.PrefixedName).
			Msg("Notices not applicable")

		return Placement{Skipped: true}
	}

	keys := DeriveKeys(id)

	slugTop := ResolvedNotice{Key: keys.SlugTop}
	slugBottom := ResolvedNotice{Key: keys.SlugBottom}

	if !disablePerPage {
		slugTop = Resolve(ctx, p.Messages, keys.SlugTop)
		slugBottom = Resolve(ctx, p.Messages, keys.SlugBottom)
	}

	nsTop := Resolve(ctx, p.Messages, keys.NSTop)
	nsBottom := Resolve(ctx, p.Messages, keys.NSBottom)

	var placement Placement

	placement.Top = placement.wrap(slugTop, TopID) + placement.wrap(nsTop, TopNSID)
	placement.Bottom = placement.wrap(slugBottom, BottomID) + placement.wrap(nsBottom, BottomNSID)

	if len(placement.Placed) == 0 {
		return placement
	}

	rc.Insert(placement.Top, placement.Bottom)
	rc.LoadStyles(StyleModule)

	p.Logger.Debug().
		Str("context", rc.Name()).
		Str("page", id.PrefixedName).
		Strs("keys", placement.Placed).
		Msg("Placed notices")

	return placement
}

// wrap returns the container block of n, recording its key, or "" if n is absent.
func (p *Placement) wrap(n ResolvedNotice, id string) string {
	if !n.Present {
		return ""
	}

	p.Placed = append(p.Placed, n.Key)

	return markup.RawElementString("div", markup.Attrs{"id": id}, n.HTML)
}
