// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package notice

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/pixivfe/pagenotice/wiki"
)

// countingSource is a map-backed MessageSource that records lookups.
type countingSource struct {
	messages map[string]string
	calls    map[string]int
}

func newCountingSource(messages map[string]string) *countingSource {
	return &countingSource{messages: messages, calls: map[string]int{}}
}

func (s *countingSource) Message(_ context.Context, key string) (string, bool) {
	s.calls[key]++

	html, ok := s.messages[key]

	return html, ok
}

func newTestPlacer(src MessageSource) *Placer {
	p := NewPlacer(src)
	p.Logger = zerolog.Nop()

	return p
}

// bodyContext is a PageBody context with its own buffers.
func bodyContext(text string, ns wiki.Namespace) (PageBody, *string, *wiki.OutputPage) {
	out := wiki.NewOutputPage(wiki.NewTitle(ns, "X"), wiki.ActionView)
	buf := text

	return PageBody{Text: &buf, Styles: out, Namespace: ns, HasRevision: true}, &buf, out
}

func TestPlaceScenarioA(t *testing.T) {
	t.Parallel()

	src := newCountingSource(map[string]string{"top-notice-ns-0": "Welcome"})
	rc, text, out := bodyContext("", wiki.NSMain)

	placement := newTestPlacer(src).Place(context.Background(), rc,
		PageIdentity{PrefixedName: "Main_Page", Namespace: wiki.NSMain}, false)

	assert.Equal(t, `<div id="top-notice-ns">Welcome</div>`, placement.Top)
	assert.Empty(t, placement.Bottom)
	assert.Equal(t, `<div id="top-notice-ns">Welcome</div>`, *text)
	assert.Equal(t, []string{StyleModule}, out.ModuleStyles())
	assert.Equal(t, 1, src.calls["top-notice-Main_Page"])
}

func TestPlaceScenarioCDisabledPerPageNotices(t *testing.T) {
	t.Parallel()

	src := newCountingSource(map[string]string{
		"top-notice-Project:Rules":    "Read the rules",
		"bottom-notice-Project:Rules": "Thanks",
	})
	rc, text, out := bodyContext("body", wiki.NSProject)

	placement := newTestPlacer(src).Place(context.Background(), rc,
		PageIdentity{PrefixedName: "Project:Rules", Namespace: wiki.NSProject}, true)

	assert.Equal(t, "body", *text)
	assert.Empty(t, placement.Placed)
	assert.False(t, placement.StylesRequested())
	assert.Empty(t, out.ModuleStyles())

	assert.Zero(t, src.calls["top-notice-Project:Rules"], "slug keys must not be looked up")
	assert.Zero(t, src.calls["bottom-notice-Project:Rules"], "slug keys must not be looked up")
	assert.Equal(t, 1, src.calls["top-notice-ns-4"])
	assert.Equal(t, 1, src.calls["bottom-notice-ns-4"])
}

func TestPlaceScenarioDOrder(t *testing.T) {
	t.Parallel()

	src := newCountingSource(map[string]string{
		"top-notice-Help:Intro":       "<b>page top</b>",
		"top-notice-ns-12":            "ns top",
		"bottom-notice-Help:Intro":    "page bottom",
		"bottom-notice-ns-12":         "ns bottom",
		"unrelated-key-that-is-never": "x",
	})
	rc, text, _ := bodyContext("<p>content</p>", wiki.NSHelp)

	placement := newTestPlacer(src).Place(context.Background(), rc,
		PageIdentity{PrefixedName: "Help:Intro", Namespace: wiki.NSHelp}, false)

	want := `<div id="top-notice"><b>page top</b></div>` +
		`<div id="top-notice-ns">ns top</div>` +
		`<p>content</p>` +
		`<div id="bottom-notice">page bottom</div>` +
		`<div id="bottom-notice-ns">ns bottom</div>`

	assert.Equal(t, want, *text)
	assert.Equal(t, []string{
		"top-notice-Help:Intro", "top-notice-ns-12", "bottom-notice-Help:Intro", "bottom-notice-ns-12",
	}, placement.Placed)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(*text))
	require.NoError(t, err)

	ids := doc.Find("body > div").Map(func(_ int, s *goquery.Selection) string {
		id, _ := s.Attr("id")
		return id
	})
	assert.Equal(t, []string{TopID, TopNSID, BottomID, BottomNSID}, ids, "blocks are siblings, not nested")
}

func TestPlaceBlankMessagesAreAbsent(t *testing.T) {
	t.Parallel()

	src := newCountingSource(map[string]string{
		"top-notice-A":       "",
		"top-notice-ns-0":    "   \n\t",
		"bottom-notice-A":    " ",
		"bottom-notice-ns-0": "\n",
	})
	rc, text, out := bodyContext("body", wiki.NSMain)

	placement := newTestPlacer(src).Place(context.Background(), rc, PageIdentity{PrefixedName: "A"}, false)

	assert.Equal(t, "body", *text)
	assert.Empty(t, placement.Placed)
	assert.Empty(t, out.ModuleStyles())
	assert.NotContains(t, *text, "<div")
}

func TestPlaceStylesIffAnyPresent(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"top-notice-A", "top-notice-ns-0", "bottom-notice-A", "bottom-notice-ns-0"} {
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			src := newCountingSource(map[string]string{key: "only me"})
			rc, _, out := bodyContext("", wiki.NSMain)

			placement := newTestPlacer(src).Place(context.Background(), rc, PageIdentity{PrefixedName: "A"}, false)

			assert.Equal(t, []string{key}, placement.Placed)
			assert.True(t, placement.StylesRequested())
			assert.Equal(t, []string{StyleModule}, out.ModuleStyles())
		})
	}
}

func TestPlaceIsIdempotent(t *testing.T) {
	t.Parallel()

	src := newCountingSource(map[string]string{
		"top-notice-A":        "t",
		"bottom-notice-ns-0":  "b",
		"bottom-notice-other": "never",
	})
	placer := newTestPlacer(src)
	id := PageIdentity{PrefixedName: "A"}

	first, text1, _ := bodyContext("body", wiki.NSMain)
	second, text2, _ := bodyContext("body", wiki.NSMain)

	p1 := placer.Place(context.Background(), first, id, false)
	p2 := placer.Place(context.Background(), second, id, false)

	assert.Equal(t, *text1, *text2)
	assert.Equal(t, p1, p2)
}

func TestPlaceSkippedContextDoesNoLookups(t *testing.T) {
	t.Parallel()

	src := newCountingSource(map[string]string{"top-notice-ns-6": "file notice"})
	out := wiki.NewOutputPage(wiki.MustParseTitle("File:Cat.png"), wiki.ActionEdit)
	out.AddHTML("original")

	placement := newTestPlacer(src).Place(context.Background(), ForFilePage(out), IdentityOf(out.Title()), false)

	assert.True(t, placement.Skipped)
	assert.Equal(t, "original", out.HTML())
	assert.Empty(t, out.ModuleStyles())
	assert.Empty(t, src.calls)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	src := MessageSourceFunc(func(_ context.Context, key string) (string, bool) {
		switch key {
		case "present":
			return " <i>x</i> ", true
		case "blank":
			return "  ", true
		default:
			return "ignored", false
		}
	})

	ctx := context.Background()

	assert.Equal(t, ResolvedNotice{Key: "present", HTML: " <i>x</i> ", Present: true}, Resolve(ctx, src, "present"))
	assert.Equal(t, ResolvedNotice{Key: "blank"}, Resolve(ctx, src, "blank"))
	assert.Equal(t, ResolvedNotice{Key: "missing"}, Resolve(ctx, src, "missing"))
}
