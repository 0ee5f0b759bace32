// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package hooks provides the typed extension points of the render pipeline.

Extensions register callbacks at process start; the host runs them at fixed
points while rendering. Callbacks cannot stop the pipeline: every registered
callback runs, in registration order.
*/
package hooks

import (
	"context"
	"sync"

	"codeberg.org/pixivfe/pagenotice/wiki"
)

// Extension point names, used in logs.
const (
	EditFormInitial      = "EditFormInitial"
	ImagePageInline      = "ImagePageInline"
	OutputPageBeforeHTML = "OutputPageBeforeHTML"
)

// EditFormInitialFunc runs before the edit form is first rendered.
// It may modify edit.FormPageTop.
type EditFormInitialFunc func(ctx context.Context, edit *wiki.EditPage, out *wiki.OutputPage)

// ImagePageInlineFunc runs while a file description page is rendered.
// It may prepend or append HTML to out.
type ImagePageInlineFunc func(ctx context.Context, page *wiki.ImagePage, out *wiki.OutputPage)

// OutputPageBeforeHTMLFunc runs before the page body text is written.
// It may modify *text.
type OutputPageBeforeHTMLFunc func(ctx context.Context, out *wiki.OutputPage, text *string)

// Registry holds the callbacks of every extension point.
//
// Registration is safe for concurrent use, but is expected to happen before
// the host starts serving.
type Registry struct {
	mu sync.RWMutex

	editFormInitial      []EditFormInitialFunc
	imagePageInline      []ImagePageInlineFunc
	outputPageBeforeHTML []OutputPageBeforeHTMLFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// OnEditFormInitial registers fn at the EditFormInitial point.
func (r *Registry) OnEditFormInitial(fn EditFormInitialFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.editFormInitial = append(r.editFormInitial, fn)
}

// OnImagePageInline registers fn at the ImagePageInline point.
func (r *Registry) OnImagePageInline(fn ImagePageInlineFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.imagePageInline = append(r.imagePageInline, fn)
}

// OnOutputPageBeforeHTML registers fn at the OutputPageBeforeHTML point.
func (r *Registry) OnOutputPageBeforeHTML(fn OutputPageBeforeHTMLFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.outputPageBeforeHTML = append(r.outputPageBeforeHTML, fn)
}

// RunEditFormInitial runs the EditFormInitial callbacks.
func (r *Registry) RunEditFormInitial(ctx context.Context, edit *wiki.EditPage, out *wiki.OutputPage) {
	r.mu.RLock()
	fns := r.editFormInitial
	r.mu.RUnlock()

	for _, fn := range fns {
		fn(ctx, edit, out)
	}
}

// RunImagePageInline runs the ImagePageInline callbacks.
func (r *Registry) RunImagePageInline(ctx context.Context, page *wiki.ImagePage, out *wiki.OutputPage) {
	r.mu.RLock()
	fns := r.imagePageInline
	r.mu.RUnlock()

	for _, fn := range fns {
		fn(ctx, page, out)
	}
}

// RunOutputPageBeforeHTML runs the OutputPageBeforeHTML callbacks.
func (r *Registry) RunOutputPageBeforeHTML(ctx context.Context, out *wiki.OutputPage, text *string) {
	r.mu.RLock()
	fns := r.outputPageBeforeHTML
	r.mu.RUnlock()

	for _, fn := range fns {
		fn(ctx, out, text)
	}
}

// Counts returns the number of callbacks registered per extension point.
func (r *Registry) Counts() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return map[string]int{
		EditFormInitial:      len(r.editFormInitial),
		ImagePageInline:      len(r.imagePageInline),
		OutputPageBeforeHTML: len(r.outputPageBeforeHTML),
	}
}
