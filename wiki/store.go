// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package wiki

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/goccy/go-yaml"
)

// ErrPageNotFound is returned by Store.Page for titles without a stored page.
var ErrPageNotFound = errors.New("page not found")

// Page is a stored page revision.
type Page struct {
	Title      Title
	RevisionID int64
	// HTML is the rendered page content.
	HTML string
	// Source is the wikitext shown in the edit form.
	Source string
}

// pageRecord is the YAML form of a Page.
type pageRecord struct {
	Title    string `yaml:"title"`
	Revision int64  `yaml:"revision"`
	HTML     string `yaml:"html"`
	Source   string `yaml:"source"`
}

// Store is a read-only set of pages keyed by prefixed DB key.
//
// A Store is safe for concurrent use after construction.
type Store struct {
	pages map[string]Page
}

// NewStore returns a store holding pages.
func NewStore(pages ...Page) *Store {
	s := &Store{pages: make(map[string]Page, len(pages))}

	for _, p := range pages {
		s.pages[p.Title.PrefixedDBKey()] = p
	}

	return s
}

// LoadStore reads a YAML list of pages from name in fsys.
func LoadStore(fsys fs.FS, name string) (*Store, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open page fixture: %w", err)
	}
	defer f.Close()

	return ReadStore(f)
}

// ReadStore decodes a YAML list of pages from r.
func ReadStore(r io.Reader) (*Store, error) {
	var records []pageRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode page fixture: %w", err)
	}

	pages := make([]Page, 0, len(records))

	for i, rec := range records {
		title, err := ParseTitle(rec.Title)
		if err != nil {
			return nil, fmt.Errorf("page %d: invalid title %q: %w", i, rec.Title, err)
		}

		if title.Namespace.IsVirtual() {
			return nil, fmt.Errorf("page %d: %q is in a virtual namespace", i, rec.Title)
		}

		revision := rec.Revision
		if revision == 0 {
			revision = int64(i + 1)
		}

		pages = append(pages, Page{
			Title:      title,
			RevisionID: revision,
			HTML:       rec.HTML,
			Source:     rec.Source,
		})
	}

	return NewStore(pages...), nil
}

// Page returns the stored page for title.
func (s *Store) Page(title Title) (Page, error) {
	p, ok := s.pages[title.PrefixedDBKey()]
	if !ok {
		return Page{}, fmt.Errorf("%w: %s", ErrPageNotFound, title.PrefixedDBKey())
	}

	return p, nil
}

// Len returns the number of stored pages.
func (s *Store) Len() int {
	return len(s.pages)
}
