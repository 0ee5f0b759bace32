// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

const (
	poDir       = "po"
	messagesDir = "messages"

	// docLocale is the pseudo-locale holding message documentation.
	docLocale = "qqq"
)

var errInvalidJSON = errors.New("invalid JSON message file")

// Options configures Load.
type Options struct {
	// BaseLocale is the fallback locale. Defaults to [BaseLocale].
	BaseLocale string
	// StrictMissingKeys logs and marks missing UI strings.
	StrictMissingKeys bool
}

// Catalog holds the loaded messages of every locale.
//
// A Catalog is immutable after Load and safe for concurrent use.
type Catalog struct {
	base    language.Tag
	locales map[string]*locale
	tags    []language.Tag
	matcher language.Matcher
	strict  bool

	// missingKeyOnce deduplicates WARN logs for missing msgids in strict mode.
	// The key is locale+"\x00"+msgid.
	missingKeyOnce sync.Map

	Logger zerolog.Logger
}

// catalogFile is one file found while scanning fsys.
type catalogFile struct {
	tag  language.Tag
	path string
	json bool
}

// loadedFile is the parsed content of a catalogFile.
type loadedFile struct {
	po   map[string]string
	json map[string]string
}

// Load reads every catalogue in fsys. Missing "po" or "messages" directories
// are allowed; unreadable or malformed files are errors.
func Load(fsys fs.FS, opts Options) (*Catalog, error) {
	if opts.BaseLocale == "" {
		opts.BaseLocale = BaseLocale
	}

	base, err := language.Parse(opts.BaseLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid base locale %q: %w", opts.BaseLocale, err)
	}

	c := &Catalog{
		base:    base,
		locales: make(map[string]*locale),
		strict:  opts.StrictMissingKeys,
		Logger:  log.With().Str("sys", "i18n").Logger(),
	}

	files, err := c.scan(fsys)
	if err != nil {
		return nil, err
	}

	loaded := make([]loadedFile, len(files))

	var g errgroup.Group

	for i, f := range files {
		g.Go(func() error {
			data, err := fs.ReadFile(fsys, f.path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", f.path, err)
			}

			if f.json {
				loaded[i].json, err = parseJSONMessages(data)
				if err != nil {
					return fmt.Errorf("failed to parse %s: %w", f.path, err)
				}

				return nil
			}

			loaded[i].po = parsePOMessages(data)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, f := range files {
		l := c.locale(f.tag)

		for k, v := range loaded[i].po {
			l.po[k] = v
		}

		for k, v := range loaded[i].json {
			l.json[k] = v
		}

		c.Logger.Info().
			Str("locale", f.tag.String()).
			Str("file", f.path).
			Msg("Loaded locale")
	}

	c.buildMatcher()

	return c, nil
}

// scan lists the catalogue files in fsys.
func (c *Catalog) scan(fsys fs.FS) ([]catalogFile, error) {
	var files []catalogFile

	for _, dir := range []string{poDir, messagesDir} {
		entries, err := fs.ReadDir(fsys, dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read %s directory: %w", dir, err)
		}

		ext := ".po"
		if dir == messagesDir {
			ext = ".json"
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
				continue
			}

			localeName := strings.TrimSuffix(entry.Name(), ext)
			if localeName == docLocale {
				continue
			}

			// Accept both underscore and hyphen.
			t, err := language.Parse(strings.ReplaceAll(localeName, "_", "-"))
			if err != nil {
				c.Logger.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping invalid locale file")

				continue
			}

			files = append(files, catalogFile{
				tag:  t,
				path: path.Join(dir, entry.Name()),
				json: dir == messagesDir,
			})
		}
	}

	return files, nil
}

// locale returns the locale for t, creating it if needed.
func (c *Catalog) locale(t language.Tag) *locale {
	key := t.String()

	l, ok := c.locales[key]
	if !ok {
		l = &locale{tag: t, po: make(map[string]string), json: make(map[string]string)}
		c.locales[key] = l
	}

	return l
}

// buildMatcher builds the language matcher with the base tag first, making
// it the default match.
func (c *Catalog) buildMatcher() {
	c.locale(c.base)

	others := make([]language.Tag, 0, len(c.locales))

	for _, l := range c.locales {
		if l.tag != c.base {
			others = append(others, l.tag)
		}
	}

	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })

	c.tags = append([]language.Tag{c.base}, others...)
	c.matcher = language.NewMatcher(c.tags)
}

// parsePOMessages returns the translated singular entries of a gettext
// catalogue. Entries with an empty msgstr and the header are left out.
func parsePOMessages(data []byte) map[string]string {
	po := gotext.NewPo()
	po.Parse(data)

	translations := po.GetDomain().GetTranslations()
	messages := make(map[string]string, len(translations))

	for id, tr := range translations {
		if id == "" || !tr.IsTranslated() {
			continue
		}

		messages[id] = tr.Get()
	}

	return messages
}

// parseJSONMessages reads a flat JSON object of string messages.
// Keys starting with "@" and non-string values are ignored.
func parseJSONMessages(data []byte) (map[string]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errInvalidJSON
	}

	messages := make(map[string]string)

	root.ForEach(func(key, value gjson.Result) bool {
		if !strings.HasPrefix(key.String(), "@") && value.Type == gjson.String {
			messages[key.String()] = value.String()
		}

		return true
	})

	return messages, nil
}
