// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
noticekeys prints the notice message keys of page titles. With -resolve it
also looks each key up in a message catalogue directory.

	go run ./cmd/noticekeys -resolve -lang de "Main Page" File:Cat.png
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"codeberg.org/pixivfe/pagenotice/core/audit"
	"codeberg.org/pixivfe/pagenotice/i18n"
	"codeberg.org/pixivfe/pagenotice/notice"
	"codeberg.org/pixivfe/pagenotice/wiki"
)

var errNoTitles = errors.New("no titles given")

type options struct {
	resolve        bool
	messagesDir    string
	lang           string
	disablePerPage bool
}

func main() {
	audit.SetDefaultLogger()

	var opts options

	flag.BoolVar(&opts.resolve, "resolve", false, "look the keys up in the message catalogue")
	flag.StringVar(&opts.messagesDir, "messages", ".", "directory with po/ and messages/ subdirectories")
	flag.StringVar(&opts.lang, "lang", i18n.BaseLocale, "language to resolve messages in")
	flag.BoolVar(&opts.disablePerPage, "disable-per-page", false, "skip page-specific keys when resolving")
	flag.Parse()

	if err := run(context.Background(), os.Stdout, opts, flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("noticekeys failed")
	}
}

func run(ctx context.Context, w io.Writer, opts options, titles []string) error {
	if len(titles) == 0 {
		return errNoTitles
	}

	var catalog *i18n.Catalog

	if opts.resolve {
		tag, err := language.Parse(opts.lang)
		if err != nil {
			return fmt.Errorf("invalid language %q: %w", opts.lang, err)
		}

		catalog, err = i18n.Load(os.DirFS(opts.messagesDir), i18n.Options{})
		if err != nil {
			return err
		}

		catalog.Logger = zerolog.Nop()
		ctx = i18n.WithTag(ctx, tag)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, raw := range titles {
		title, err := wiki.ParseTitle(raw)
		if err != nil {
			return fmt.Errorf("invalid title %q: %w", raw, err)
		}

		keys := notice.DeriveKeys(notice.IdentityOf(title))

		fmt.Fprintf(tw, "# %s (namespace %d)\n", title.PrefixedText(), int(title.Namespace))

		for _, key := range keys.All() {
			if catalog == nil {
				fmt.Fprintln(tw, key)

				continue
			}

			fmt.Fprintf(tw, "%s\t%s\n", key, describe(ctx, catalog, keys, key, opts.disablePerPage))
		}
	}

	return tw.Flush()
}

// describe reports how key resolves in catalog.
func describe(ctx context.Context, catalog *i18n.Catalog, keys notice.Keys, key string, disablePerPage bool) string {
	if disablePerPage && (key == keys.SlugTop || key == keys.SlugBottom) {
		return "skipped"
	}

	resolved := notice.Resolve(ctx, catalog, key)
	if !resolved.Present {
		return "absent"
	}

	return "present\t" + resolved.HTML
}
