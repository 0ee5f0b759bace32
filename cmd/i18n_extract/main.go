// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
i18n_extract writes the gettext template of every interface string used
through the i18n package, and with -check reports msgids that a locale's
.po file does not translate.

	go run ./cmd/i18n_extract -o po/pagenotice.pot -check
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"
	"golang.org/x/tools/go/packages"

	"codeberg.org/pixivfe/pagenotice/core/audit"
)

var errLoadPackages = errors.New("failed to load packages")

func main() {
	audit.SetDefaultLogger()

	outPath := flag.String("o", "po/pagenotice.pot", "output file")
	check := flag.Bool("check", false, "report msgids missing from po/<locale>.po")
	flag.Parse()

	if err := run(*outPath, *check); err != nil {
		log.Fatal().Err(err).Msg("Extraction failed")
	}
}

func run(outPath string, check bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	// Msgids used in .templ views are found in the generated _templ.go files,
	// so run `go tool templ generate` first.
	pkgs, err := packages.Load(&packages.Config{Mode: packages.LoadAllSyntax, Tests: false}, "./...")
	if err != nil {
		return fmt.Errorf("%w: %w", errLoadPackages, err)
	}

	if packages.PrintErrors(pkgs) > 0 {
		return errLoadPackages
	}

	refs := extractRefs(pkgs, findProjectRoot(wd))

	var b strings.Builder
	writePOT(&b, refs, detectVersion(), time.Now())

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}

	log.Info().Str("path", outPath).Int("msgids", len(refs)).Msg("Wrote template")

	if check {
		return checkLocales(filepath.Dir(outPath), refs)
	}

	return nil
}

// extractRefs collects msgids from every package that has type information.
func extractRefs(pkgs []*packages.Package, projectRoot string) map[string][]ref {
	i18nPkgs := make(map[string]struct{})

	for _, p := range pkgs {
		if i18nPackage(p.Types) {
			i18nPkgs[p.PkgPath] = struct{}{}
		}
	}

	refs := map[string][]ref{}

	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		e := &extractor{
			refs:        refs,
			projectRoot: projectRoot,
			fset:        p.Fset,
			info:        p.TypesInfo,
			i18nPkgs:    i18nPkgs,
		}
		e.inspect(p.Syntax)
	}

	return refs
}

// writePOT writes refs as a gettext template.
func writePOT(w io.Writer, refs map[string][]ref, version string, now time.Time) {
	fmt.Fprintln(w, `msgid ""`)
	fmt.Fprintln(w, `msgstr ""`)
	fmt.Fprintf(w, "\"Project-Id-Version: PageNotice %s\\n\"\n", version)
	fmt.Fprintf(w, "\"POT-Creation-Date: %s\\n\"\n", now.UTC().Format("2006-01-02 15:04+0000"))
	fmt.Fprintln(w, `"Language: en\n"`)
	fmt.Fprintln(w, `"MIME-Version: 1.0\n"`)
	fmt.Fprintln(w, `"Content-Type: text/plain; charset=UTF-8\n"`)
	fmt.Fprintln(w, `"Content-Transfer-Encoding: 8bit\n"`)

	ids, sorted := sortedRefs(refs)

	for _, id := range ids {
		fmt.Fprintln(w)
		fmt.Fprint(w, "#:")

		for _, r := range sorted[id] {
			fmt.Fprintf(w, " %s:%d", r.file, r.line)
		}

		fmt.Fprintln(w)
		fmt.Fprintf(w, "msgid %q\n", id)
		fmt.Fprintln(w, `msgstr ""`)
	}
}

// checkLocales logs, per .po file in dir, the msgids of refs it does not translate.
func checkLocales(dir string, refs map[string][]ref) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.po"))
	if err != nil {
		return err
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		missing := untranslated(data, refs)

		event := log.Info()
		if len(missing) > 0 {
			event = log.Warn().Strs("missing", missing)
		}

		event.Str("file", file).Int("missing_count", len(missing)).Msg("Checked locale")
	}

	return nil
}

// untranslated returns the sorted msgids of refs that the .po content in
// data leaves out or translates as an empty string.
func untranslated(data []byte, refs map[string][]ref) []string {
	po := gotext.NewPo()
	po.Parse(data)

	translations := po.GetDomain().GetTranslations()

	var missing []string

	for id := range refs {
		if tr, ok := translations[id]; !ok || !tr.IsTranslated() {
			missing = append(missing, id)
		}
	}

	slices.Sort(missing)

	return missing
}

// detectVersion resolves a human-friendly version string using git describe.
// Falls back to "dev" when git is unavailable or this is not a git checkout.
func detectVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		return "dev"
	}

	return strings.TrimSpace(string(out))
}

// findProjectRoot returns the nearest parent directory of wd containing
// go.mod, or wd itself.
func findProjectRoot(wd string) string {
	dir := filepath.Clean(wd)
	for {
		if fi, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !fi.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return wd
		}

		dir = parent
	}
}
