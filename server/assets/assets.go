// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package assets provides the embedded stylesheets that pages load as style
modules. The stylesheet of module m is css/m.css in the assets directory.
*/
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// stylesDir holds one stylesheet per style module.
const stylesDir = "assets/css"

var (
	errNoAssets     = errors.New("embedded assets are not set")
	errMissingStyle = errors.New("style module has no stylesheet")
)

// FS provides access to the embedded file system. main assigns it at startup.
var FS fs.FS

// Styles returns the stylesheet directory.
func Styles() (fs.FS, error) {
	if FS == nil {
		return nil, errNoAssets
	}

	return fs.Sub(FS, stylesDir)
}

// StyleModules returns the names of the embedded style modules in sorted order.
func StyleModules() ([]string, error) {
	if FS == nil {
		return nil, errNoAssets
	}

	matches, err := fs.Glob(FS, path.Join(stylesDir, "*.css"))
	if err != nil {
		return nil, err
	}

	modules := make([]string, 0, len(matches))
	for _, m := range matches {
		modules = append(modules, strings.TrimSuffix(path.Base(m), ".css"))
	}

	slices.Sort(modules)

	return modules, nil
}

// RequireStyles returns an error naming the first of modules without an
// embedded stylesheet.
func RequireStyles(modules ...string) error {
	available, err := StyleModules()
	if err != nil {
		return err
	}

	for _, module := range modules {
		if !slices.Contains(available, module) {
			return fmt.Errorf("%w: %s", errMissingStyle, module)
		}
	}

	return nil
}
