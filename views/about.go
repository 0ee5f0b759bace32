// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import "codeberg.org/pixivfe/pagenotice/i18n"

// AboutRow is one entry of the about page.
type AboutRow struct {
	// ID is the element id of the value.
	ID    string
	Label i18n.MsgKey
	Value string
}
