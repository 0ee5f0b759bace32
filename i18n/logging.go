// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

// logMissingOnce logs a missing translation warning once per (locale, msgid) pair.
func (c *Catalog) logMissingOnce(locale, key string) {
	id := locale + "\x00" + key
	if _, loaded := c.missingKeyOnce.LoadOrStore(id, struct{}{}); !loaded {
		c.Logger.Warn().
			Str("locale", locale).
			Str("key", key).
			Msg("Missing i18n translation")
	}
}
