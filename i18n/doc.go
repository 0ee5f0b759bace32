// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n provides localized messages backed by GNU gettext .po catalogues
and MediaWiki-style JSON message files.

# Catalogues

A [Catalog] is loaded from a filesystem with the layout:

	po/<locale>.po            msgid = message key, msgstr = content
	messages/<locale>.json    {"@metadata": {...}, "<key>": "<content>", ...}

The <locale> part may use hyphens or underscores ("pt-BR", "pt_BR") and is
normalised to a BCP 47 tag. "messages/qqq.json" holds message documentation
and is ignored. When a locale defines a key in both files, the .po entry wins.

# Lookup

The locale of a lookup is taken from the context ([WithTag], [Catalog.WithRequest])
and matched against the loaded locales. A key missing in the matched locale
falls back to the base locale.

	msg := catalog.Msg(ctx, "top-notice-ns-0")
	if !msg.IsBlank() {
		out.AddHTML(msg.Parse())
	}

[Message.Parse] returns the content as an HTML fragment with active content
removed. [Catalog.Message] combines both steps and satisfies the notice
package's message source.

# UI strings

[Catalog.Tr] translates source-text msgids for the host's own interface, with
text/template placeholders:

	i18n.Tr(ctx, "Editing {{.Title}}", "Title", title.PrefixedText())

Missing UI strings return the msgid unchanged. When StrictMissingKeys is
enabled, they are logged once per locale+key and visibly wrapped as "⟦...⟧".
*/
package i18n
