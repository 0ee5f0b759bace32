// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package notice places localized notice banners above and below rendered pages.

Every page has four candidate notice keys:

	top-notice-<slug>          bottom-notice-<slug>
	top-notice-ns-<namespace>  bottom-notice-ns-<namespace>

where <slug> is the prefixed DB key of the page with every "/" replaced by "-".
Keys that resolve to non-blank messages are wrapped in a <div> with a fixed id
and inserted into the render context: page-specific notices first, then
namespace-wide notices. Per-page keys can be switched off by configuration, in
which case they are never looked up.

The same placement routine serves three render contexts (edit form, file
description page, page body); see [EditForm], [FilePage] and [PageBody].
*/
package notice
