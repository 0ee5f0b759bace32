// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package wiki models the host side of a page render: titles and namespaces,
the per-request output buffer, the edit form and file description page,
and a read-only page store loaded from a YAML fixture.
*/
package wiki
