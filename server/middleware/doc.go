// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides the HTTP middleware chain of the preview server.

Middlewares share the Middleware signature and are installed in order by
(*router.Router).RegisterMiddleware. Handlers that can fail are wrapped with
CatchError.
*/
package middleware
