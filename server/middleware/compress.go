// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// compressMinSize is the smallest response body that is worth compressing.
const compressMinSize = 512

// NewCompression returns a middleware that gzip-compresses HTML and CSS
// responses for clients that accept it.
func NewCompression() (Middleware, error) {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(compressMinSize),
		gzhttp.ContentTypes([]string{"text/html", "text/css", "text/plain"}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip wrapper: %w", err)
	}

	return FromHandlerWrapper(func(next http.Handler) http.Handler {
		return wrapper(next)
	}), nil
}
