// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"net/http"
	"strconv"

	"codeberg.org/pixivfe/pagenotice/i18n"
)

// ErrorData describes an error page.
type ErrorData struct {
	Title      i18n.MsgKey
	Error      error
	StatusCode int
}

// statusTexts are the translatable status lines of error pages.
var statusTexts = map[int]i18n.MsgKey{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Not Found",
	http.StatusTooManyRequests:     "Too Many Requests",
	http.StatusInternalServerError: "Internal Server Error",
}

func (data ErrorData) statusLine(ctx context.Context) string {
	status, ok := statusTexts[data.StatusCode]
	if !ok {
		status = i18n.MsgKey(http.StatusText(data.StatusCode))
	}

	return strconv.Itoa(data.StatusCode) + " " + status.Tr(ctx)
}

func (data ErrorData) message() string {
	if data.Error != nil {
		return data.Error.Error()
	}

	return http.StatusText(data.StatusCode)
}
