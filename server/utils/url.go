// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package utils holds small request helpers shared by routes and the router.
*/
package utils

import (
	"net/http"
	"net/url"
)

// GetQueryParam retrieves the value of a query parameter by name.
//
// If the parameter is not present, it returns the provided default value or an empty string.
func GetQueryParam(r *http.Request, name string, defaultValue ...string) string {
	v := r.URL.Query().Get(name)
	if v != "" {
		return v
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return ""
}

// GetPathVar retrieves the value of a path variable by name.
//
// If the variable is not present, it returns the provided default value or an empty string.
func GetPathVar(r *http.Request, name string, defaultValue ...string) string {
	v := r.PathValue(name)
	if v != "" {
		return v
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return ""
}

// PreservedQuery returns the non-empty values of names from the request
// query, for carrying over into a redirect target.
func PreservedQuery(r *http.Request, names ...string) url.Values {
	query := r.URL.Query()
	preserved := url.Values{}

	for _, name := range names {
		if v := query.Get(name); v != "" {
			preserved.Set(name, v)
		}
	}

	return preserved
}

// WithQuery returns path with query appended, if any.
func WithQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}

	return path + "?" + query.Encode()
}
