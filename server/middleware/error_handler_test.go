// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/pixivfe/pagenotice/server/request_context"
)

// createTestRequest creates a test HTTP request with request context.
func createTestRequest(t *testing.T) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)

	return req.WithContext(request_context.WithRequestContext(req.Context(), req, nil))
}

func TestCatchErrorSuccess(t *testing.T) {
	t.Parallel()

	handler := CatchError(func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("X-Test", "yes")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "success"}`))

		return nil
	})

	req := createTestRequest(t)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"status": "success"}`, rr.Body.String())
	assert.Equal(t, "yes", rr.Header().Get("X-Test"))
	assert.NoError(t, request_context.FromRequest(req).RequestError)
}

func TestCatchErrorHandlerError(t *testing.T) {
	t.Parallel()

	testError := errors.New("test handler error")
	handler := CatchError(func(w http.ResponseWriter, _ *http.Request) error {
		_, _ = w.Write([]byte("partial output"))

		return testError
	})

	req := createTestRequest(t)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "partial output")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rr.Body.String()))
	require.NoError(t, err)
	assert.Contains(t, doc.Find("#error-status").Text(), "500")
	assert.Contains(t, doc.Find("#error-message").Text(), "test handler error")

	ctx := request_context.FromRequest(req)
	assert.ErrorIs(t, ctx.RequestError, testError)
	assert.Equal(t, http.StatusInternalServerError, ctx.StatusCode)
}

func TestCatchErrorNotFound(t *testing.T) {
	t.Parallel()

	handler := CatchError(func(w http.ResponseWriter, r *http.Request) error {
		http.NotFound(w, r)

		return nil
	})

	req := createTestRequest(t)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), `id="error-status"`)
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}

func TestCatchErrorHandledErrorStatus(t *testing.T) {
	t.Parallel()

	handler := CatchError(func(w http.ResponseWriter, _ *http.Request) error {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("bad title"))

		return errors.New("bad title")
	})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, createTestRequest(t))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "bad title", rr.Body.String())
}
