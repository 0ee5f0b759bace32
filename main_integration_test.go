// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

//go:build integration

/*
To run these tests, specify `-tags=integration` when running `go test`.
*/
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"testing"
	"time"
)

const (
	// Server configuration constants.
	host      = "127.0.0.1:8282"
	authority = "http://127.0.0.1:8282"

	// Polling constants.
	retryCount  = 10
	dialTimeout = 250 * time.Millisecond
)

// httpTestCase defines a test case.
type httpTestCase struct {
	URL                string
	ExpectedStatusCode int
}

// TestMain is used for global setup and teardown.
//
// It starts the server and waits for it to be available before running tests.
func TestMain(m *testing.M) {
	_ = os.Setenv("PAGENOTICE_HOST", "127.0.0.1")
	_ = os.Setenv("PAGENOTICE_PORT", "8282")
	_ = os.Setenv("PAGENOTICE_CONFIGFILE", "./testdata-missing-config.yaml")

	go func() {
		if err := run(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for the server.
	if !waitForServerReady() {
		log.Fatalf("Server did not start in time")
	}

	os.Exit(m.Run())
}

// waitForServerReady polls the server until it's available or the retries are exhausted.
func waitForServerReady() bool {
	for range retryCount {
		conn, err := net.DialTimeout("tcp", host, dialTimeout)
		if err == nil {
			_ = conn.Close()

			return true // Server is up.
		}

		time.Sleep(dialTimeout)
	}

	return false
}

// TestBasicAllRoutes tests all basic routes of the server.
func TestBasicAllRoutes(t *testing.T) {
	t.Parallel()

	testCases := []httpTestCase{
		{URL: "/", ExpectedStatusCode: http.StatusFound},
		{URL: "/wiki/Main_Page", ExpectedStatusCode: http.StatusOK},
		{URL: "/wiki/Main_Page?action=edit", ExpectedStatusCode: http.StatusOK},
		{URL: "/wiki/File:Cat.png", ExpectedStatusCode: http.StatusOK},
		{URL: "/wiki/File:Cat.png?action=edit", ExpectedStatusCode: http.StatusOK},
		{URL: "/wiki/User:Example/Sandbox", ExpectedStatusCode: http.StatusOK},
		{URL: "/wiki/Does_not_exist", ExpectedStatusCode: http.StatusNotFound},
		{URL: "/wiki/Special:Search", ExpectedStatusCode: http.StatusNotFound},
		{URL: "/wiki/Main_Page?action=history", ExpectedStatusCode: http.StatusBadRequest},
		{URL: "/about", ExpectedStatusCode: http.StatusOK},
		{URL: "/css/site.css", ExpectedStatusCode: http.StatusOK},
		{URL: "/nowhere", ExpectedStatusCode: http.StatusNotFound},
	}

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("GET %s", tc.URL), func(t *testing.T) {
			t.Parallel()

			req, err := http.NewRequestWithContext(context.TODO(), http.MethodGet, authority+tc.URL, nil)
			if err != nil {
				t.Fatalf("Failed to create request: %v", err)
			}

			resp, err := client.Do(req)
			if err != nil {
				t.Fatalf("Failed to execute request: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.ExpectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.ExpectedStatusCode, resp.StatusCode)
			}
		})
	}
}
