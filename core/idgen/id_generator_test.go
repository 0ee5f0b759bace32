// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 4, 13, 14, 15, 0, time.UTC)

	parts := strings.Split(MakeAt(now), "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "131415", parts[0])
	assert.Len(t, parts[2], 4, "3 bytes of entropy encode to 4 characters")
}

func TestMakeUnique(t *testing.T) {
	t.Parallel()

	now := time.Now()
	seen := make(map[string]bool)

	for range 1000 {
		id := MakeAt(now)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
