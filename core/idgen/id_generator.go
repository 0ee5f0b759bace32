// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package idgen makes short request identifiers.
*/
package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"sync/atomic"
	"time"
)

const sequenceBase = 36

var sequence atomic.Uint32

// Make makes a short ID from the wall clock time of day, a per-process
// sequence number and 3 bytes of entropy.
//
// IDs made by one process in the same second differ in their sequence part.
func Make() string {
	return MakeAt(time.Now())
}

// MakeAt is Make with an explicit clock reading.
func MakeAt(t time.Time) string {
	entropy := [3]byte{'a', 'a', 'a'}

	_, _ = rand.Read(entropy[:])

	seq := strconv.FormatUint(uint64(sequence.Add(1)), sequenceBase)

	return maketime(t) + "-" + seq + "-" + base64.RawURLEncoding.EncodeToString(entropy[:])
}

func maketime(t time.Time) string {
	return t.Format("150405")
}
