// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"encoding/base64"
	"testing"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanizeSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512", humanizeSize(512))
	assert.Equal(t, "1.50K", humanizeSize(1536))
	assert.Equal(t, "2.00M", humanizeSize(2*bytesInMB))
	assert.Equal(t, "1.00G", humanizeSize(bytesInGB))
}

func TestSpanRegistersServerTimingMetric(t *testing.T) {
	t.Parallel()

	var header servertiming.Header

	ctx := servertiming.NewContext(context.Background(), &header)

	span := Span{Destination: ToHooks, Method: "view", URL: "/wiki/Main_Page"}
	span.Begin(ctx)
	span.End()
	span.End()

	require.Len(t, header.Metrics, 1)

	metric := header.Metrics[0]
	assert.Equal(t, "hooks$view$"+base64.RawURLEncoding.EncodeToString([]byte("/wiki/Main_Page")), metric.Name)
	assert.Equal(t, span.Duration(), metric.Duration)
	assert.Contains(t, metric.Extra, "start")
}

func TestSpanWithoutServerTiming(t *testing.T) {
	t.Parallel()

	span := Span{Destination: ToUser}
	span.Begin(context.Background())
	span.End()

	assert.Nil(t, span.metric)
	assert.GreaterOrEqual(t, int64(span.Duration()), int64(0))
}
