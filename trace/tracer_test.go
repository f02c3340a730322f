// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledTracer(t *testing.T) {
	require := require.New(t)

	tracer, err := New(NewDefaultConfig("vaultvm", "v0.0.1"))
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "test")
	require.False(span.IsRecording())
	span.End()
	require.NoError(tracer.Close())
}

func TestEnabledTracer(t *testing.T) {
	require := require.New(t)

	cfg := NewDefaultConfig("vaultvm", "v0.0.1")
	cfg.Enabled = true
	tracer, err := New(cfg)
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "test")
	require.True(span.IsRecording())
	span.End()
}
