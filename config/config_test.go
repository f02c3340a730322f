// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require := require.New(t)

	c, err := Load("")
	require.NoError(err)
	require.Equal(New(), c)

	level, err := c.Log.GetLevel()
	require.NoError(err)
	require.Equal(logging.Info, level)
}

func TestLoadFileAndEnv(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(os.WriteFile(path, []byte(`
log:
  level: debug
datadir: /tmp/vault
genesis: /tmp/genesis.json
http:
  address: 0.0.0.0:9000
  readtimeout: 5s
pebble:
  sync: false
`), 0o600))
	t.Setenv("VAULT_HTTP_ADDRESS", "127.0.0.1:9999")
	t.Setenv("VAULT_TRACE_ENABLED", "true")

	c, err := Load(path)
	require.NoError(err)
	require.Equal("debug", c.Log.Level)
	require.Equal("/tmp/vault", c.DataDir)
	require.Equal(filepath.Join("/tmp/vault", "db"), c.DatabasePath())
	require.Equal("/tmp/genesis.json", c.Genesis)
	require.Equal("127.0.0.1:9999", c.HTTP.Address)
	require.Equal(5*time.Second, c.HTTP.ReadTimeout)
	require.False(c.Pebble.Sync)
	require.True(c.Trace.Enabled)

	// Untouched values keep their defaults.
	require.Equal(New().Pebble.CacheSize, c.Pebble.CacheSize)
	require.Equal(New().HTTP.WriteTimeout, c.HTTP.WriteTimeout)
}

func TestLoadInvalidLevel(t *testing.T) {
	t.Setenv("VAULT_LOG_LEVEL", "loud")
	_, err := Load("")
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewLoggerWithFile(t *testing.T) {
	require := require.New(t)

	cfg := New().Log
	cfg.Dir = t.TempDir()
	log, err := NewLogger("vault", cfg)
	require.NoError(err)
	log.Info("hello")
	log.Stop()

	_, err = os.Stat(filepath.Join(cfg.Dir, "vault.log"))
	require.NoError(err)
}
