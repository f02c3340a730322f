// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ava-labs/vaultvm/consts"
	"github.com/ava-labs/vaultvm/pebble"
	"github.com/ava-labs/vaultvm/server"
	"github.com/ava-labs/vaultvm/trace"
)

// EnvPrefix selects the environment variables read by Load.
// VAULT_HTTP_ADDRESS sets http.address.
const EnvPrefix = "VAULT_"

type Config struct {
	Log LogConfig `json:"log" koanf:"log"`

	// DataDir holds the ledger database.
	DataDir string `json:"dataDir" koanf:"datadir"`
	// Genesis is the path of the genesis file applied to an empty ledger.
	Genesis string `json:"genesis" koanf:"genesis"`

	HTTP   server.Config `json:"http" koanf:"http"`
	Pebble pebble.Config `json:"pebble" koanf:"pebble"`
	Trace  trace.Config  `json:"trace" koanf:"trace"`
}

type LogConfig struct {
	Level string `json:"level" koanf:"level"`
	// Dir enables a rotating log file next to console output.
	Dir        string `json:"dir" koanf:"dir"`
	MaxSize    int    `json:"maxSize" koanf:"maxsize"` // megabytes
	MaxBackups int    `json:"maxBackups" koanf:"maxbackups"`
	MaxAge     int    `json:"maxAge" koanf:"maxage"` // days
	Compress   bool   `json:"compress" koanf:"compress"`
}

func (l LogConfig) GetLevel() (logging.Level, error) {
	return logging.ToLevel(l.Level)
}

func New() *Config {
	return &Config{
		Log: LogConfig{
			Level:      logging.Info.String(),
			MaxSize:    8,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   true,
		},
		DataDir: ".vaultvm",
		HTTP:    server.NewDefaultConfig(),
		Pebble:  pebble.NewDefaultConfig(),
		Trace:   trace.NewDefaultConfig(consts.Name, consts.Version.String()),
	}
}

// Load overlays the YAML (or JSON) file at [path], if any, and then the
// VAULT_ environment on top of the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	transform := func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", transform), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	c := New()
	if err := k.Unmarshal("", c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := c.Log.GetLevel(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "db")
}
