// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger writes [prefix] logs to stderr and, if [cfg.Dir] is set, to a
// rotating file named after [prefix].
func NewLogger(prefix string, cfg LogConfig) (logging.Logger, error) {
	level, err := cfg.GetLevel()
	if err != nil {
		return nil, err
	}
	cores := []logging.WrappedCore{
		logging.NewWrappedCore(level, os.Stderr, logging.Colors.ConsoleEncoder()),
	}
	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, err
		}
		writer := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, prefix+".log"),
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		cores = append(cores, logging.NewWrappedCore(level, writer, logging.Plain.FileEncoder()))
	}
	return logging.NewLogger(prefix, cores...), nil
}
