// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Config struct {
	Address           string        `json:"address" koanf:"address"`
	AllowedOrigins    []string      `json:"allowedOrigins" koanf:"allowedorigins"`
	ReadTimeout       time.Duration `json:"readTimeout" koanf:"readtimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" koanf:"readheadertimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" koanf:"writetimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" koanf:"idletimeout"`
	ShutdownTimeout   time.Duration `json:"shutdownTimeout" koanf:"shutdowntimeout"`
}

func NewDefaultConfig() Config {
	return Config{
		Address:           "127.0.0.1:9650",
		AllowedOrigins:    []string{"*"},
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Server maintains the HTTP router. Every route is served with CORS and gzip.
type Server struct {
	log logging.Logger
	cfg Config

	router *mux.Router
	srv    *http.Server
}

func New(log logging.Logger, cfg Config) *Server {
	router := mux.NewRouter()
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
	}).Handler(router)
	handler := gziphandler.GzipHandler(corsHandler)

	log.Info("API created",
		zap.Strings("allowedOrigins", cfg.AllowedOrigins),
	)
	return &Server{
		log:    log,
		cfg:    cfg,
		router: router,
		srv: &http.Server{
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
	}
}

// AddRoute registers [handler] at [endpoint].
func (s *Server) AddRoute(endpoint string, handler http.Handler) {
	s.log.Info("adding route",
		zap.String("endpoint", endpoint),
	)
	s.router.Handle(endpoint, handler)
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Dispatch serves on [listener] until Shutdown is called.
func (s *Server) Dispatch(listener net.Listener) error {
	s.log.Info("serving API",
		zap.Stringer("address", listener.Addr()),
	)
	err := s.srv.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	err := s.srv.Shutdown(ctx)
	cancel()

	// If shutdown times out, make sure the server is still shutdown.
	_ = s.srv.Close()
	return err
}
