// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	DefaultEndpoint = "http://localhost:9411/api/v2/spans"

	exportTimeout = 10 * time.Second
	// Longer than [exportTimeout] so in-flight exports finish first.
	shutdownTimeout = 15 * time.Second
)

type Config struct {
	Enabled bool `json:"enabled" koanf:"enabled"`

	// Fraction of transactions to sample. >= 1 always samples, <= 0 never
	// does.
	TraceSampleRate float64 `json:"traceSampleRate" koanf:"samplerate"`

	// Zipkin collector receiving spans.
	Endpoint string `json:"endpoint" koanf:"endpoint"`

	AppName string `json:"appName" koanf:"appname"`
	Version string `json:"version" koanf:"version"`
}

func NewDefaultConfig(appName string, version string) Config {
	return Config{
		TraceSampleRate: 1,
		Endpoint:        DefaultEndpoint,
		AppName:         appName,
		Version:         version,
	}
}

type tracer struct {
	oteltrace.Tracer

	tp *sdktrace.TracerProvider
}

func (t *tracer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return t.tp.Shutdown(ctx)
}

// New returns a tracer exporting to zipkin, or one that records nothing when
// tracing is disabled.
func New(config Config) (trace.Tracer, error) {
	if !config.Enabled {
		return Noop(config.AppName), nil
	}

	exporter, err := zipkin.New(config.Endpoint)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithExportTimeout(exportTimeout)),
		sdktrace.WithResource(
			resource.NewWithAttributes(
				semconv.SchemaURL,
				attribute.String("version", config.Version),
				semconv.ServiceNameKey.String(config.AppName),
			),
		),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(config.TraceSampleRate)),
	)
	return &tracer{
		Tracer: tp.Tracer(config.AppName),
		tp:     tp,
	}, nil
}
