// Package telemetry wires OpenTelemetry tracing for the dashboard server.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/unweave/dashboard/internal/logger"
)

// InstrumentationName names the tracer used by dashboard handlers.
const InstrumentationName = "github.com/unweave/dashboard"

// Config controls the OTLP exporter.
type Config struct {
	ServiceName string `yaml:"service_name" json:"service_name"`
	Endpoint    string `yaml:"endpoint"     json:"endpoint"`
	Insecure    bool   `yaml:"insecure"     json:"insecure"`
}

// Provider owns the tracer provider and its shutdown.
type Provider struct {
	tracerProvider trace.TracerProvider
	shutdown       func(ctx context.Context) error
}

// Tracer returns the dashboard tracer, falling back to a noop tracer.
func (p *Provider) Tracer() trace.Tracer {
	if p == nil || p.tracerProvider == nil {
		return noop.NewTracerProvider().Tracer(InstrumentationName)
	}

	return p.tracerProvider.Tracer(InstrumentationName)
}

// Shutdown flushes exporters.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.shutdown == nil {
		return nil
	}

	return p.shutdown(ctx)
}

// Noop returns a provider that records nothing.
func Noop() *Provider {
	return &Provider{
		tracerProvider: noop.NewTracerProvider(),
		shutdown:       func(context.Context) error { return nil },
	}
}

// New configures tracing. An empty endpoint installs a noop provider.
func New(ctx context.Context, cfg Config, log logger.Logger) (*Provider, error) {
	log = logger.OrNoop(log)

	if cfg.Endpoint == "" {
		otel.SetTextMapPropagator(propagation.TraceContext{})
		log.Debug("tracing disabled")

		return Noop(), nil
	}

	clientOpts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		clientOpts = append(clientOpts, otlptracehttp.WithInsecure())
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exp, err := otlptracehttp.New(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("build telemetry resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exp),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("tracing enabled",
		logger.String("endpoint", cfg.Endpoint),
		logger.String("service", cfg.ServiceName),
	)

	return &Provider{
		tracerProvider: tp,
		shutdown:       tp.Shutdown,
	}, nil
}
