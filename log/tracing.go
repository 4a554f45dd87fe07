package log

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// SetupTracing exports spans to an OTLP/HTTP collector at endpoint, for
// example http://localhost:4318. An empty endpoint keeps the no-op provider.
func SetupTracing(ctx context.Context, endpoint string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to create trace exporter/endpoint:%s/reason:%s", endpoint, err))
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	zap.L().Info(fmt.Sprintf("exporting traces to %s", endpoint))
	return tp.Shutdown, nil
}
