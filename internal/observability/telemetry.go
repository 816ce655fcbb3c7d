package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/annel0/voxel-world/internal/logging"
)

// ShutdownFunc завершает работу TracerProvider, выгружая накопленные спаны
type ShutdownFunc func(context.Context) error

// InitTelemetry настраивает OTLP экспортер и устанавливает глобальный TracerProvider.
// Возвращает функцию shutdown, которую нужно вызвать при завершении приложения.
func InitTelemetry(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	// OTLP HTTP экспортер (по умолчанию localhost:4318, OTEL_EXPORTER_OTLP_ENDPOINT)
	exp, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	shutdown, err := InstallExporter(ctx, serviceName, exp, trace.WithBatcher(exp))
	if err != nil {
		return nil, err
	}
	logging.Info("OpenTelemetry инициализирован (OTLP, service=%s)", serviceName)
	return shutdown, nil
}

// InstallExporter устанавливает глобальный TracerProvider с заданным экспортером.
// opts позволяют выбрать синхронную или пакетную отправку спанов.
func InstallExporter(ctx context.Context, serviceName string, exp trace.SpanExporter, opts ...trace.TracerProviderOption) (ShutdownFunc, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, err
	}

	if len(opts) == 0 {
		opts = []trace.TracerProviderOption{trace.WithSyncer(exp)}
	}
	opts = append(opts, trace.WithResource(res))

	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}
	return shutdown, nil
}
