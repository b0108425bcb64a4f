package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"cadastro/internal/core/port"
	"cadastro/internal/core/telemetry"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// MetricsPort empty disables the /metrics listener.
	MetricsPort string
	// OTLPEndpoint empty keeps tracing in process without exporting spans.
	OTLPEndpoint string
}

type Container struct {
	TracerProvider     *sdktrace.TracerProvider
	MeterProvider      *sdkmetric.MeterProvider
	PrometheusRegistry *prometheus.Registry
	MetricsServer      *http.Server
	AppMetrics         *telemetry.AppMetrics

	stopSampling context.CancelFunc
}

func NewContainer(ctx context.Context, config Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(config.ServiceName),
		semconv.ServiceVersionKey.String(config.ServiceVersion),
		semconv.DeploymentEnvironmentKey.String(config.Environment),
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := telemetry.NewAppMetrics(registry)

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	tracerOptions := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	}

	if config.OTLPEndpoint != "" {
		otlpExporter, err := otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpoint(config.OTLPEndpoint),
			otlptracegrpc.WithInsecure(),
		)

		if err != nil {
			return nil, err
		}

		tracerOptions = append(tracerOptions, sdktrace.WithBatcher(otlpExporter,
			sdktrace.WithBatchTimeout(time.Second),
		))

		logger.Info("Exporting traces", "endpoint", config.OTLPEndpoint)
	}

	tracerProvider := sdktrace.NewTracerProvider(tracerOptions...)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(time.Second)); err != nil {
		return nil, err
	}

	samplingCtx, stopSampling := context.WithCancel(context.Background())
	appMetrics.StartSystemMetrics(samplingCtx, 15*time.Second)

	container := &Container{
		TracerProvider:     tracerProvider,
		MeterProvider:      meterProvider,
		PrometheusRegistry: registry,
		AppMetrics:         appMetrics,
		stopSampling:       stopSampling,
	}

	if config.MetricsPort != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		container.MetricsServer = &http.Server{
			Addr:         ":" + config.MetricsPort,
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		}

		go func() {
			logger.Info("Metrics server starting", "port", config.MetricsPort)

			if err := container.MetricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Failed to start metrics server", "error", err)
			}
		}()
	}

	return container, nil
}

func (c *Container) Shutdown(ctx context.Context) error {
	c.stopSampling()

	var errs []error

	if err := c.TracerProvider.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}

	if err := c.MeterProvider.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}

	if c.MetricsServer != nil {
		if err := c.MetricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// NewTelemetryProbe returns the probe services and repositories report to.
func (c *Container) NewTelemetryProbe(logger *slog.Logger) port.Telemetry {
	return telemetry.NewOTELProbe(logger, c.AppMetrics)
}
