package courier

import (
	"net/http"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// scope is the instrumentation scope name for OpenTelemetry.
const scope = "github.com/kroma-labs/courier-go/courier"

// internalConfig holds the assembled executor configuration.
type internalConfig struct {
	// Transport overrides the default HTTP transport when set.
	Transport Transport

	// HTTPClient backs the default transport when no Transport is set.
	HTTPClient *http.Client

	// Logger receives debug output and decode diagnostics.
	// Defaults to a no-op logger.
	Logger zerolog.Logger

	// Debug enables request/response logging.
	Debug bool

	// ServiceName identifies this executor in traces and logs.
	ServiceName string

	// TracerProvider is the tracer provider to use.
	// If not set, uses the global provider via otel.GetTracerProvider().
	TracerProvider trace.TracerProvider

	// MeterProvider is the meter provider to use.
	// If not set, uses the global provider via otel.GetMeterProvider().
	MeterProvider metric.MeterProvider

	// Tracer is the tracer instance created from TracerProvider.
	Tracer trace.Tracer

	// Metrics holds the metric instruments.
	Metrics *metrics
}

func newConfig(opts ...Option) *internalConfig {
	cfg := &internalConfig{
		Logger:         zerolog.Nop(),
		TracerProvider: otel.GetTracerProvider(),
		MeterProvider:  otel.GetMeterProvider(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Transport == nil {
		cfg.Transport = NewHTTPTransport(cfg.HTTPClient)
	}

	// Initialize tracer and metrics after options are applied
	cfg.Tracer = cfg.TracerProvider.Tracer(scope)
	cfg.Metrics, _ = newMetrics(cfg.MeterProvider.Meter(scope))

	return cfg
}

// Option configures an Executor.
type Option func(*internalConfig)

// WithTransport injects the transport used for every call.
//
// Use this to swap the network layer entirely, for example with a
// MockTransport in tests:
//
//	mock := courier.NewMockTransport().StubResponse(200, `{"id":1}`)
//	exec := courier.New(courier.WithTransport(mock))
func WithTransport(t Transport) Option {
	return func(cfg *internalConfig) {
		cfg.Transport = t
	}
}

// WithHTTPClient backs the default transport with a custom
// *http.Client. Ignored when WithTransport is also set.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *internalConfig) {
		cfg.HTTPClient = client
	}
}

// WithLogger sets the logger for debug output and decode diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *internalConfig) {
		cfg.Logger = logger
	}
}

// WithDebug enables request/response logging through the configured
// logger.
func WithDebug(debug bool) Option {
	return func(cfg *internalConfig) {
		cfg.Debug = debug
	}
}

// WithServiceName sets an identifier for this executor in traces and
// debug logs.
func WithServiceName(name string) Option {
	return func(cfg *internalConfig) {
		cfg.ServiceName = name
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(cfg *internalConfig) {
		cfg.TracerProvider = tp
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(cfg *internalConfig) {
		cfg.MeterProvider = mp
	}
}
