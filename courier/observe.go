package courier

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// metrics holds the metric instruments for request execution.
type metrics struct {
	// requestDuration measures the total call duration in seconds.
	requestDuration metric.Float64Histogram

	// requestErrors counts failed calls by taxonomy kind.
	requestErrors metric.Int64Counter

	// activeRequests tracks the number of in-flight calls.
	activeRequests metric.Int64UpDownCounter
}

// newMetrics creates and registers metric instruments.
func newMetrics(meter metric.Meter) (*metrics, error) {
	m := &metrics{}
	var err error

	m.requestDuration, err = meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	m.requestErrors, err = meter.Int64Counter(
		"http.client.request.errors",
		metric.WithDescription("Number of failed HTTP client requests by error kind"),
	)
	if err != nil {
		return nil, err
	}

	m.activeRequests, err = meter.Int64UpDownCounter(
		"http.client.active_requests",
		metric.WithDescription("Number of in-flight HTTP client requests"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// recordDuration records the elapsed wall time of one call.
func (m *metrics) recordDuration(ctx context.Context, elapsed time.Duration, attrs ...attribute.KeyValue) {
	if m == nil || m.requestDuration == nil {
		return
	}
	m.requestDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attrs...))
}

// recordError counts one failed call under its taxonomy kind.
func (m *metrics) recordError(ctx context.Context, kind Kind, attrs ...attribute.KeyValue) {
	if m == nil || m.requestErrors == nil {
		return
	}
	attrs = append(attrs, attribute.String("error.kind", kind.String()))
	m.requestErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// addActive adjusts the in-flight call gauge.
func (m *metrics) addActive(ctx context.Context, delta int64) {
	if m == nil || m.activeRequests == nil {
		return
	}
	m.activeRequests.Add(ctx, delta)
}
