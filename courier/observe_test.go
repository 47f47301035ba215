package courier

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// metricdataCollector gathers the instrument names a manual reader saw.
type metricdataCollector struct {
	ResourceMetrics metricdata.ResourceMetrics
}

func (c *metricdataCollector) instrumentNames() []string {
	var names []string
	for _, sm := range c.ResourceMetrics.ScopeMetrics {
		for _, m := range sm.Metrics {
			names = append(names, m.Name)
		}
	}
	return names
}

func TestDo_EmitsClientSpan(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantStatus  codes.Code
		wantErrKind string
	}{
		{
			name:       "given success, then span is ok",
			statusCode: http.StatusOK,
			body:       `{"id":1,"name":"jane"}`,
			wantStatus: codes.Ok,
		},
		{
			name:        "given server failure, then span records the error kind",
			statusCode:  http.StatusInternalServerError,
			body:        "",
			wantStatus:  codes.Error,
			wantErrKind: "server_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := tracetest.NewInMemoryExporter()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
			defer tp.Shutdown(context.Background())

			mock := NewMockTransport().StubResponse(tt.statusCode, tt.body)
			exec := New(
				WithTransport(mock),
				WithTracerProvider(tp),
				WithServiceName("test-service"),
			)

			_, _ = Do(context.Background(), exec, NewRequest[testUser]("https://api.example.com/users/1"))

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			span := spans[0]

			assert.Equal(t, "HTTP GET", span.Name)
			assert.Equal(t, tt.wantStatus, span.Status.Code)
			if tt.wantErrKind != "" {
				assert.Equal(t, tt.wantErrKind, span.Status.Description)
			}

			attrs := make(map[attribute.Key]attribute.Value, len(span.Attributes))
			for _, kv := range span.Attributes {
				attrs[kv.Key] = kv.Value
			}
			assert.Equal(t, "GET", attrs["http.request.method"].AsString())
			assert.Equal(t, "https://api.example.com/users/1", attrs["url.full"].AsString())
			assert.Equal(t, "test-service", attrs["http.client.name"].AsString())
			assert.NotEmpty(t, attrs["request.id"].AsString())
			assert.Equal(t, int64(tt.statusCode), attrs["http.response.status_code"].AsInt64())
		})
	}
}

func TestDo_NoSpanForMissingEndpoint(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())

	exec := New(WithTransport(NewMockTransport()), WithTracerProvider(tp))

	_, err := Do(context.Background(), exec, NewRequest[testUser](""))

	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Empty(t, exporter.GetSpans(), "a request that never forms produces no span")
}

func TestDo_RecordsMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	mock := NewMockTransport().StubResponse(http.StatusServiceUnavailable, "")
	exec := New(WithTransport(mock), WithMeterProvider(mp))

	_, err := Do(context.Background(), exec, NewRequest[testUser]("https://api.example.com/users/1"))
	require.ErrorIs(t, err, ErrServerError)

	var rm metricdataCollector
	require.NoError(t, reader.Collect(context.Background(), &rm.ResourceMetrics))

	names := rm.instrumentNames()
	assert.Contains(t, names, "http.client.request.duration")
	assert.Contains(t, names, "http.client.request.errors")
	assert.Contains(t, names, "http.client.active_requests")
}
