package courier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Executor runs endpoint contracts against a Transport and maps every
// failure into the error taxonomy.
//
// An Executor holds no mutable state between calls; the only shared
// reference is its Transport, which must be safe for concurrent use.
// Any number of Do or Perform calls may run simultaneously.
//
//	exec := courier.New(
//	    courier.WithServiceName("billing"),
//	)
//	invoice, err := courier.Do(ctx, exec, courier.NewRequest[Invoice](url))
type Executor struct {
	config *internalConfig
}

// New creates an Executor. Without options it uses an HTTP transport
// with default timeouts, a no-op logger, and the global OpenTelemetry
// providers.
func New(opts ...Option) *Executor {
	return &Executor{config: newConfig(opts...)}
}

// Do executes the contract synchronously and returns the decoded
// response or exactly one taxonomy error.
//
// The pipeline per call: resolve the endpoint, build the wire request,
// invoke the transport, interpret the status code, decode the body.
// Every failure at any stage maps to one Kind before it is returned;
// the only exception is the caller's own context error, which is
// passed through so cancellation remains distinguishable.
func Do[R any](ctx context.Context, x *Executor, ep Endpoint[R]) (R, error) {
	var zero R
	cfg := x.config
	requestID := uuid.NewString()

	endpoint, ok := ep.EndpointURL()
	if !ok || endpoint == "" {
		cfg.Metrics.recordError(ctx, KindInvalidRequest)
		return zero, ErrInvalidRequest
	}

	method := ep.HTTPMethod()
	if method == "" {
		method = MethodGet
	}

	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", string(method)),
		attribute.String("url.full", endpoint),
		attribute.String("request.id", requestID),
	}
	if cfg.ServiceName != "" {
		attrs = append(attrs, attribute.String("http.client.name", cfg.ServiceName))
	}

	ctx, span := cfg.Tracer.Start(ctx, "HTTP "+string(method),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	wire, err := buildWireRequest[R](ep, endpoint, method)
	if err != nil {
		cfg.Logger.Warn().
			Str("request_id", requestID).
			Err(err).
			Msg("parameter encoding failed")
		return zero, fail(ctx, span, cfg, ErrEncodingError)
	}

	if cfg.Debug {
		logRequest(cfg.Logger, requestID, wire)
	}

	cfg.Metrics.addActive(ctx, 1)
	start := time.Now()
	resp, err := cfg.Transport.Send(ctx, wire)
	elapsed := time.Since(start)
	cfg.Metrics.addActive(ctx, -1)

	if err != nil {
		cfg.Metrics.recordDuration(ctx, elapsed, attribute.String("http.request.method", string(method)))
		if ctxErr := ctx.Err(); ctxErr != nil {
			span.SetStatus(codes.Error, "cancelled")
			return zero, ctxErr
		}
		if isConnectivityError(err) {
			logTransportFailure(cfg.Logger, requestID, KindNoConnectivity, err)
			return zero, fail(ctx, span, cfg, ErrNoConnectivity)
		}
		logTransportFailure(cfg.Logger, requestID, KindUnknown, err)
		return zero, fail(ctx, span, cfg, ErrUnknown)
	}

	cfg.Metrics.recordDuration(ctx, elapsed,
		attribute.String("http.request.method", string(method)),
		attribute.Int("http.response.status_code", resp.StatusCode),
	)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	// A cancelled call must not decode, even if the transport raced a
	// response back first.
	if ctxErr := ctx.Err(); ctxErr != nil {
		span.SetStatus(codes.Error, "cancelled")
		return zero, ctxErr
	}

	if cfg.Debug {
		logResponse(cfg.Logger, requestID, resp, elapsed)
	}

	switch {
	case resp.StatusCode < 100 || resp.StatusCode > 599:
		return zero, fail(ctx, span, cfg, ErrUnexpectedResponse)
	case resp.StatusCode == http.StatusUnauthorized:
		return zero, fail(ctx, span, cfg, ErrAuthenticationFailure)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return zero, fail(ctx, span, cfg, ServerError(resp.StatusCode))
	}

	// An empty 2xx body decodes to the zero value of R.
	var out R
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &out); err != nil {
			logDecodeFailure(cfg.Logger, requestID, fmt.Sprintf("%T", out), err)
			return zero, fail(ctx, span, cfg, ErrDecodingError)
		}
	}

	span.SetStatus(codes.Ok, "")
	return out, nil
}

// fail marks the span, counts the error, and returns it unchanged.
func fail(ctx context.Context, span trace.Span, cfg *internalConfig, err *Error) *Error {
	span.SetStatus(codes.Error, err.Kind().String())
	cfg.Metrics.recordError(ctx, err.Kind())
	return err
}

// buildWireRequest evaluates the contract into a complete wire-level
// request. It only fails when parameter encoding fails; no transport
// activity happens here.
func buildWireRequest[R any](ep Endpoint[R], endpoint string, method Method) (*WireRequest, error) {
	header := make(http.Header)
	for k, v := range ep.Headers() {
		// Appended, not deduplicated: a contract header never
		// silently replaces one already present.
		header.Add(k, v)
	}

	var body []byte
	switch {
	case len(ep.RawBody()) > 0:
		body = ep.RawBody()
	case len(ep.Parameters()) > 0:
		encoded, err := json.Marshal(ep.Parameters())
		if err != nil {
			return nil, err
		}
		body = encoded
		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", "application/json")
		}
	}

	return &WireRequest{
		Method: string(method),
		URL:    endpoint,
		Header: header,
		Body:   body,
	}, nil
}

// IsTaxonomyError reports whether err is one of the closed set of
// errors this package produces.
func IsTaxonomyError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
