package courier

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"
)

// defaultTimeout bounds the full request lifecycle of the default
// HTTP transport, including connect, TLS, and body read.
const defaultTimeout = 15 * time.Second

// WireRequest is the fully-formed request handed to a Transport.
// The executor evaluates the contract completely before building one;
// a transport never sees a partial request.
type WireRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// WireResponse is the raw result of a transport exchange: the body
// byte-for-byte plus the status and headers needed to interpret it.
type WireResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs one byte-level HTTP exchange.
//
// Implementations must not interpret status codes and must not decode
// the body; both judgments belong to the executor. They must be safe
// for concurrent use, since one Transport backs every in-flight call
// of an Executor.
//
// HTTPTransport is the production implementation; MockTransport is a
// scripted fake for tests.
type Transport interface {
	Send(ctx context.Context, req *WireRequest) (*WireResponse, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *WireRequest) (*WireResponse, error)

// Send implements Transport.
func (f TransportFunc) Send(ctx context.Context, req *WireRequest) (*WireResponse, error) {
	return f(ctx, req)
}

// HTTPTransport is the default Transport over net/http.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates a transport backed by the given client.
// A nil client gets a default with a 15s lifecycle timeout.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPTransport{client: client}
}

// Send executes the exchange and returns the response verbatim. The
// body is fully read and the connection released before returning.
func (t *HTTPTransport) Send(ctx context.Context, req *WireRequest) (*WireResponse, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for k, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	return &WireResponse{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}, nil
}

// isConnectivityError reports whether a transport failure indicates
// the network itself is unavailable, as opposed to any other cause.
// Context cancellation is never a connectivity failure.
func isConnectivityError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.ENETDOWN) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}

	// Fallback for wrapped errors from custom transports that lose
	// their original type.
	return containsConnectivityPattern(err)
}

func containsConnectivityPattern(err error) bool {
	msg := strings.ToLower(err.Error())
	patterns := []string{
		"connection refused",
		"connection reset",
		"no such host",
		"network is down",
		"network is unreachable",
		"no route to host",
		"i/o timeout",
		"broken pipe",
	}
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
