package courier

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// MockTransport is a scripted Transport for testing. It returns a
// stubbed response or error for every send and records each request
// so tests can assert what reached the wire.
type MockTransport struct {
	mu       sync.RWMutex
	resp     *WireResponse
	err      error
	requests []*WireRequest
	sendHook func(*WireRequest)
}

// NewMockTransport creates an empty mock. Sending through it before
// any stub is configured returns an error.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// StubResponse scripts every send to return the given status and body.
func (m *MockTransport) StubResponse(statusCode int, body string) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resp = &WireResponse{
		StatusCode: statusCode,
		Header:     make(http.Header),
		Body:       []byte(body),
	}
	m.err = nil
	return m
}

// StubHeader adds a header to the scripted response. It requires a
// prior StubResponse.
func (m *MockTransport) StubHeader(key, value string) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resp != nil {
		m.resp.Header.Add(key, value)
	}
	return m
}

// StubError scripts every send to fail with the given error.
func (m *MockTransport) StubError(err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	m.resp = nil
	return m
}

// OnSend sets a hook invoked for each request before the stub is
// returned. Useful for capturing details or blocking a send.
func (m *MockTransport) OnSend(fn func(*WireRequest)) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendHook = fn
	return m
}

// Send implements Transport.
func (m *MockTransport) Send(_ context.Context, req *WireRequest) (*WireResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	hook := m.sendHook
	m.mu.Unlock()

	if hook != nil {
		hook(req)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.err != nil {
		return nil, m.err
	}
	if m.resp != nil {
		// Copy so callers cannot mutate the script between sends.
		return &WireResponse{
			StatusCode: m.resp.StatusCode,
			Header:     m.resp.Header.Clone(),
			Body:       append([]byte(nil), m.resp.Body...),
		}, nil
	}
	return nil, errors.New("mock transport: no stub configured for " + req.Method + " " + req.URL)
}

// Requests returns a copy of every request sent through the mock.
func (m *MockTransport) Requests() []*WireRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*WireRequest{}, m.requests...)
}

// SendCount returns how many requests reached the mock.
func (m *MockTransport) SendCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.requests)
}

// LastRequest returns the most recent request, or nil if none.
func (m *MockTransport) LastRequest() *WireRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

// Reset clears all recorded requests and stubs.
func (m *MockTransport) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
	m.resp = nil
	m.err = nil
	m.sendHook = nil
}
