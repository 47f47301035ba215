package courier

import (
	"net/http"
)

// Method is the closed set of HTTP methods a contract may use.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

// Endpoint describes one HTTP call and binds the expected response
// shape R at the type level.
//
// Any type implementing this capability set is accepted by Do and
// Perform; defining a new endpoint type never requires touching the
// executor. Request is the ready-made implementation for ad-hoc use.
//
// Body precedence: a non-empty RawBody is sent verbatim and wins over
// Parameters; Parameters alone are JSON-encoded; with neither, the
// outgoing body is empty.
type Endpoint[R any] interface {
	// EndpointURL returns the absolute URL of the resource. A false
	// second return means the endpoint is absent, which fails the call
	// with ErrInvalidRequest before any transport activity.
	EndpointURL() (string, bool)

	// HTTPMethod returns the method for the call. An empty method is
	// treated as GET.
	HTTPMethod() Method

	// Headers returns the headers to attach. Keys are unique within
	// the map; values are appended to the outgoing request verbatim,
	// never deduplicated against defaults.
	Headers() map[string]string

	// Parameters returns the JSON body fields, used only when RawBody
	// is empty.
	Parameters() map[string]Value

	// RawBody returns a pre-encoded payload to send verbatim.
	RawBody() []byte

	// ResponseShape returns the zero value of the expected response
	// type. It binds R into the method set so Do and Perform can
	// infer the response shape from the contract; the result itself
	// is never read.
	ResponseShape() R
}

// Request is a fluent Endpoint implementation.
//
//	var user User
//	req := courier.NewRequest[User]("https://api.example.com/users/1").
//	    Header("Authorization", "Bearer "+token)
//	user, err := courier.Do(ctx, exec, req)
type Request[R any] struct {
	url     string
	hasURL  bool
	method  Method
	headers map[string]string
	params  map[string]Value
	rawBody []byte
}

// NewRequest creates a GET request for the given absolute URL. An
// empty URL builds a contract with an absent endpoint, which Do
// rejects with ErrInvalidRequest.
func NewRequest[R any](url string) *Request[R] {
	return &Request[R]{
		url:     url,
		hasURL:  url != "",
		method:  MethodGet,
		headers: make(map[string]string),
		params:  make(map[string]Value),
	}
}

// Method sets the HTTP method.
func (r *Request[R]) Method(m Method) *Request[R] {
	r.method = m
	return r
}

// Header sets a single header.
func (r *Request[R]) Header(key, value string) *Request[R] {
	r.headers[key] = value
	return r
}

// WithHeaders sets multiple headers.
func (r *Request[R]) WithHeaders(headers map[string]string) *Request[R] {
	for k, v := range headers {
		r.headers[k] = v
	}
	return r
}

// Param sets a single JSON body field.
func (r *Request[R]) Param(key string, value Value) *Request[R] {
	r.params[key] = value
	return r
}

// WithParams sets multiple JSON body fields.
func (r *Request[R]) WithParams(params map[string]Value) *Request[R] {
	for k, v := range params {
		r.params[k] = v
	}
	return r
}

// Body sets a pre-encoded payload. It takes precedence over any
// parameters set on the request.
func (r *Request[R]) Body(raw []byte) *Request[R] {
	r.rawBody = raw
	return r
}

// EndpointURL implements Endpoint.
func (r *Request[R]) EndpointURL() (string, bool) {
	return r.url, r.hasURL
}

// HTTPMethod implements Endpoint.
func (r *Request[R]) HTTPMethod() Method {
	return r.method
}

// Headers implements Endpoint.
func (r *Request[R]) Headers() map[string]string {
	return r.headers
}

// Parameters implements Endpoint.
func (r *Request[R]) Parameters() map[string]Value {
	return r.params
}

// RawBody implements Endpoint.
func (r *Request[R]) RawBody() []byte {
	return r.rawBody
}

// ResponseShape implements Endpoint.
func (r *Request[R]) ResponseShape() R {
	var zero R
	return zero
}
