package courier

import (
	"fmt"
)

// Kind identifies one of the failure categories a request can end in.
//
// The set is closed: every failure produced by this package maps to
// exactly one Kind, so callers can switch over it exhaustively instead
// of inspecting transport or decoder internals.
type Kind int

const (
	// KindUnknown covers failures not recognized as any other kind.
	KindUnknown Kind = iota

	// KindInvalidRequest means the contract could not produce a request,
	// typically because the endpoint URL is missing. No network call
	// was made.
	KindInvalidRequest

	// KindEncodingError means the request parameters could not be
	// serialized into a body. No network call was made.
	KindEncodingError

	// KindDecodingError means the response body did not match the
	// expected shape. Structural detail is logged, never carried here.
	KindDecodingError

	// KindServerError means the server answered with a status outside
	// 2xx (and not 401). The status code is preserved on the error.
	KindServerError

	// KindUnexpectedResponse means the response carried no valid HTTP
	// status and could not be interpreted.
	KindUnexpectedResponse

	// KindNoConnectivity means the transport reported a network-level
	// failure such as a refused connection or failed DNS lookup.
	KindNoConnectivity

	// KindAuthenticationFailure means the server answered 401.
	KindAuthenticationFailure
)

// String returns the stable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindEncodingError:
		return "encoding_error"
	case KindDecodingError:
		return "decoding_error"
	case KindServerError:
		return "server_error"
	case KindUnexpectedResponse:
		return "unexpected_response"
	case KindNoConnectivity:
		return "no_connectivity"
	case KindAuthenticationFailure:
		return "authentication_failure"
	default:
		return "unknown"
	}
}

// Error is the only error type that crosses the executor boundary.
//
// Each value belongs to exactly one Kind and carries a fixed,
// display-ready message. Underlying causes are never wrapped into the
// value; diagnostics go to the configured logger instead.
//
// Match on kind with errors.Is:
//
//	_, err := courier.Do(ctx, exec, req)
//	if errors.Is(err, courier.ErrAuthenticationFailure) {
//	    promptForCredentials()
//	}
type Error struct {
	kind   Kind
	status int
}

// Sentinel values for each failure kind. ServerError values match
// ErrServerError under errors.Is regardless of their status code.
var (
	ErrInvalidRequest        = &Error{kind: KindInvalidRequest}
	ErrEncodingError         = &Error{kind: KindEncodingError}
	ErrDecodingError         = &Error{kind: KindDecodingError}
	ErrServerError           = &Error{kind: KindServerError}
	ErrUnexpectedResponse    = &Error{kind: KindUnexpectedResponse}
	ErrNoConnectivity        = &Error{kind: KindNoConnectivity}
	ErrAuthenticationFailure = &Error{kind: KindAuthenticationFailure}
	ErrUnknown               = &Error{kind: KindUnknown}
)

// ServerError returns the taxonomy error for a non-2xx, non-401 status.
func ServerError(statusCode int) *Error {
	return &Error{kind: KindServerError, status: statusCode}
}

// Error returns the fixed description for the kind. ServerError
// interpolates the status code; nothing else varies per occurrence.
func (e *Error) Error() string {
	switch e.kind {
	case KindInvalidRequest:
		return "invalid request: no endpoint was provided"
	case KindEncodingError:
		return "the request parameters could not be encoded"
	case KindDecodingError:
		return "the server response could not be decoded"
	case KindServerError:
		return fmt.Sprintf("the server responded with status %d", e.status)
	case KindUnexpectedResponse:
		return "the server returned an unexpected response"
	case KindNoConnectivity:
		return "no network connectivity, check your connection and try again"
	case KindAuthenticationFailure:
		return "authentication failed, please sign in again"
	default:
		return "an unknown error occurred"
	}
}

// Kind returns the failure category of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// StatusCode returns the server status carried by a ServerError, or
// zero for every other kind.
func (e *Error) StatusCode() int {
	return e.status
}

// Is matches errors of the same kind, so errors.Is(err, ErrServerError)
// holds for any status code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.kind == e.kind
}
