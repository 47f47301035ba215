package courier

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Descriptions(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "given invalid request, then fixed description",
			err:  ErrInvalidRequest,
			want: "invalid request: no endpoint was provided",
		},
		{
			name: "given encoding error, then fixed description",
			err:  ErrEncodingError,
			want: "the request parameters could not be encoded",
		},
		{
			name: "given decoding error, then fixed description",
			err:  ErrDecodingError,
			want: "the server response could not be decoded",
		},
		{
			name: "given server error, then description interpolates status",
			err:  ServerError(503),
			want: "the server responded with status 503",
		},
		{
			name: "given unexpected response, then fixed description",
			err:  ErrUnexpectedResponse,
			want: "the server returned an unexpected response",
		},
		{
			name: "given no connectivity, then fixed description",
			err:  ErrNoConnectivity,
			want: "no network connectivity, check your connection and try again",
		},
		{
			name: "given authentication failure, then credential-retry message",
			err:  ErrAuthenticationFailure,
			want: "authentication failed, please sign in again",
		},
		{
			name: "given unknown error, then fixed description",
			err:  ErrUnknown,
			want: "an unknown error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_KindMatching(t *testing.T) {
	assert.ErrorIs(t, ServerError(404), ErrServerError)
	assert.ErrorIs(t, ServerError(500), ErrServerError)
	assert.NotErrorIs(t, ServerError(500), ErrAuthenticationFailure)
	assert.NotErrorIs(t, ErrDecodingError, ErrEncodingError)
	assert.NotErrorIs(t, errors.New("boom"), ErrUnknown)

	// Matching survives wrapping.
	wrapped := fmt.Errorf("fetch user: %w", ServerError(404))
	assert.ErrorIs(t, wrapped, ErrServerError)
}

func TestError_StatusCode(t *testing.T) {
	assert.Equal(t, 404, ServerError(404).StatusCode())
	assert.Equal(t, 0, ErrDecodingError.StatusCode())
}

func TestError_Kind(t *testing.T) {
	assert.Equal(t, KindServerError, ServerError(500).Kind())
	assert.Equal(t, KindNoConnectivity, ErrNoConnectivity.Kind())
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInvalidRequest, "invalid_request"},
		{KindEncodingError, "encoding_error"},
		{KindDecodingError, "decoding_error"},
		{KindServerError, "server_error"},
		{KindUnexpectedResponse, "unexpected_response"},
		{KindNoConnectivity, "no_connectivity"},
		{KindAuthenticationFailure, "authentication_failure"},
		{KindUnknown, "unknown"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}
