package courier

import (
	"time"

	"github.com/rs/zerolog"
)

// logRequest logs an outgoing wire request when debug is enabled.
func logRequest(logger zerolog.Logger, requestID string, req *WireRequest) {
	evt := logger.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", req.URL).
		Int("body_bytes", len(req.Body))
	for k, values := range req.Header {
		for _, v := range values {
			evt = evt.Str("header."+k, v)
		}
	}
	evt.Msg("sending request")
}

// logResponse logs a received wire response when debug is enabled.
func logResponse(logger zerolog.Logger, requestID string, resp *WireResponse, elapsed time.Duration) {
	logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Int("body_bytes", len(resp.Body)).
		Dur("elapsed", elapsed).
		Msg("received response")
}

// logDecodeFailure is the diagnostic side channel for decode errors.
// The structural detail (field path, expected vs. actual) stays here;
// the error returned to the caller is always the fixed ErrDecodingError.
func logDecodeFailure(logger zerolog.Logger, requestID, targetType string, cause error) {
	logger.Warn().
		Str("request_id", requestID).
		Str("target_type", targetType).
		Err(cause).
		Msg("response decoding failed")
}

// logTransportFailure records the underlying transport error that was
// mapped into the taxonomy.
func logTransportFailure(logger zerolog.Logger, requestID string, kind Kind, cause error) {
	logger.Warn().
		Str("request_id", requestID).
		Str("kind", kind.String()).
		Err(cause).
		Msg("transport failure")
}
