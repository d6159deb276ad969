package agent

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNoChoices is returned when the completion API answers without any choice
var ErrNoChoices = errors.New("completion returned no choices")

// UpstreamError reports a failed completion call: transport failure, timeout,
// non-2xx response, API error body, or an empty choice list.
type UpstreamError struct {
	Provider string
	// StatusCode is the HTTP status of the upstream response, 0 when none was received
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s completion failed (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstreamError reports whether err is or wraps an *UpstreamError
func IsUpstreamError(err error) bool {
	var upstream *UpstreamError
	return errors.As(err, &upstream)
}

// IsRateLimitError checks if the upstream rejected the call for quota or rate reasons.
// An HTTP status, when known, is authoritative; message text is only consulted
// for status-less errors from the Gemini SDK or gRPC.
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	var upstream *UpstreamError
	if errors.As(err, &upstream) && upstream.StatusCode != 0 {
		return upstream.StatusCode == http.StatusTooManyRequests
	}
	// gRPC ResourceExhausted from Google APIs
	if s, ok := status.FromError(err); ok && s.Code() == codes.ResourceExhausted {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Error 429") ||
		strings.Contains(errStr, "RESOURCE_EXHAUSTED") ||
		strings.Contains(errStr, "ResourceExhausted")
}

// IsTimeoutError checks for context deadlines and transport timeouts
func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
