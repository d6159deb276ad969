package handler

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/JulienMartel/old-binder/internal/agent"
	"github.com/JulienMartel/old-binder/internal/logging"
	"github.com/JulienMartel/old-binder/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	CodeUpstreamRateLimited = "UPSTREAM_RATE_LIMITED"
	CodeUpstreamTimeout     = "UPSTREAM_TIMEOUT"
	CodeUpstreamError       = "UPSTREAM_ERROR"
)

const requestIDKey = middleware.RequestIDKey

// FieldError describes one failed validation rule on the request body
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error": message,
		"code":  code,
	})
}

// writeBindError answers 400 for a body that is not JSON or misses a required field
func writeBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, FieldError{Field: jsonFieldName(fe.Field()), Rule: fe.Tag()})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Invalid request: missing required fields",
			"code":   CodeInvalidRequest,
			"fields": fields,
		})
		return
	}

	writeError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid request: body must be a JSON object")
}

func writeUnavailable(c *gin.Context) {
	writeError(c, http.StatusServiceUnavailable, CodeServiceUnavailable, "Completion service is not available")
}

// writeUpstreamError maps a completion failure to 504, 429 or 502
func writeUpstreamError(c *gin.Context, operation string, err error) {
	logging.Error().
		Err(err).
		Str("request_id", c.GetString(requestIDKey)).
		Str("operation", operation).
		Msg("Completion failed")

	switch {
	case agent.IsTimeoutError(err):
		writeError(c, http.StatusGatewayTimeout, CodeUpstreamTimeout, "The completion service timed out. Please try again.")
	case agent.IsRateLimitError(err):
		writeError(c, http.StatusTooManyRequests, CodeUpstreamRateLimited, "The completion service is rate limited. Please try again later.")
	default:
		writeError(c, http.StatusBadGateway, CodeUpstreamError, "Failed to get a completion. Please try again.")
	}
}

// jsonFieldName turns a struct field name into its camelCase JSON key
func jsonFieldName(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToLower(r)) + field[size:]
}
