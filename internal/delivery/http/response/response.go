// Package response defines the JSON envelopes shared by all HTTP handlers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the envelope returned for every failed request. Message is a
// string for business errors and a list of field messages for validation
// failures.
type ErrorBody struct {
	Message any    `json:"message"`
	Error   string `json:"error"`
}

// ListEnvelope wraps a paged collection together with its pagination
// metadata.
type ListEnvelope struct {
	Data any `json:"data"`
	Meta any `json:"meta"`
}

// MessageEnvelope wraps a created resource with a human-readable message.
type MessageEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// JSON writes a success payload as-is.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Error writes the error envelope. The Error field carries the standard
// reason phrase for the status so clients can branch on it without parsing
// the message.
func Error(c echo.Context, statusCode int, message any) error {
	return c.JSON(statusCode, ErrorBody{
		Message: message,
		Error:   http.StatusText(statusCode),
	})
}
