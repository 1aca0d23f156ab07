package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"travel/internal/domain"
	"travel/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads. Detail carries the human readable
// message; clients of the original API read only that field.
type ErrorResponse struct {
	Detail    string `json:"detail"`
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Detail:    message,
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	default:
		attrs := []any{
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		}
		if cause := errors.Unwrap(err); cause != nil {
			attrs = append(attrs, slog.String("cause", cause.Error()))
		}
		slog.ErrorContext(c.Request.Context(), "request failed", attrs...)
		respondError(c, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}
