package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jass-platform/distribution-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors:
// a stable machine-readable code plus a human-readable message.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their code and HTTP status.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<CODE>", "message": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, msg := resolveError(err, log, c)
		_ = c.JSON(status, errorResponse{Error: code, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, statusCode(he.Code), fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic codes.
	switch {
	case errors.Is(err, domain.ErrOrganizationNotFound):
		return http.StatusNotFound, "ORGANIZATION_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrAdminNotFound):
		return http.StatusNotFound, "ADMIN_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrFareNotFound):
		return http.StatusNotFound, "FARE_NOT_FOUND", "fare not found"
	case errors.Is(err, domain.ErrFareCodeExists):
		return http.StatusConflict, "FARE_CODE_EXISTS", "fare code already exists"
	case errors.Is(err, domain.ErrMapping):
		return http.StatusInternalServerError, "MAPPING_ERROR", err.Error()
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, "UPSTREAM_ERROR", "users service request failed"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
}

// statusCode renders an HTTP status as a stable error code, e.g. 404 → NOT_FOUND.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
