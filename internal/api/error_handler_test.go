package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jass-platform/distribution-service/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.ErrOrganizationNotFound, http.StatusNotFound, "ORGANIZATION_NOT_FOUND"},
		{domain.ErrAdminNotFound, http.StatusNotFound, "ADMIN_NOT_FOUND"},
		{domain.ErrFareNotFound, http.StatusNotFound, "FARE_NOT_FOUND"},
		{domain.ErrFareCodeExists, http.StatusConflict, "FARE_CODE_EXISTS"},
		{domain.ErrMapping, http.StatusInternalServerError, "MAPPING_ERROR"},
		{domain.ErrUpstream, http.StatusBadGateway, "UPSTREAM_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			status, body := renderError(t, tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if body.Error != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Error, tt.wantCode)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainErrorStillMapped(t *testing.T) {
	err := fmt.Errorf("%w: org-404", domain.ErrOrganizationNotFound)
	status, body := renderError(t, err)
	if status != http.StatusNotFound || body.Error != "ORGANIZATION_NOT_FOUND" {
		t.Errorf("got (%d, %q), want (404, ORGANIZATION_NOT_FOUND)", status, body.Error)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	status, body := renderError(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if body.Error != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", body.Error)
	}
	if body.Message != "route not found" {
		t.Errorf("message = %q, want %q", body.Message, "route not found")
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	status, body := renderError(t, fmt.Errorf("mongo: connection reset"))
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
	if body.Error != "INTERNAL_ERROR" {
		t.Errorf("code = %q, want INTERNAL_ERROR", body.Error)
	}
	if body.Message == "mongo: connection reset" {
		t.Error("internal error detail leaked to the client")
	}
}
