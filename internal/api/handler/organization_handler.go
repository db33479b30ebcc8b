package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jass-platform/distribution-service/internal/core/ports"
)

// OrganizationHandler exposes the users-service gateway over HTTP.
// The handlers are thin: all fault handling and normalization lives in the
// gateway; domain errors propagate to the central error handler.
type OrganizationHandler struct {
	service ports.OrganizationService
}

func NewOrganizationHandler(service ports.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// ListAdmins handles GET /api/organizations/:organizationId/admins.
func (h *OrganizationHandler) ListAdmins(c echo.Context) error {
	admins, err := h.service.ListAuthorizedAdmins(c.Request().Context(), c.Param("organizationId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

// IsAuthorizedAdmin handles GET /api/organizations/:organizationId/admins/:userId/authorized.
// Always 200 with a bare boolean body: failures answer false, never an error.
func (h *OrganizationHandler) IsAuthorizedAdmin(c echo.Context) error {
	authorized := h.service.IsAuthorizedAdmin(c.Request().Context(), c.Param("organizationId"), c.Param("userId"))
	return c.JSON(http.StatusOK, authorized)
}

// GetAdmin handles GET /api/organizations/:organizationId/admins/:adminId.
func (h *OrganizationHandler) GetAdmin(c echo.Context) error {
	admin, err := h.service.GetAdminByID(c.Request().Context(), c.Param("organizationId"), c.Param("adminId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}

// OrganizationExists handles GET /api/organizations/:organizationId/exists.
// Same boolean contract as IsAuthorizedAdmin.
func (h *OrganizationHandler) OrganizationExists(c echo.Context) error {
	exists := h.service.OrganizationExists(c.Request().Context(), c.Param("organizationId"))
	return c.JSON(http.StatusOK, exists)
}

// ListUsers handles GET /api/organizations/:organizationId/users.
// Records pass through exactly as the upstream produced them.
func (h *OrganizationHandler) ListUsers(c echo.Context) error {
	records, err := h.service.ListOrganizationUsers(c.Request().Context(), c.Param("organizationId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// ListClients handles GET /api/organizations/:organizationId/clients.
func (h *OrganizationHandler) ListClients(c echo.Context) error {
	records, err := h.service.ListOrganizationClients(c.Request().Context(), c.Param("organizationId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// GetUser handles GET /api/organizations/users/:userId.
func (h *OrganizationHandler) GetUser(c echo.Context) error {
	record, err := h.service.GetUserByID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, record)
}

// Test handles GET /api/organizations/test, a plain reachability probe that
// requires no authentication.
func (h *OrganizationHandler) Test(c echo.Context) error {
	return c.String(http.StatusOK, "API is up - no authentication required")
}
