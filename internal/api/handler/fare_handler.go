package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jass-platform/distribution-service/internal/core/domain"
	"github.com/jass-platform/distribution-service/internal/core/ports"
)

// FareHandler handles HTTP requests for fare operations.
type FareHandler struct {
	service ports.FareService
}

func NewFareHandler(service ports.FareService) *FareHandler {
	return &FareHandler{service: service}
}

// --- Request / Response types ---

type createFareRequest struct {
	FareName   string  `json:"fare_name" validate:"required"`
	FareType   string  `json:"fare_type" validate:"required"`
	FareAmount float64 `json:"fare_amount" validate:"required,gt=0"`
}

type changeFareStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

type fareResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	FareCode       string  `json:"fare_code"`
	FareName       string  `json:"fare_name"`
	FareType       string  `json:"fare_type"`
	FareAmount     float64 `json:"fare_amount"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

func toFareResponse(f *domain.Fare) fareResponse {
	return fareResponse{
		ID:             f.ID,
		OrganizationID: f.OrganizationID,
		FareCode:       f.FareCode,
		FareName:       f.FareName,
		FareType:       f.FareType,
		FareAmount:     f.FareAmount,
		Status:         string(f.Status),
		CreatedAt:      f.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Create handles POST /api/organizations/:organizationId/fares.
func (h *FareHandler) Create(c echo.Context) error {
	var req createFareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fare, err := h.service.CreateFare(c.Request().Context(), ports.CreateFareInput{
		OrganizationID: c.Param("organizationId"),
		FareName:       req.FareName,
		FareType:       req.FareType,
		FareAmount:     req.FareAmount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toFareResponse(fare))
}

// Get handles GET /api/organizations/:organizationId/fares/:fareId.
func (h *FareHandler) Get(c echo.Context) error {
	fare, err := h.service.GetFare(c.Request().Context(), c.Param("organizationId"), c.Param("fareId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFareResponse(fare))
}

// List handles GET /api/organizations/:organizationId/fares.
// Accepts an optional ?status=ACTIVE|INACTIVE filter.
func (h *FareHandler) List(c echo.Context) error {
	fares, err := h.service.ListFares(c.Request().Context(), ports.ListFaresInput{
		OrganizationID: c.Param("organizationId"),
		Status:         c.QueryParam("status"),
	})
	if err != nil {
		return err
	}

	resp := make([]fareResponse, 0, len(fares))
	for _, f := range fares {
		resp = append(resp, toFareResponse(f))
	}
	return c.JSON(http.StatusOK, resp)
}

// ChangeStatus handles PATCH /api/organizations/:organizationId/fares/:fareId/status.
func (h *FareHandler) ChangeStatus(c echo.Context) error {
	var req changeFareStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fare, err := h.service.ChangeFareStatus(c.Request().Context(), c.Param("organizationId"), c.Param("fareId"), domain.FareStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFareResponse(fare))
}
