package ports

import (
	"context"

	"github.com/jass-platform/distribution-service/internal/core/domain"
)

// CreateFareInput carries all data needed to create a new fare.
type CreateFareInput struct {
	OrganizationID string
	FareName       string
	FareType       string
	FareAmount     float64
}

// ListFaresInput carries the parameters for listing an organization's fares.
type ListFaresInput struct {
	OrganizationID string
	Status         string // optional: "ACTIVE" or "INACTIVE"
}

// FareService defines use-case operations for fares.
type FareService interface {
	CreateFare(ctx context.Context, input CreateFareInput) (*domain.Fare, error)
	GetFare(ctx context.Context, organizationID, fareID string) (*domain.Fare, error)
	ListFares(ctx context.Context, input ListFaresInput) ([]*domain.Fare, error)
	// ChangeFareStatus activates or deactivates a fare.
	ChangeFareStatus(ctx context.Context, organizationID, fareID string, status domain.FareStatus) (*domain.Fare, error)
}
