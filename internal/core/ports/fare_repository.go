package ports

import (
	"context"

	"github.com/jass-platform/distribution-service/internal/core/domain"
)

// FareRepository defines persistence operations for fare records.
type FareRepository interface {
	Create(ctx context.Context, f *domain.Fare) error
	FindByID(ctx context.Context, id string) (*domain.Fare, error)
	FindByCode(ctx context.Context, fareCode string) (*domain.Fare, error)
	// ListByOrganization returns all fares of an organization, optionally
	// filtered by status, newest first.
	ListByOrganization(ctx context.Context, organizationID string, status domain.FareStatus) ([]*domain.Fare, error)
	UpdateStatus(ctx context.Context, id string, status domain.FareStatus) error
}
