package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jass-platform/distribution-service/internal/api/metrics"
	"github.com/jass-platform/distribution-service/internal/core/domain"
	"github.com/jass-platform/distribution-service/internal/core/ports"
)

type FareService struct {
	repo   ports.FareRepository
	logger zerolog.Logger
}

func NewFareService(repo ports.FareRepository, logger zerolog.Logger) *FareService {
	return &FareService{repo: repo, logger: logger}
}

// CreateFare creates a new fare for an organization. Fare codes are
// generated server-side and unique per deployment.
func (s *FareService) CreateFare(ctx context.Context, input ports.CreateFareInput) (*domain.Fare, error) {
	fare := &domain.Fare{
		OrganizationID: input.OrganizationID,
		FareCode:       generateFareCode(),
		FareName:       input.FareName,
		FareType:       input.FareType,
		FareAmount:     input.FareAmount,
		Status:         domain.FareStatusActive,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, fare); err != nil {
		s.logger.Error().Err(err).Str("organization_id", input.OrganizationID).Msg("failed to create fare")
		return nil, err
	}

	metrics.FaresCreatedTotal.WithLabelValues(fare.FareType).Inc()
	s.logger.Info().Str("fare_code", fare.FareCode).Str("organization_id", fare.OrganizationID).Msg("fare created")
	return fare, nil
}

// GetFare retrieves a fare and verifies it belongs to the organization.
// A fare from a different organization is reported as not found.
func (s *FareService) GetFare(ctx context.Context, organizationID, fareID string) (*domain.Fare, error) {
	fare, err := s.repo.FindByID(ctx, fareID)
	if err != nil {
		return nil, err
	}
	if fare.OrganizationID != organizationID {
		return nil, domain.ErrFareNotFound
	}
	return fare, nil
}

// ListFares returns an organization's fares, optionally filtered by status.
func (s *FareService) ListFares(ctx context.Context, input ports.ListFaresInput) ([]*domain.Fare, error) {
	fares, err := s.repo.ListByOrganization(ctx, input.OrganizationID, domain.FareStatus(input.Status))
	if err != nil {
		s.logger.Error().Err(err).Str("organization_id", input.OrganizationID).Msg("failed to list fares")
		return nil, err
	}
	return fares, nil
}

// ChangeFareStatus activates or deactivates a fare and returns the updated
// record.
func (s *FareService) ChangeFareStatus(ctx context.Context, organizationID, fareID string, status domain.FareStatus) (*domain.Fare, error) {
	if status != domain.FareStatusActive && status != domain.FareStatusInactive {
		return nil, fmt.Errorf("invalid fare status %q", status)
	}

	fare, err := s.GetFare(ctx, organizationID, fareID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, fareID, status); err != nil {
		if errors.Is(err, domain.ErrFareNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("fare_id", fareID).Msg("failed to update fare status")
		return nil, err
	}

	fare.Status = status
	s.logger.Info().Str("fare_id", fareID).Str("status", string(status)).Msg("fare status changed")
	return fare, nil
}

// generateFareCode returns a unique fare code in the format TAR-XXXXXX.
func generateFareCode() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("TAR-%06X", time.Now().UnixNano()&0xFFFFFF)
	}
	return fmt.Sprintf("TAR-%06X", b)
}
