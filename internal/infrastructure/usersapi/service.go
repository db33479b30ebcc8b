// Package usersapi implements the gateway to the external users service:
// credential injection, response-shape normalization, bounded retry of
// transient server faults, and translation into domain errors.
package usersapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jass-platform/distribution-service/internal/core/domain"
)

// Logical endpoint names used for logs and metrics labels.
const (
	endpointAdmins   = "admins"
	endpointUsers    = "users"
	endpointClients  = "clients"
	endpointUserByID = "user_by_id"
)

// Service queries the users service for organization membership data.
// It implements ports.OrganizationService. Stateless and safe for
// concurrent use; the underlying connection pool is shared.
type Service struct {
	cfg    Config
	client *client
	log    zerolog.Logger
}

func NewService(cfg Config, log zerolog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		client: newClient(cfg),
		log:    log,
	}
}

// AuthConfigured reports whether the active credential scheme has its
// secret present. Diagnostics only: calls are issued regardless, and an
// unauthenticated call simply gets whatever the upstream answers.
func (s *Service) AuthConfigured() bool {
	return s.client.cred.Configured()
}

// ListAuthorizedAdmins fetches the organization's authorized administrators,
// in upstream order. The whole fetch-and-decode runs under the retry policy;
// only an upstream 500 is retried. A 404 maps to ErrOrganizationNotFound
// immediately, and an undecodable item maps to ErrMapping; neither is
// retried.
func (s *Service) ListAuthorizedAdmins(ctx context.Context, organizationID string) ([]domain.AdminUser, error) {
	s.log.Debug().Str("organization_id", organizationID).Msg("fetching authorized admins")

	var admins []domain.AdminUser
	err := withRetry(ctx, endpointAdmins, s.cfg.MaxAttempts, s.cfg.RetryBaseDelay, func() error {
		result, err := s.fetchAdmins(ctx, organizationID)
		if err != nil {
			return err
		}
		admins = result
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("organization_id", organizationID).Msg("failed to fetch authorized admins")
		return nil, err
	}
	return admins, nil
}

func (s *Service) fetchAdmins(ctx context.Context, organizationID string) ([]domain.AdminUser, error) {
	path := expandPath(s.cfg.AdminsPath, "organizationId", organizationID)
	body, err := s.client.get(ctx, endpointAdmins, path)
	if err != nil {
		if asStatus(err, http.StatusNotFound) {
			s.log.Warn().Str("organization_id", organizationID).Msg("organization not found upstream")
			return nil, fmt.Errorf("%w: %s", domain.ErrOrganizationNotFound, organizationID)
		}
		return nil, err
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 {
		s.log.Warn().Str("message", env.Message).Msg("users api reported no success")
		return []domain.AdminUser{}, nil
	}

	admins := make([]domain.AdminUser, 0, len(env.Data))
	for _, raw := range env.Data {
		admin, err := decodeAdmin(raw)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, nil
}

// IsAuthorizedAdmin reports whether userID appears among the organization's
// authorized admins. Every failure of the underlying call (404, mapping
// error, timeout, exhausted retries) collapses to false. Callers use this
// for access-control decisions, so denying on uncertainty is the contract.
func (s *Service) IsAuthorizedAdmin(ctx context.Context, organizationID, userID string) bool {
	admins, err := s.ListAuthorizedAdmins(ctx, organizationID)
	if err != nil {
		return false
	}
	for _, admin := range admins {
		if admin.ID == userID {
			return true
		}
	}
	return false
}

// GetAdminByID returns the admin with the given id from the organization's
// authorized list. Unlike the boolean predicates this propagates underlying
// failures, and a miss is ErrAdminNotFound.
func (s *Service) GetAdminByID(ctx context.Context, organizationID, adminID string) (*domain.AdminUser, error) {
	admins, err := s.ListAuthorizedAdmins(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].ID == adminID {
			return &admins[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrAdminNotFound, adminID)
}

// OrganizationExists reports whether the organization has at least one
// authorized admin. Same fail-closed contract as IsAuthorizedAdmin.
func (s *Service) OrganizationExists(ctx context.Context, organizationID string) bool {
	admins, err := s.ListAuthorizedAdmins(ctx, organizationID)
	if err != nil {
		return false
	}
	return len(admins) > 0
}

// ListOrganizationUsers returns an organization's users as raw records.
// No retry and no typed decoding on this endpoint.
func (s *Service) ListOrganizationUsers(ctx context.Context, organizationID string) ([]domain.RawRecord, error) {
	return s.rawList(ctx, endpointUsers, expandPath(s.cfg.UsersPath, "organizationId", organizationID))
}

// ListOrganizationClients returns an organization's clients as raw records.
// No retry and no typed decoding on this endpoint.
func (s *Service) ListOrganizationClients(ctx context.Context, organizationID string) ([]domain.RawRecord, error) {
	return s.rawList(ctx, endpointClients, expandPath(s.cfg.ClientsPath, "organizationId", organizationID))
}

func (s *Service) rawList(ctx context.Context, endpoint, path string) ([]domain.RawRecord, error) {
	body, err := s.client.get(ctx, endpoint, path)
	if err != nil {
		s.log.Error().Err(err).Str("endpoint", endpoint).Msg("failed to fetch records")
		return nil, err
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		s.log.Error().Err(err).Str("endpoint", endpoint).Msg("failed to decode envelope")
		return nil, err
	}
	if !env.Success || len(env.Data) == 0 {
		s.log.Warn().Str("message", env.Message).Msg("users api reported no success")
		return []domain.RawRecord{}, nil
	}

	records := make([]domain.RawRecord, 0, len(env.Data))
	for _, raw := range env.Data {
		records = append(records, domain.RawRecord(raw))
	}
	return records, nil
}

// GetUserByID fetches a single user and passes the upstream body through
// untouched.
func (s *Service) GetUserByID(ctx context.Context, userID string) (domain.RawRecord, error) {
	body, err := s.client.get(ctx, endpointUserByID, expandPath(s.cfg.UserByIDPath, "userId", userID))
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to fetch user")
		return nil, err
	}
	return domain.RawRecord(body), nil
}
