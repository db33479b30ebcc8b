package ports

import (
	"context"

	"github.com/jass-platform/distribution-service/internal/core/domain"
)

// OrganizationService answers identity and membership questions by querying
// the external users service.
//
// Data-retrieval operations return errors so callers can tell "no data" apart
// from "could not determine". The boolean predicates (IsAuthorizedAdmin,
// OrganizationExists) deliberately do not: they back access-control
// decisions, so every failure of the underlying call collapses to false
// (fail-closed) instead of propagating.
type OrganizationService interface {
	// ListAuthorizedAdmins returns the organization's authorized
	// administrators in upstream order. An upstream 404 yields
	// domain.ErrOrganizationNotFound; an undecodable record yields
	// domain.ErrMapping.
	ListAuthorizedAdmins(ctx context.Context, organizationID string) ([]domain.AdminUser, error)

	// IsAuthorizedAdmin reports whether userID is among the organization's
	// authorized administrators. Never fails: any underlying error is false.
	IsAuthorizedAdmin(ctx context.Context, organizationID, userID string) bool

	// GetAdminByID returns the authorized admin with the given id, or
	// domain.ErrAdminNotFound when no admin matches.
	GetAdminByID(ctx context.Context, organizationID, adminID string) (*domain.AdminUser, error)

	// OrganizationExists reports whether the organization has at least one
	// authorized administrator. Never fails: any underlying error is false.
	OrganizationExists(ctx context.Context, organizationID string) bool

	// ListOrganizationUsers returns the organization's users as raw upstream
	// records, without typed decoding.
	ListOrganizationUsers(ctx context.Context, organizationID string) ([]domain.RawRecord, error)

	// ListOrganizationClients returns the organization's clients as raw
	// upstream records, without typed decoding.
	ListOrganizationClients(ctx context.Context, organizationID string) ([]domain.RawRecord, error)

	// GetUserByID returns a single user as the raw upstream response body.
	GetUserByID(ctx context.Context, userID string) (domain.RawRecord, error)
}
