package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jass-platform/distribution-service/internal/core/domain"
)

type stubOrgService struct {
	authorized bool

	gotOrganizationID string
	gotUserID         string
}

func (s *stubOrgService) ListAuthorizedAdmins(ctx context.Context, organizationID string) ([]domain.AdminUser, error) {
	return nil, nil
}

func (s *stubOrgService) IsAuthorizedAdmin(ctx context.Context, organizationID, userID string) bool {
	s.gotOrganizationID = organizationID
	s.gotUserID = userID
	return s.authorized
}

func (s *stubOrgService) OrganizationExists(ctx context.Context, organizationID string) bool {
	return s.authorized
}

func (s *stubOrgService) GetAdminByID(ctx context.Context, organizationID, adminID string) (*domain.AdminUser, error) {
	return nil, domain.ErrAdminNotFound
}

func (s *stubOrgService) ListOrganizationUsers(ctx context.Context, organizationID string) ([]domain.RawRecord, error) {
	return nil, nil
}

func (s *stubOrgService) ListOrganizationClients(ctx context.Context, organizationID string) ([]domain.RawRecord, error) {
	return nil, nil
}

func (s *stubOrgService) GetUserByID(ctx context.Context, userID string) (domain.RawRecord, error) {
	return nil, nil
}

func runAdminGuard(orgs *stubOrgService, organizationID, userID string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if organizationID != "" {
		c.SetParamNames("organizationId")
		c.SetParamValues(organizationID)
	}
	if userID != "" {
		c.Set("user_id", userID)
	}

	handler := AdminGuard(orgs)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestAdminGuard_AuthorizedAdminPasses(t *testing.T) {
	orgs := &stubOrgService{authorized: true}
	if err := runAdminGuard(orgs, "org-1", "user-9"); err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if orgs.gotOrganizationID != "org-1" || orgs.gotUserID != "user-9" {
		t.Errorf("membership checked with (%q, %q), want (org-1, user-9)",
			orgs.gotOrganizationID, orgs.gotUserID)
	}
}

func TestAdminGuard_UnauthorizedUserDenied(t *testing.T) {
	err := runAdminGuard(&stubOrgService{authorized: false}, "org-1", "user-9")
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestAdminGuard_MissingOrganizationParam(t *testing.T) {
	err := runAdminGuard(&stubOrgService{authorized: true}, "", "user-9")
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestAdminGuard_MissingUserClaim(t *testing.T) {
	err := runAdminGuard(&stubOrgService{authorized: true}, "org-1", "")
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}
