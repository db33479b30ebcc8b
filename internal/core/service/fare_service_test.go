package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jass-platform/distribution-service/internal/core/domain"
	"github.com/jass-platform/distribution-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubFareRepo struct {
	byID      map[string]*domain.Fare
	createErr error // if set, Create returns this error
	nextID    int
}

func newStubFareRepo() *stubFareRepo {
	return &stubFareRepo{byID: make(map[string]*domain.Fare)}
}

func (r *stubFareRepo) Create(_ context.Context, f *domain.Fare) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.byID {
		if existing.FareCode == f.FareCode {
			return domain.ErrFareCodeExists
		}
	}
	r.nextID++
	f.ID = fmt.Sprintf("F%03d", r.nextID)
	clone := *f
	r.byID[f.ID] = &clone
	return nil
}

func (r *stubFareRepo) FindByID(_ context.Context, id string) (*domain.Fare, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrFareNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFareRepo) FindByCode(_ context.Context, fareCode string) (*domain.Fare, error) {
	for _, f := range r.byID {
		if f.FareCode == fareCode {
			clone := *f
			return &clone, nil
		}
	}
	return nil, domain.ErrFareNotFound
}

func (r *stubFareRepo) ListByOrganization(_ context.Context, organizationID string, status domain.FareStatus) ([]*domain.Fare, error) {
	var out []*domain.Fare
	for _, f := range r.byID {
		if f.OrganizationID != organizationID {
			continue
		}
		if status != "" && f.Status != status {
			continue
		}
		clone := *f
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubFareRepo) UpdateStatus(_ context.Context, id string, status domain.FareStatus) error {
	f, ok := r.byID[id]
	if !ok {
		return domain.ErrFareNotFound
	}
	f.Status = status
	return nil
}

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestFareService_Create_Success(t *testing.T) {
	repo := newStubFareRepo()
	svc := NewFareService(repo, discardLogger)

	fare, err := svc.CreateFare(context.Background(), ports.CreateFareInput{
		OrganizationID: "ORG1",
		FareName:       "Tarifa Básica Diaria",
		FareType:       "DIARIA",
		FareAmount:     10.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fare.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if !strings.HasPrefix(fare.FareCode, "TAR-") {
		t.Fatalf("unexpected fare code format: %s", fare.FareCode)
	}
	if fare.Status != domain.FareStatusActive {
		t.Fatalf("new fares must start ACTIVE, got %s", fare.Status)
	}
	if fare.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestFareService_Create_RepoErrorPropagates(t *testing.T) {
	repo := newStubFareRepo()
	repo.createErr = errors.New("mongo down")
	svc := NewFareService(repo, discardLogger)

	_, err := svc.CreateFare(context.Background(), ports.CreateFareInput{OrganizationID: "ORG1", FareName: "x", FareType: "DIARIA", FareAmount: 1})
	if err == nil || err.Error() != "mongo down" {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestFareService_Get_ScopedToOrganization(t *testing.T) {
	repo := newStubFareRepo()
	svc := NewFareService(repo, discardLogger)

	fare, err := svc.CreateFare(context.Background(), ports.CreateFareInput{OrganizationID: "ORG1", FareName: "x", FareType: "DIARIA", FareAmount: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetFare(context.Background(), "ORG1", fare.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != fare.ID {
		t.Fatalf("wrong fare returned: %s", got.ID)
	}

	// Another organization must not see it.
	if _, err := svc.GetFare(context.Background(), "ORG2", fare.ID); !errors.Is(err, domain.ErrFareNotFound) {
		t.Fatalf("expected ErrFareNotFound for foreign organization, got %v", err)
	}
}

func TestFareService_List_FiltersByStatus(t *testing.T) {
	repo := newStubFareRepo()
	svc := NewFareService(repo, discardLogger)

	a, _ := svc.CreateFare(context.Background(), ports.CreateFareInput{OrganizationID: "ORG1", FareName: "a", FareType: "DIARIA", FareAmount: 1})
	if _, err := svc.CreateFare(context.Background(), ports.CreateFareInput{OrganizationID: "ORG1", FareName: "b", FareType: "MENSUAL", FareAmount: 2}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.ChangeFareStatus(context.Background(), "ORG1", a.ID, domain.FareStatusInactive); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active, err := svc.ListFares(context.Background(), ports.ListFaresInput{OrganizationID: "ORG1", Status: "ACTIVE"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 1 || active[0].FareName != "b" {
		t.Fatalf("unexpected active fares: %+v", active)
	}

	all, err := svc.ListFares(context.Background(), ports.ListFaresInput{OrganizationID: "ORG1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 fares, got %d", len(all))
	}
}

func TestFareService_ChangeStatus(t *testing.T) {
	repo := newStubFareRepo()
	svc := NewFareService(repo, discardLogger)

	fare, _ := svc.CreateFare(context.Background(), ports.CreateFareInput{OrganizationID: "ORG1", FareName: "x", FareType: "DIARIA", FareAmount: 1})

	updated, err := svc.ChangeFareStatus(context.Background(), "ORG1", fare.ID, domain.FareStatusInactive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.FareStatusInactive {
		t.Fatalf("expected INACTIVE, got %s", updated.Status)
	}

	if _, err := svc.ChangeFareStatus(context.Background(), "ORG1", fare.ID, "SUSPENDED"); err == nil {
		t.Fatalf("expected error for invalid status")
	}

	if _, err := svc.ChangeFareStatus(context.Background(), "ORG1", "missing", domain.FareStatusActive); !errors.Is(err, domain.ErrFareNotFound) {
		t.Fatalf("expected ErrFareNotFound, got %v", err)
	}
}

func TestGenerateFareCode_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := generateFareCode()
		if !strings.HasPrefix(code, "TAR-") || len(code) != 10 {
			t.Fatalf("unexpected code format: %s", code)
		}
		seen[code] = true
	}
	if len(seen) < 90 {
		t.Fatalf("codes look non-random: %d unique of 100", len(seen))
	}
}
