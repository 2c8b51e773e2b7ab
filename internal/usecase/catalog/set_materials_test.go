package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/organizeja/gestor-api/internal/audit"
	domain "github.com/organizeja/gestor-api/internal/domain/catalog"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeCatalogRepository struct {
	services  map[uuid.UUID]*models.Service
	materials map[uuid.UUID][]models.ServiceMaterial
}

var _ domain.Repository = (*fakeCatalogRepository)(nil)

func (f *fakeCatalogRepository) GetService(ctx context.Context, companyID, serviceID uuid.UUID) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok || svc.CompanyID != companyID {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}
	return svc, nil
}

func (f *fakeCatalogRepository) ListMaterials(ctx context.Context, companyID, serviceID uuid.UUID) ([]models.ServiceMaterial, error) {
	return f.materials[serviceID], nil
}

func (f *fakeCatalogRepository) ReplaceMaterials(ctx context.Context, companyID, serviceID uuid.UUID, rows []models.ServiceMaterial) error {
	f.materials[serviceID] = rows
	return nil
}

func newCatalogFixture() (*fakeCatalogRepository, tenant.Context, *models.Service) {
	companyID := uuid.New()

	svc := &models.Service{
		ID:        uuid.New(),
		CompanyID: companyID,
		Header:    "Coloração",
	}

	repo := &fakeCatalogRepository{
		services:  map[uuid.UUID]*models.Service{svc.ID: svc},
		materials: map[uuid.UUID][]models.ServiceMaterial{},
	}
	t := tenant.Context{CompanyID: companyID, UserID: uuid.New(), Role: tenant.RoleOwner}
	return repo, t, svc
}

func TestSetMaterials_ReplacesWholeSetCoalescingDuplicates(t *testing.T) {
	repo, tn, svc := newCatalogFixture()
	uc := NewSetMaterials(repo, audit.NewDispatcher(audit.New(nil)))

	productA := uuid.New()
	productB := uuid.New()

	// conjunto anterior some por inteiro
	repo.materials[svc.ID] = []models.ServiceMaterial{
		{ProductID: uuid.New(), Quantidade: dec("9")},
	}

	err := uc.Execute(context.Background(), tn, svc.ID, []models.ServiceMaterial{
		{ProductID: productA, Quantidade: dec("1"), UnitCost: dec("5")},
		{ProductID: productB, Quantidade: dec("2"), UnitCost: dec("3")},
		{ProductID: productA, Quantidade: dec("3"), UnitCost: dec("5")},
	})
	if err != nil {
		t.Fatalf("set materials failed: %v", err)
	}

	rows := repo.materials[svc.ID]
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ProductID != productA || !rows[0].Quantidade.Equal(dec("4")) {
		t.Fatalf("duplicates not coalesced: %s of %s", rows[0].Quantidade, rows[0].ProductID)
	}
	for _, row := range rows {
		if row.CompanyID != tn.CompanyID || row.ServiceID != svc.ID {
			t.Fatalf("row missing tenant/service scope: %+v", row)
		}
	}
}

func TestSetMaterials_EmptyListClearsTheSet(t *testing.T) {
	repo, tn, svc := newCatalogFixture()
	uc := NewSetMaterials(repo, audit.NewDispatcher(audit.New(nil)))

	repo.materials[svc.ID] = []models.ServiceMaterial{
		{ProductID: uuid.New(), Quantidade: dec("2")},
	}

	if err := uc.Execute(context.Background(), tn, svc.ID, nil); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if len(repo.materials[svc.ID]) != 0 {
		t.Fatalf("set not cleared: %d rows", len(repo.materials[svc.ID]))
	}
}

func TestSetMaterials_NegativeQuantityRejected(t *testing.T) {
	repo, tn, svc := newCatalogFixture()
	uc := NewSetMaterials(repo, audit.NewDispatcher(audit.New(nil)))

	err := uc.Execute(context.Background(), tn, svc.ID, []models.ServiceMaterial{
		{ProductID: uuid.New(), Quantidade: dec("-1")},
	})
	if !httperr.IsBusiness(err, "invalid_quantity") {
		t.Fatalf("expected invalid_quantity, got %v", err)
	}
}

func TestSetMaterials_UnknownService(t *testing.T) {
	repo, tn, _ := newCatalogFixture()
	uc := NewSetMaterials(repo, audit.NewDispatcher(audit.New(nil)))

	err := uc.Execute(context.Background(), tn, uuid.New(), nil)
	if !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}

func TestEstimateCost_UsesSnapshotsNotCurrentCost(t *testing.T) {
	repo, tn, svc := newCatalogFixture()

	target := dec("100")
	svc.Target = &target

	repo.materials[svc.ID] = []models.ServiceMaterial{
		{ProductID: uuid.New(), Quantidade: dec("2"), UnitCost: dec("10")},
	}

	uc := NewEstimateCost(repo)
	est, err := uc.Execute(context.Background(), tn, svc.ID)
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}

	if !est.MaterialCost.Equal(dec("20")) {
		t.Fatalf("expected cost 20, got %s", est.MaterialCost)
	}
	if !est.Profit.Equal(dec("80")) {
		t.Fatalf("expected profit 80, got %s", est.Profit)
	}
	if !est.MarginPercent.Equal(dec("80")) {
		t.Fatalf("expected margin 80%%, got %s", est.MarginPercent)
	}
}
