package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/organizeja/gestor-api/internal/audit"
	domain "github.com/organizeja/gestor-api/internal/domain/inventory"
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

// fakeInventoryRepository imita o rollback da transação com um
// snapshot dos produtos.
type fakeInventoryRepository struct {
	products  map[uuid.UUID]*models.Product
	movements []models.ProductMovement
}

var _ domain.Repository = (*fakeInventoryRepository)(nil)

func (f *fakeInventoryRepository) GetProductForUpdate(ctx context.Context, companyID, productID uuid.UUID) (*models.Product, error) {
	p, ok := f.products[productID]
	if !ok || p.CompanyID != companyID {
		return nil, httperr.ErrBusiness(httperr.CodeProductNotFound)
	}
	return p, nil
}

func (f *fakeInventoryRepository) UpdateProduct(ctx context.Context, p *models.Product) error {
	copied := *p
	f.products[p.ID] = &copied
	return nil
}

func (f *fakeInventoryRepository) InsertMovement(ctx context.Context, mov *models.ProductMovement) error {
	if mov.ID == uuid.Nil {
		mov.ID = uuid.New()
	}
	f.movements = append(f.movements, *mov)
	return nil
}

func (f *fakeInventoryRepository) Transaction(ctx context.Context, fn func(domain.Writer) error) error {
	snapshot := map[uuid.UUID]*models.Product{}
	for id, p := range f.products {
		copied := *p
		snapshot[id] = &copied
	}
	movs := append([]models.ProductMovement(nil), f.movements...)

	if err := fn(f); err != nil {
		f.products = snapshot
		f.movements = movs
		return err
	}
	return nil
}

func (f *fakeInventoryRepository) ListMovements(ctx context.Context, companyID uuid.UUID, productID *uuid.UUID) ([]models.ProductMovement, error) {
	return f.movements, nil
}

func (f *fakeInventoryRepository) ListBelowMinimum(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.Status != models.ProductStatusInativo && p.LowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func newMovementFixture() (*fakeInventoryRepository, *RecordMovement, tenant.Context, *models.Product) {
	companyID := uuid.New()

	product := &models.Product{
		ID:         uuid.New(),
		CompanyID:  companyID,
		Nome:       "Pomada",
		Quantidade: dec("10"),
		CostPrice:  dec("5"),
		Status:     models.ProductStatusAtivo,
	}

	repo := &fakeInventoryRepository{
		products: map[uuid.UUID]*models.Product{product.ID: product},
	}

	uc := NewRecordMovement(repo, audit.NewDispatcher(audit.New(nil)))
	t := tenant.Context{CompanyID: companyID, UserID: uuid.New(), Role: tenant.RoleOwner}
	return repo, uc, t, product
}

func TestRecordMovement_EntradaWorkedExample(t *testing.T) {
	repo, uc, tn, product := newMovementFixture()

	mov, err := uc.Execute(context.Background(), tn, RecordMovementInput{
		ProductID:  product.ID,
		Type:       models.MovementEntrada,
		Quantidade: dec("10"),
		UnitCost:   dec("7"),
	})
	if err != nil {
		t.Fatalf("entrada failed: %v", err)
	}

	stored := repo.products[product.ID]
	if !stored.CostPrice.Equal(dec("6")) {
		t.Fatalf("expected average 6, got %s", stored.CostPrice)
	}
	if !stored.Quantidade.Equal(dec("20")) {
		t.Fatalf("expected qty 20, got %s", stored.Quantidade)
	}
	if mov.CreatedBy == nil || *mov.CreatedBy != tn.UserID {
		t.Fatal("movement should carry the acting user")
	}

	// saída subsequente não mexe na média
	if _, err := uc.Execute(context.Background(), tn, RecordMovementInput{
		ProductID:  product.ID,
		Type:       models.MovementSaida,
		Quantidade: dec("4"),
	}); err != nil {
		t.Fatalf("saida failed: %v", err)
	}
	if got := repo.products[product.ID].CostPrice; !got.Equal(dec("6")) {
		t.Fatalf("saida changed the average: %s", got)
	}
}

func TestRecordMovement_InsufficientStockLeavesNoTrace(t *testing.T) {
	repo, uc, tn, product := newMovementFixture()

	_, err := uc.Execute(context.Background(), tn, RecordMovementInput{
		ProductID:  product.ID,
		Type:       models.MovementSaida,
		Quantidade: dec("99"),
	})
	if !httperr.IsBusiness(err, httperr.CodeInsufficientStock) {
		t.Fatalf("expected insufficient_stock, got %v", err)
	}

	if got := repo.products[product.ID].Quantidade; !got.Equal(dec("10")) {
		t.Fatalf("product mutated: %s", got)
	}
	if len(repo.movements) != 0 {
		t.Fatalf("movement row written despite rejection: %d", len(repo.movements))
	}
}

func TestRecordMovement_UnknownProduct(t *testing.T) {
	_, uc, tn, _ := newMovementFixture()

	_, err := uc.Execute(context.Background(), tn, RecordMovementInput{
		ProductID:  uuid.New(),
		Type:       models.MovementEntrada,
		Quantidade: dec("1"),
		UnitCost:   dec("2"),
	})
	if !httperr.IsBusiness(err, httperr.CodeProductNotFound) {
		t.Fatalf("expected product_not_found, got %v", err)
	}
}
