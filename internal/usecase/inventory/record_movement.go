package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/organizeja/gestor-api/internal/audit"
	domain "github.com/organizeja/gestor-api/internal/domain/inventory"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
	"github.com/organizeja/gestor-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RecordMovementInput struct {
	ProductID  uuid.UUID
	Type       string
	Quantidade decimal.Decimal
	UnitCost   decimal.Decimal
	Note       string
}

// ======================================================
// USE CASE
// ======================================================

type RecordMovement struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRecordMovement(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RecordMovement {
	return &RecordMovement{
		repo:  repo,
		audit: audit,
	}
}

// Execute roda leitura, recomputação e as duas escritas (linha de
// movimento + produto) numa transação única, com a linha do produto
// trancada até o commit.
func (uc *RecordMovement) Execute(
	ctx context.Context,
	t tenant.Context,
	in RecordMovementInput,
) (*models.ProductMovement, error) {

	var mov *models.ProductMovement

	err := uc.repo.Transaction(ctx, func(w domain.Writer) error {
		product, err := w.GetProductForUpdate(ctx, t.CompanyID, in.ProductID)
		if err != nil {
			return httperr.ErrBusiness(httperr.CodeProductNotFound)
		}

		now := timezone.Now()
		mov, err = domain.Apply(product, in.Type, in.Quantidade, in.UnitCost, in.Note, now)
		if err != nil {
			return err
		}
		mov.CreatedBy = &t.UserID

		if err := w.InsertMovement(ctx, mov); err != nil {
			return err
		}
		return w.UpdateProduct(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: t.CompanyID,
		UserID:    &t.UserID,
		Action:    "stock_movement_recorded",
		Entity:    "product_movement",
		EntityID:  &mov.ID,
		Metadata: map[string]any{
			"product_id": in.ProductID,
			"type":       in.Type,
			"quantidade": in.Quantidade,
		},
	})

	return mov, nil
}
