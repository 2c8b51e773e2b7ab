package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/organizeja/gestor-api/internal/audit"
	domain "github.com/organizeja/gestor-api/internal/domain/catalog"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
)

// ======================================================
// USE CASE
// ======================================================

type SetMaterials struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetMaterials(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetMaterials {
	return &SetMaterials{
		repo:  repo,
		audit: audit,
	}
}

// Execute substitui o conjunto inteiro de materiais do serviço.
// Duplicatas de product_id são somadas na primeira ocorrência antes
// de persistir; o delete + insert sai numa transação única.
func (uc *SetMaterials) Execute(
	ctx context.Context,
	t tenant.Context,
	serviceID uuid.UUID,
	materials []models.ServiceMaterial,
) error {

	if _, err := uc.repo.GetService(ctx, t.CompanyID, serviceID); err != nil {
		return httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	rows := domain.CoalesceMaterials(materials)
	for i := range rows {
		rows[i].CompanyID = t.CompanyID
		rows[i].ServiceID = serviceID
		if rows[i].Quantidade.IsNegative() {
			return httperr.ErrBusiness("invalid_quantity")
		}
	}

	if err := uc.repo.ReplaceMaterials(ctx, t.CompanyID, serviceID, rows); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: t.CompanyID,
		UserID:    &t.UserID,
		Action:    "service_materials_replaced",
		Entity:    "service",
		EntityID:  &serviceID,
		Metadata:  map[string]any{"materials": len(rows)},
	})

	return nil
}
