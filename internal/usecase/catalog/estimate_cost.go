package catalog

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/organizeja/gestor-api/internal/domain/catalog"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/tenant"
)

type EstimateCost struct {
	repo domain.Repository
}

func NewEstimateCost(repo domain.Repository) *EstimateCost {
	return &EstimateCost{repo: repo}
}

// Consulta pura sobre os snapshots de custo da lista de materiais.
func (uc *EstimateCost) Execute(
	ctx context.Context,
	t tenant.Context,
	serviceID uuid.UUID,
) (domain.CostEstimate, error) {

	svc, err := uc.repo.GetService(ctx, t.CompanyID, serviceID)
	if err != nil {
		return domain.CostEstimate{}, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	materials, err := uc.repo.ListMaterials(ctx, t.CompanyID, serviceID)
	if err != nil {
		return domain.CostEstimate{}, err
	}

	return domain.EstimateCost(svc, materials), nil
}
