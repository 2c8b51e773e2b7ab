package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/organizeja/gestor-api/internal/models"
)

type Repository interface {
	GetService(
		ctx context.Context,
		companyID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	ListMaterials(
		ctx context.Context,
		companyID uuid.UUID,
		serviceID uuid.UUID,
	) ([]models.ServiceMaterial, error)

	// ReplaceMaterials troca o conjunto completo de materiais do
	// serviço (delete + insert) dentro de uma única transação.
	ReplaceMaterials(
		ctx context.Context,
		companyID uuid.UUID,
		serviceID uuid.UUID,
		rows []models.ServiceMaterial,
	) error
}
