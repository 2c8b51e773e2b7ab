package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/organizeja/gestor-api/internal/domain/catalog"
	"github.com/organizeja/gestor-api/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	companyID uuid.UUID,
	serviceID uuid.UUID,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND company_id = ?", serviceID, companyID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *CatalogGormRepository) ListMaterials(
	ctx context.Context,
	companyID uuid.UUID,
	serviceID uuid.UUID,
) ([]models.ServiceMaterial, error) {

	var materials []models.ServiceMaterial
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("company_id = ? AND service_id = ?", companyID, serviceID).
		Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// Delete + insert do conjunto inteiro dentro de uma transação; uma
// falha no insert desfaz o delete.
func (r *CatalogGormRepository) ReplaceMaterials(
	ctx context.Context,
	companyID uuid.UUID,
	serviceID uuid.UUID,
	rows []models.ServiceMaterial,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("company_id = ? AND service_id = ?", companyID, serviceID).
			Delete(&models.ServiceMaterial{}).Error; err != nil {
			return err
		}

		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)
