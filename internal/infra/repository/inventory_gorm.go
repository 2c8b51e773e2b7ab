package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/organizeja/gestor-api/internal/domain/inventory"
	"github.com/organizeja/gestor-api/internal/models"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// --------------------------------------------------
// Writer
// --------------------------------------------------

func (r *InventoryGormRepository) GetProductForUpdate(
	ctx context.Context,
	companyID uuid.UUID,
	productID uuid.UUID,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND company_id = ?", productID, companyID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *InventoryGormRepository) UpdateProduct(
	ctx context.Context,
	p *models.Product,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *InventoryGormRepository) InsertMovement(
	ctx context.Context,
	mov *models.ProductMovement,
) error {
	return r.db.WithContext(ctx).Create(mov).Error
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *InventoryGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Writer) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&InventoryGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *InventoryGormRepository) ListMovements(
	ctx context.Context,
	companyID uuid.UUID,
	productID *uuid.UUID,
) ([]models.ProductMovement, error) {

	q := r.db.WithContext(ctx).
		Preload("Product").
		Where("company_id = ?", companyID)

	if productID != nil {
		q = q.Where("product_id = ?", *productID)
	}

	var movements []models.ProductMovement
	if err := q.
		Order("created_at DESC").
		Find(&movements).Error; err != nil {
		return nil, err
	}

	return movements, nil
}

func (r *InventoryGormRepository) ListBelowMinimum(
	ctx context.Context,
) ([]models.Product, error) {

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("status <> ? AND quantidade <= estoque_minimo", models.ProductStatusInativo).
		Order("company_id, nome").
		Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

// Compile-time check
var _ domain.Repository = (*InventoryGormRepository)(nil)
