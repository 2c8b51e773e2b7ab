package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/organizeja/gestor-api/internal/models"
)

// Writer é o subconjunto transacional do ledger de estoque.
// GetProductForUpdate deve segurar o lock da linha do produto até
// o fim da transação (SELECT ... FOR UPDATE).
type Writer interface {
	GetProductForUpdate(
		ctx context.Context,
		companyID uuid.UUID,
		productID uuid.UUID,
	) (*models.Product, error)

	UpdateProduct(
		ctx context.Context,
		p *models.Product,
	) error

	InsertMovement(
		ctx context.Context,
		mov *models.ProductMovement,
	) error
}

type Repository interface {
	Writer

	// Transaction executa fn com um Writer preso a uma única
	// transação do banco; rollback integral em erro.
	Transaction(
		ctx context.Context,
		fn func(Writer) error,
	) error

	ListMovements(
		ctx context.Context,
		companyID uuid.UUID,
		productID *uuid.UUID,
	) ([]models.ProductMovement, error)

	ListBelowMinimum(
		ctx context.Context,
	) ([]models.Product, error)
}
