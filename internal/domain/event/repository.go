package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/organizeja/gestor-api/internal/domain/inventory"
	"github.com/organizeja/gestor-api/internal/models"
)

// Repository cobre tudo que o ciclo de vida do evento precisa,
// inclusive a liquidação: baixa de estoque, lançamentos no razão
// financeiro e agregados do cliente saem na mesma transação.
type Repository interface {
	inventory.Writer

	// -------- Event --------
	CreateEvent(
		ctx context.Context,
		ev *models.Event,
	) error

	GetEvent(
		ctx context.Context,
		companyID uuid.UUID,
		eventID uuid.UUID,
	) (*models.Event, error)

	// Segura o lock da linha do evento durante a liquidação.
	GetEventForUpdate(
		ctx context.Context,
		companyID uuid.UUID,
		eventID uuid.UUID,
	) (*models.Event, error)

	UpdateEvent(
		ctx context.Context,
		ev *models.Event,
	) error

	ListEventsForPeriod(
		ctx context.Context,
		companyID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Event, error)

	// -------- Service / materials --------
	GetService(
		ctx context.Context,
		companyID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	ListServiceMaterials(
		ctx context.Context,
		companyID uuid.UUID,
		serviceID uuid.UUID,
	) ([]models.ServiceMaterial, error)

	// -------- Client --------
	GetClientForUpdate(
		ctx context.Context,
		companyID uuid.UUID,
		clientID uuid.UUID,
	) (*models.Client, error)

	UpdateClient(
		ctx context.Context,
		cl *models.Client,
	) error

	// -------- Financial ledger --------
	InsertFinancialMovement(
		ctx context.Context,
		fm *models.FinancialMovement,
	) error

	// -------- Transaction boundary --------
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
