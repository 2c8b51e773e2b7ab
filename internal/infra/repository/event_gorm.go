package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/organizeja/gestor-api/internal/domain/event"
	"github.com/organizeja/gestor-api/internal/models"
)

type EventGormRepository struct {
	db *gorm.DB
}

func NewEventGormRepository(db *gorm.DB) *EventGormRepository {
	return &EventGormRepository{db: db}
}

// --------------------------------------------------
// Event
// --------------------------------------------------

func (r *EventGormRepository) CreateEvent(
	ctx context.Context,
	ev *models.Event,
) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *EventGormRepository) GetEvent(
	ctx context.Context,
	companyID uuid.UUID,
	eventID uuid.UUID,
) (*models.Event, error) {

	var ev models.Event
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("id = ? AND company_id = ?", eventID, companyID).
		First(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *EventGormRepository) GetEventForUpdate(
	ctx context.Context,
	companyID uuid.UUID,
	eventID uuid.UUID,
) (*models.Event, error) {

	var ev models.Event
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND company_id = ?", eventID, companyID).
		First(&ev).Error; err != nil {
		return nil, err
	}

	// Preload separado: FOR UPDATE só precisa segurar a linha do evento.
	if ev.ServiceID != nil {
		var svc models.Service
		if err := r.db.WithContext(ctx).
			Where("id = ? AND company_id = ?", *ev.ServiceID, companyID).
			First(&svc).Error; err == nil {
			ev.Service = &svc
		}
	}

	return &ev, nil
}

func (r *EventGormRepository) UpdateEvent(
	ctx context.Context,
	ev *models.Event,
) error {
	return r.db.WithContext(ctx).Save(ev).Error
}

func (r *EventGormRepository) ListEventsForPeriod(
	ctx context.Context,
	companyID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Event, error) {

	var events []models.Event
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"company_id = ? AND start_date >= ? AND start_date < ?",
			companyID, start, end,
		).
		Order("start_date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

// --------------------------------------------------
// Service / materials
// --------------------------------------------------

func (r *EventGormRepository) GetService(
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

func (r *EventGormRepository) ListServiceMaterials(
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

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *EventGormRepository) GetClientForUpdate(
	ctx context.Context,
	companyID uuid.UUID,
	clientID uuid.UUID,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND company_id = ?", clientID, companyID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *EventGormRepository) UpdateClient(
	ctx context.Context,
	cl *models.Client,
) error {
	return r.db.WithContext(ctx).Save(cl).Error
}

// --------------------------------------------------
// Financial ledger
// --------------------------------------------------

func (r *EventGormRepository) InsertFinancialMovement(
	ctx context.Context,
	fm *models.FinancialMovement,
) error {
	return r.db.WithContext(ctx).Create(fm).Error
}

// --------------------------------------------------
// Inventory writer (liquidação baixa estoque na mesma tx)
// --------------------------------------------------

func (r *EventGormRepository) GetProductForUpdate(
	ctx context.Context,
	companyID uuid.UUID,
	productID uuid.UUID,
) (*models.Product, error) {
	return (&InventoryGormRepository{db: r.db}).GetProductForUpdate(ctx, companyID, productID)
}

func (r *EventGormRepository) UpdateProduct(
	ctx context.Context,
	p *models.Product,
) error {
	return (&InventoryGormRepository{db: r.db}).UpdateProduct(ctx, p)
}

func (r *EventGormRepository) InsertMovement(
	ctx context.Context,
	mov *models.ProductMovement,
) error {
	return (&InventoryGormRepository{db: r.db}).InsertMovement(ctx, mov)
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *EventGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&EventGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*EventGormRepository)(nil)
