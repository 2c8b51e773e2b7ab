package event

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/organizeja/gestor-api/internal/domain/event"
	"github.com/organizeja/gestor-api/internal/models"
)

// fakeRepository guarda tudo em memória e imita o rollback da
// transação restaurando um snapshot quando fn devolve erro.
type fakeRepository struct {
	events   map[uuid.UUID]*models.Event
	products map[uuid.UUID]*models.Product
	clients  map[uuid.UUID]*models.Client
	services map[uuid.UUID]*models.Service

	stockMovements     []models.ProductMovement
	financialMovements []models.FinancialMovement
}

var _ domain.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		events:   map[uuid.UUID]*models.Event{},
		products: map[uuid.UUID]*models.Product{},
		clients:  map[uuid.UUID]*models.Client{},
		services: map[uuid.UUID]*models.Service{},
	}
}

var errNotFound = errors.New("not found")

// -------- Transaction --------

func (f *fakeRepository) Transaction(ctx context.Context, fn func(domain.Repository) error) error {
	snapshot := f.clone()
	if err := fn(f); err != nil {
		*f = *snapshot
		return err
	}
	return nil
}

func (f *fakeRepository) clone() *fakeRepository {
	c := newFakeRepository()
	for id, ev := range f.events {
		copied := *ev
		c.events[id] = &copied
	}
	for id, p := range f.products {
		copied := *p
		c.products[id] = &copied
	}
	for id, cl := range f.clients {
		copied := *cl
		c.clients[id] = &copied
	}
	for id, s := range f.services {
		copied := *s
		c.services[id] = &copied
	}
	c.stockMovements = append([]models.ProductMovement(nil), f.stockMovements...)
	c.financialMovements = append([]models.FinancialMovement(nil), f.financialMovements...)
	return c
}

// -------- Event --------

func (f *fakeRepository) CreateEvent(ctx context.Context, ev *models.Event) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	copied := *ev
	f.events[ev.ID] = &copied
	return nil
}

func (f *fakeRepository) GetEvent(ctx context.Context, companyID, eventID uuid.UUID) (*models.Event, error) {
	ev, ok := f.events[eventID]
	if !ok || ev.CompanyID != companyID {
		return nil, errNotFound
	}
	copied := *ev
	return &copied, nil
}

func (f *fakeRepository) GetEventForUpdate(ctx context.Context, companyID, eventID uuid.UUID) (*models.Event, error) {
	return f.GetEvent(ctx, companyID, eventID)
}

func (f *fakeRepository) UpdateEvent(ctx context.Context, ev *models.Event) error {
	copied := *ev
	f.events[ev.ID] = &copied
	return nil
}

func (f *fakeRepository) ListEventsForPeriod(ctx context.Context, companyID uuid.UUID, start, end time.Time) ([]models.Event, error) {
	var out []models.Event
	for _, ev := range f.events {
		if ev.CompanyID != companyID {
			continue
		}
		if !ev.StartDate.Before(start) && ev.StartDate.Before(end) {
			out = append(out, *ev)
		}
	}
	return out, nil
}

// -------- Service --------

func (f *fakeRepository) GetService(ctx context.Context, companyID, serviceID uuid.UUID) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok || svc.CompanyID != companyID {
		return nil, errNotFound
	}
	copied := *svc
	return &copied, nil
}

func (f *fakeRepository) ListServiceMaterials(ctx context.Context, companyID, serviceID uuid.UUID) ([]models.ServiceMaterial, error) {
	return nil, nil
}

// -------- Client --------

func (f *fakeRepository) GetClientForUpdate(ctx context.Context, companyID, clientID uuid.UUID) (*models.Client, error) {
	cl, ok := f.clients[clientID]
	if !ok || cl.CompanyID != companyID {
		return nil, errNotFound
	}
	return cl, nil
}

func (f *fakeRepository) UpdateClient(ctx context.Context, cl *models.Client) error {
	copied := *cl
	f.clients[cl.ID] = &copied
	return nil
}

// -------- Inventory writer --------

func (f *fakeRepository) GetProductForUpdate(ctx context.Context, companyID, productID uuid.UUID) (*models.Product, error) {
	p, ok := f.products[productID]
	if !ok || p.CompanyID != companyID {
		return nil, errNotFound
	}
	return p, nil
}

func (f *fakeRepository) UpdateProduct(ctx context.Context, p *models.Product) error {
	copied := *p
	f.products[p.ID] = &copied
	return nil
}

func (f *fakeRepository) InsertMovement(ctx context.Context, mov *models.ProductMovement) error {
	if mov.ID == uuid.Nil {
		mov.ID = uuid.New()
	}
	f.stockMovements = append(f.stockMovements, *mov)
	return nil
}

// -------- Financial ledger --------

func (f *fakeRepository) InsertFinancialMovement(ctx context.Context, fm *models.FinancialMovement) error {
	if fm.ID == uuid.Nil {
		fm.ID = uuid.New()
	}
	f.financialMovements = append(f.financialMovements, *fm)
	return nil
}
