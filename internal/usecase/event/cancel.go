package event

import (
	"context"

	"github.com/google/uuid"

	"github.com/organizeja/gestor-api/internal/audit"
	domain "github.com/organizeja/gestor-api/internal/domain/event"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
)

type CancelEvent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelEvent(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelEvent {
	return &CancelEvent{
		repo:  repo,
		audit: audit,
	}
}

// Cancelamento não estorna estoque nem razão financeiro, mesmo que
// o evento tenha chegado a confirmed.
func (uc *CancelEvent) Execute(
	ctx context.Context,
	t tenant.Context,
	eventID uuid.UUID,
) (*models.Event, error) {

	ev, err := uc.repo.GetEvent(ctx, t.CompanyID, eventID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeEventNotFound)
	}

	if err := domain.Cancel(ev); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEvent(ctx, ev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: t.CompanyID,
		UserID:    &t.UserID,
		Action:    "event_cancelled",
		Entity:    "event",
		EntityID:  &ev.ID,
	})

	return ev, nil
}
