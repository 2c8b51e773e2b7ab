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

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// A tabela de transições vive na camada de serviço; nenhum chamador
// externo consegue mover um evento terminal de volta para a agenda.
// completed não passa por aqui: a liquidação tem caminho próprio.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	t tenant.Context,
	eventID uuid.UUID,
	newStatus domain.Status,
) (*models.Event, error) {

	if !domain.IsValid(newStatus) {
		return nil, httperr.ErrBusiness("invalid_status")
	}
	if newStatus == domain.StatusCompleted {
		return nil, httperr.ErrBusiness("use_complete_endpoint")
	}

	ev, err := uc.repo.GetEvent(ctx, t.CompanyID, eventID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeEventNotFound)
	}

	if err := domain.Transition(ev, newStatus); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEvent(ctx, ev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: t.CompanyID,
		UserID:    &t.UserID,
		Action:    "event_status_updated",
		Entity:    "event",
		EntityID:  &ev.ID,
		Metadata:  map[string]any{"status": newStatus},
	})

	return ev, nil
}
