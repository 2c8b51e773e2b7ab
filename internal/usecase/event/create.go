package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/organizeja/gestor-api/internal/audit"
	domain "github.com/organizeja/gestor-api/internal/domain/event"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
)

// ======================================================
// INPUT
// ======================================================

type ScheduleEventInput struct {
	ClientID  uuid.UUID
	ServiceID uuid.UUID

	Title       string
	Description string

	StartDate time.Time
	// Zero => calculado a partir da duração do serviço
	EndDate time.Time

	AllDay   bool
	Color    string
	Location string
}

// ======================================================
// USE CASE
// ======================================================

type ScheduleEvent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewScheduleEvent(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ScheduleEvent {
	return &ScheduleEvent{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ScheduleEvent) Execute(
	ctx context.Context,
	t tenant.Context,
	in ScheduleEventInput,
) (*models.Event, error) {

	svc, err := uc.repo.GetService(ctx, t.CompanyID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	end := in.EndDate
	if end.IsZero() {
		end = domain.DefaultEnd(in.StartDate, svc)
	}

	ev := &models.Event{
		CompanyID:   t.CompanyID,
		ClientID:    &in.ClientID,
		ServiceID:   &in.ServiceID,
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     end,
		AllDay:      in.AllDay,
		Color:       in.Color,
		Location:    in.Location,
		Status:      string(domain.InitialStatus()),
		CreatedBy:   &t.UserID,
	}
	if ev.Title == "" {
		ev.Title = svc.Header
	}
	if ev.Color == "" {
		ev.Color = "sky"
	}

	if err := domain.ValidateSchedule(ev); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateEvent(ctx, ev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: t.CompanyID,
		UserID:    &t.UserID,
		Action:    "event_created",
		Entity:    "event",
		EntityID:  &ev.ID,
	})

	return ev, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateEventInput struct {
	EventID uuid.UUID
	ScheduleEventInput
}

type UpdateEvent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateEvent(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateEvent {
	return &UpdateEvent{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateEvent) Execute(
	ctx context.Context,
	t tenant.Context,
	in UpdateEventInput,
) (*models.Event, error) {

	ev, err := uc.repo.GetEvent(ctx, t.CompanyID, in.EventID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeEventNotFound)
	}

	// Eventos terminais não aceitam reagendamento.
	status := domain.Status(ev.Status)
	if status == domain.StatusCompleted || status == domain.StatusCancelled {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	svc, err := uc.repo.GetService(ctx, t.CompanyID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	end := in.EndDate
	if end.IsZero() {
		end = domain.DefaultEnd(in.StartDate, svc)
	}

	ev.ClientID = &in.ClientID
	ev.ServiceID = &in.ServiceID
	ev.Title = in.Title
	ev.Description = in.Description
	ev.StartDate = in.StartDate
	ev.EndDate = end
	ev.AllDay = in.AllDay
	ev.Location = in.Location
	if in.Color != "" {
		ev.Color = in.Color
	}

	if err := domain.ValidateSchedule(ev); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEvent(ctx, ev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: t.CompanyID,
		UserID:    &t.UserID,
		Action:    "event_updated",
		Entity:    "event",
		EntityID:  &ev.ID,
	})

	return ev, nil
}
