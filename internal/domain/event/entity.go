package event

import (
	"time"

	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

const DefaultDurationMinutes = 60

func Transition(ev *models.Event, to Status) error {
	if !IsValidTransition(Status(ev.Status), to) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	ev.Status = string(to)
	return nil
}

func Complete(ev *models.Event, now time.Time) error {
	if err := CanComplete(Status(ev.Status)); err != nil {
		return err
	}
	ev.Status = string(StatusCompleted)
	ev.SettledAt = &now
	return nil
}

func Cancel(ev *models.Event) error {
	if err := CanCancel(Status(ev.Status)); err != nil {
		return err
	}
	ev.Status = string(StatusCancelled)
	return nil
}

// ValidateSchedule aplica as regras de criação/edição: cliente e
// serviço obrigatórios, fim estritamente depois do início (exceto
// dia inteiro).
func ValidateSchedule(ev *models.Event) error {
	if ev.ClientID == nil {
		return httperr.ErrBusiness("missing_client")
	}
	if ev.ServiceID == nil {
		return httperr.ErrBusiness("missing_service")
	}
	if ev.Title == "" {
		return httperr.ErrBusiness("missing_title")
	}
	if !ev.AllDay && !ev.EndDate.After(ev.StartDate) {
		return httperr.ErrBusiness("invalid_period")
	}
	return nil
}

// DefaultEnd calcula o fim esperado a partir da duração do serviço.
// O chamador ainda pode sobrescrever o horário manualmente.
func DefaultEnd(start time.Time, svc *models.Service) time.Time {
	minutes := DefaultDurationMinutes
	if svc != nil && svc.DurationMinutes > 0 {
		minutes = svc.DurationMinutes
	}
	return start.Add(time.Duration(minutes) * time.Minute)
}
