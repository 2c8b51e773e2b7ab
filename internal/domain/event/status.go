package event

import "github.com/organizeja/gestor-api/internal/httperr"

// ===============================
// Event Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Transições válidas. completed e cancelled são terminais:
// nenhuma atualização pública consegue revertê-los.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusCompleted, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func IsValid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// IsValidTransition decide a legalidade da mudança de status na
// camada de serviço, independente de qualquer UI.
func IsValidTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func CanComplete(current Status) error {
	if !IsValidTransition(current, StatusCompleted) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanCancel(current Status) error {
	if !IsValidTransition(current, StatusCancelled) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
