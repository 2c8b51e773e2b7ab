package audit

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Event struct {
	CompanyID uuid.UUID
	UserID    *uuid.UUID
	Action    string
	Entity    string
	EntityID  *uuid.UUID
	Metadata  any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.CompanyID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logrus.WithFields(logrus.Fields{
				"company_id": ev.CompanyID,
				"action":     ev.Action,
			}).Error("audit error: " + err.Error())
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia: descartamos audit, a API nunca quebra por isso
		logrus.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}
