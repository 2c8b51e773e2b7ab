package event

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/models"
)

func TestIsValidTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusScheduled, StatusConfirmed, true},
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusScheduled, false},
		{StatusCompleted, StatusScheduled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range cases {
		if got := IsValidTransition(tc.from, tc.to); got != tc.ok {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestTerminalStatusesNeverLeave(t *testing.T) {
	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		for _, to := range []Status{StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled} {
			ev := &models.Event{Status: string(terminal)}
			if err := Transition(ev, to); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
				t.Fatalf("%s -> %s: expected invalid_state, got %v", terminal, to, err)
			}
			if ev.Status != string(terminal) {
				t.Fatalf("status mutated on rejected transition: %s", ev.Status)
			}
		}
	}
}

func TestComplete_SetsSettledAt(t *testing.T) {
	now := time.Now()
	ev := &models.Event{Status: string(StatusConfirmed)}

	if err := Complete(ev, now); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if ev.Status != string(StatusCompleted) {
		t.Fatalf("expected completed, got %s", ev.Status)
	}
	if ev.SettledAt == nil || !ev.SettledAt.Equal(now) {
		t.Fatalf("settled_at not recorded: %v", ev.SettledAt)
	}
}

func TestComplete_RejectsSecondCall(t *testing.T) {
	ev := &models.Event{Status: string(StatusScheduled)}

	if err := Complete(ev, time.Now()); err != nil {
		t.Fatalf("first complete failed: %v", err)
	}
	if err := Complete(ev, time.Now()); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("second complete should fail with invalid_state, got %v", err)
	}
}

func TestValidateSchedule(t *testing.T) {
	clientID := uuid.New()
	serviceID := uuid.New()
	start := time.Now()

	base := func() *models.Event {
		return &models.Event{
			ClientID:  &clientID,
			ServiceID: &serviceID,
			Title:     "Corte",
			StartDate: start,
			EndDate:   start.Add(30 * time.Minute),
		}
	}

	if err := ValidateSchedule(base()); err != nil {
		t.Fatalf("valid event rejected: %v", err)
	}

	ev := base()
	ev.ClientID = nil
	if err := ValidateSchedule(ev); !httperr.IsBusiness(err, "missing_client") {
		t.Fatalf("expected missing_client, got %v", err)
	}

	ev = base()
	ev.ServiceID = nil
	if err := ValidateSchedule(ev); !httperr.IsBusiness(err, "missing_service") {
		t.Fatalf("expected missing_service, got %v", err)
	}

	ev = base()
	ev.Title = ""
	if err := ValidateSchedule(ev); !httperr.IsBusiness(err, "missing_title") {
		t.Fatalf("expected missing_title, got %v", err)
	}

	ev = base()
	ev.EndDate = ev.StartDate
	if err := ValidateSchedule(ev); !httperr.IsBusiness(err, "invalid_period") {
		t.Fatalf("expected invalid_period, got %v", err)
	}

	// dia inteiro dispensa o período
	ev = base()
	ev.EndDate = ev.StartDate
	ev.AllDay = true
	if err := ValidateSchedule(ev); err != nil {
		t.Fatalf("all-day event rejected: %v", err)
	}
}

func TestDefaultEnd(t *testing.T) {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)

	svc := &models.Service{DurationMinutes: 90}
	if got := DefaultEnd(start, svc); !got.Equal(start.Add(90 * time.Minute)) {
		t.Fatalf("expected 90min end, got %v", got)
	}

	// serviço sem duração cai no default de 60
	if got := DefaultEnd(start, &models.Service{}); !got.Equal(start.Add(60 * time.Minute)) {
		t.Fatalf("expected 60min default, got %v", got)
	}
	if got := DefaultEnd(start, nil); !got.Equal(start.Add(60 * time.Minute)) {
		t.Fatalf("expected 60min default for nil service, got %v", got)
	}
}
