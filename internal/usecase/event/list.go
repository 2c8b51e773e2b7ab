package event

import (
	"context"
	"time"

	domain "github.com/organizeja/gestor-api/internal/domain/event"
	"github.com/organizeja/gestor-api/internal/dto"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
	"github.com/organizeja/gestor-api/internal/timezone"
)

type ListEventsByDate struct {
	repo domain.Repository
}

func NewListEventsByDate(repo domain.Repository) *ListEventsByDate {
	return &ListEventsByDate{repo: repo}
}

func (uc *ListEventsByDate) Execute(
	ctx context.Context,
	t tenant.Context,
	date time.Time,
) ([]dto.EventListDTO, error) {

	start, end := timezone.DayRange(date)

	events, err := uc.repo.ListEventsForPeriod(ctx, t.CompanyID, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTO(events), nil
}

type ListEventsByMonth struct {
	repo domain.Repository
}

func NewListEventsByMonth(repo domain.Repository) *ListEventsByMonth {
	return &ListEventsByMonth{repo: repo}
}

func (uc *ListEventsByMonth) Execute(
	ctx context.Context,
	t tenant.Context,
	year int,
	month time.Month,
) ([]dto.EventListDTO, error) {

	start, end := timezone.MonthRange(year, month)

	events, err := uc.repo.ListEventsForPeriod(ctx, t.CompanyID, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTO(events), nil
}

func toListDTO(events []models.Event) []dto.EventListDTO {
	out := make([]dto.EventListDTO, 0, len(events))
	for _, ev := range events {
		item := dto.EventListDTO{
			ID:        ev.ID,
			Title:     ev.Title,
			StartDate: ev.StartDate,
			EndDate:   ev.EndDate,
			AllDay:    ev.AllDay,
			Color:     ev.Color,
			Status:    ev.Status,
		}
		if ev.Client != nil {
			item.ClientName = ev.Client.Nome
		}
		if ev.Service != nil {
			item.ServiceName = ev.Service.Header
		}
		out = append(out, item)
	}
	return out
}
