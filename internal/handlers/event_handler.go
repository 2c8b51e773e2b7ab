package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainevent "github.com/organizeja/gestor-api/internal/domain/event"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/httpresp"
	"github.com/organizeja/gestor-api/internal/middleware"
	"github.com/organizeja/gestor-api/internal/timezone"
	ucevent "github.com/organizeja/gestor-api/internal/usecase/event"
)

type EventHandler struct {
	scheduler    *ucevent.ScheduleEvent
	updater      *ucevent.UpdateEvent
	statusSetter *ucevent.UpdateStatus
	completer    *ucevent.CompleteEvent
	canceller    *ucevent.CancelEvent
	byDate       *ucevent.ListEventsByDate
	byMonth      *ucevent.ListEventsByMonth
}

func NewEventHandler(
	scheduler *ucevent.ScheduleEvent,
	updater *ucevent.UpdateEvent,
	statusSetter *ucevent.UpdateStatus,
	completer *ucevent.CompleteEvent,
	canceller *ucevent.CancelEvent,
	byDate *ucevent.ListEventsByDate,
	byMonth *ucevent.ListEventsByMonth,
) *EventHandler {
	return &EventHandler{
		scheduler:    scheduler,
		updater:      updater,
		statusSetter: statusSetter,
		completer:    completer,
		canceller:    canceller,
		byDate:       byDate,
		byMonth:      byMonth,
	}
}

// --------- Requests ---------

type ScheduleEventRequest struct {
	ClientID  uuid.UUID `json:"client_id" binding:"required"`
	ServiceID uuid.UUID `json:"service_id" binding:"required"`

	Title       string `json:"title"`
	Description string `json:"description"`

	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date"`

	AllDay   bool   `json:"all_day"`
	Color    string `json:"color"`
	Location string `json:"location"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ConsumedItemRequest struct {
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	Quantidade decimal.Decimal `json:"quantidade" binding:"required"`
}

type CompleteEventRequest struct {
	Materials []ConsumedItemRequest `json:"materials"`
	Extras    []ConsumedItemRequest `json:"extras"`

	Price    decimal.Decimal `json:"price"`
	Discount decimal.Decimal `json:"discount"`
}

// --------- Handlers ---------

func (h *EventHandler) Create(c *gin.Context) {
	t := middleware.TenantFrom(c)

	var req ScheduleEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ev, err := h.scheduler.Execute(c.Request.Context(), t, scheduleInput(req))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ev)
}

func (h *EventHandler) Update(c *gin.Context) {
	t := middleware.TenantFrom(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req ScheduleEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ev, err := h.updater.Execute(c.Request.Context(), t, ucevent.UpdateEventInput{
		EventID:            id,
		ScheduleEventInput: scheduleInput(req),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ev)
}

// ListByDate responde GET /events?date=2026-09-01
func (h *EventHandler) ListByDate(c *gin.Context) {
	t := middleware.TenantFrom(c)

	raw := c.Query("date")
	if raw == "" {
		raw = timezone.Now().Format("2006-01-02")
	}

	date, err := time.ParseInLocation("2006-01-02", raw, timezone.Location(timezone.DefaultTimezone))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data no formato YYYY-MM-DD.")
		return
	}

	events, err := h.byDate.Execute(c.Request.Context(), t, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_events", "Erro ao listar eventos.")
		return
	}

	httpresp.List(c, events)
}

// ListByMonth responde GET /events/month?year=2026&month=9
func (h *EventHandler) ListByMonth(c *gin.Context) {
	t := middleware.TenantFrom(c)

	now := timezone.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	events, err := h.byMonth.Execute(c.Request.Context(), t, year, time.Month(month))
	if err != nil {
		httperr.Internal(c, "failed_to_list_events", "Erro ao listar eventos.")
		return
	}

	httpresp.List(c, events)
}

func (h *EventHandler) UpdateStatus(c *gin.Context) {
	t := middleware.TenantFrom(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ev, err := h.statusSetter.Execute(c.Request.Context(), t, id, domainevent.Status(req.Status))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) Complete(c *gin.Context) {
	t := middleware.TenantFrom(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req CompleteEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Price.IsNegative() || req.Discount.IsNegative() {
		httperr.BadRequest(c, "invalid_amount", "Preço e desconto não podem ser negativos.")
		return
	}

	ev, err := h.completer.Execute(c.Request.Context(), t, ucevent.CompleteEventInput{
		EventID:   id,
		Materials: consumedItems(req.Materials),
		Extras:    consumedItems(req.Extras),
		Price:     req.Price,
		Discount:  req.Discount,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) Cancel(c *gin.Context) {
	t := middleware.TenantFrom(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ev, err := h.canceller.Execute(c.Request.Context(), t, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ev)
}

// --------- Helpers ---------

func scheduleInput(req ScheduleEventRequest) ucevent.ScheduleEventInput {
	return ucevent.ScheduleEventInput{
		ClientID:    req.ClientID,
		ServiceID:   req.ServiceID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		AllDay:      req.AllDay,
		Color:       req.Color,
		Location:    req.Location,
	}
}

func consumedItems(items []ConsumedItemRequest) []ucevent.ConsumedItem {
	out := make([]ucevent.ConsumedItem, 0, len(items))
	for _, it := range items {
		out = append(out, ucevent.ConsumedItem{
			ProductID:  it.ProductID,
			Quantidade: it.Quantidade,
		})
	}
	return out
}
