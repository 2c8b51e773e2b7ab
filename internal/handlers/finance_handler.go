package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/httpresp"
	"github.com/organizeja/gestor-api/internal/middleware"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/timezone"
)

type FinanceHandler struct {
	db *gorm.DB
}

func NewFinanceHandler(db *gorm.DB) *FinanceHandler {
	return &FinanceHandler{db: db}
}

// --------- Requests ---------

type CreateFinancialMovementRequest struct {
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

// --------- Handlers ---------

func (h *FinanceHandler) List(c *gin.Context) {
	t := middleware.TenantFrom(c)

	q := h.db.Where("company_id = ?", t.CompanyID)

	if movType := c.Query("type"); movType != "" {
		q = q.Where("type = ?", movType)
	}
	if from := c.Query("from"); from != "" {
		if d, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("date >= ?", d)
		}
	}
	if to := c.Query("to"); to != "" {
		if d, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("date <= ?", d)
		}
	}

	var movements []models.FinancialMovement
	if err := q.
		Order("date DESC, created_at DESC").
		Find(&movements).Error; err != nil {

		httperr.Internal(c, "failed_to_list_movements", "Erro ao listar lançamentos.")
		return
	}

	httpresp.List(c, movements)
}

// Create registra um lançamento manual. Lançamentos de eventos saem
// só pela liquidação; aqui entram despesas e receitas avulsas.
func (h *FinanceHandler) Create(c *gin.Context) {
	t := middleware.TenantFrom(c)

	var req CreateFinancialMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Type != models.FinancialFaturamento && req.Type != models.FinancialDespesa {
		httperr.BadRequest(c, "invalid_type", "Tipo deve ser faturamento ou despesa.")
		return
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		httperr.BadRequest(c, "invalid_amount", "Valor deve ser positivo.")
		return
	}

	date := timezone.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, timezone.Location(timezone.DefaultTimezone))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data no formato YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	mov := models.FinancialMovement{
		CompanyID:   t.CompanyID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
		CreatedBy:   &t.UserID,
	}

	if err := h.db.Create(&mov).Error; err != nil {
		httperr.Internal(c, "failed_to_create_movement", "Erro ao criar lançamento.")
		return
	}

	httpresp.Created(c, mov)
}
