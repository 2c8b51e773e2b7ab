package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domaininv "github.com/organizeja/gestor-api/internal/domain/inventory"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/httpresp"
	"github.com/organizeja/gestor-api/internal/middleware"
	ucinventory "github.com/organizeja/gestor-api/internal/usecase/inventory"
)

type MovementHandler struct {
	repo     domaininv.Repository
	recorder *ucinventory.RecordMovement
}

func NewMovementHandler(repo domaininv.Repository, recorder *ucinventory.RecordMovement) *MovementHandler {
	return &MovementHandler{repo: repo, recorder: recorder}
}

// --------- Requests ---------

type CreateMovementRequest struct {
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	Type       string          `json:"type" binding:"required"`
	Quantidade decimal.Decimal `json:"quantidade" binding:"required"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	Note       string          `json:"note"`
}

// --------- Handlers ---------

func (h *MovementHandler) List(c *gin.Context) {
	t := middleware.TenantFrom(c)

	var productID *uuid.UUID
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_id", "product_id inválido.")
			return
		}
		productID = &id
	}

	movements, err := h.repo.ListMovements(c.Request.Context(), t.CompanyID, productID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_movements", "Erro ao listar movimentos.")
		return
	}

	httpresp.List(c, movements)
}

func (h *MovementHandler) Create(c *gin.Context) {
	t := middleware.TenantFrom(c)

	var req CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	mov, err := h.recorder.Execute(c.Request.Context(), t, ucinventory.RecordMovementInput{
		ProductID:  req.ProductID,
		Type:       req.Type,
		Quantidade: req.Quantidade,
		UnitCost:   req.UnitCost,
		Note:       req.Note,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, mov)
}
