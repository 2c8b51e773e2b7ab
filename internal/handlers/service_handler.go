package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domaincatalog "github.com/organizeja/gestor-api/internal/domain/catalog"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/middleware"
	"github.com/organizeja/gestor-api/internal/models"
	uccatalog "github.com/organizeja/gestor-api/internal/usecase/catalog"
)

type ServiceHandler struct {
	db           *gorm.DB
	catalogRepo  domaincatalog.Repository
	setMaterials *uccatalog.SetMaterials
	estimator    *uccatalog.EstimateCost
}

func NewServiceHandler(
	db *gorm.DB,
	catalogRepo domaincatalog.Repository,
	setMaterials *uccatalog.SetMaterials,
	estimator *uccatalog.EstimateCost,
) *ServiceHandler {
	return &ServiceHandler{
		db:           db,
		catalogRepo:  catalogRepo,
		setMaterials: setMaterials,
		estimator:    estimator,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Header string `json:"header" binding:"required"`
	Type   string `json:"type"`

	Target          *decimal.Decimal `json:"target"`
	DurationMinutes int              `json:"duration_minutes"`
	Description     string           `json:"description"`
}

type UpdateServiceRequest struct {
	Header *string `json:"header,omitempty"`
	Type   *string `json:"type,omitempty"`

	Target          *decimal.Decimal `json:"target,omitempty"`
	DurationMinutes *int             `json:"duration_minutes,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Status          *string          `json:"status,omitempty"`
}

type MaterialRequest struct {
	ProductID  uuid.UUID       `json:"product_id" binding:"required"`
	Quantidade decimal.Decimal `json:"quantidade" binding:"required"`
}

type SetMaterialsRequest struct {
	Materials []MaterialRequest `json:"materials"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	t := middleware.TenantFrom(c)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	status := strings.TrimSpace(c.Query("status"))

	q := h.db.Where("company_id = ?", t.CompanyID)

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(header) LIKE ? OR LOWER(type) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.
		Order("header ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	t := middleware.TenantFrom(c)

	svc, ok := h.findService(c, t.CompanyID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	t := middleware.TenantFrom(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	svc := models.Service{
		CompanyID:       t.CompanyID,
		Header:          req.Header,
		Type:            req.Type,
		Status:          models.ServiceStatusAtivo,
		Target:          req.Target,
		DurationMinutes: duration,
		Description:     req.Description,
		CreatedBy:       &t.UserID,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	t := middleware.TenantFrom(c)

	svc, ok := h.findService(c, t.CompanyID)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Header != nil {
		svc.Header = *req.Header
	}
	if req.Type != nil {
		svc.Type = *req.Type
	}
	if req.Target != nil {
		svc.Target = req.Target
	}
	if req.DurationMinutes != nil && *req.DurationMinutes > 0 {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Status != nil {
		if *req.Status != models.ServiceStatusAtivo && *req.Status != models.ServiceStatusInativo {
			httperr.BadRequest(c, "invalid_status", "Status deve ser Ativo ou Inativo.")
			return
		}
		svc.Status = *req.Status
	}

	if err := h.db.Save(svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	c.JSON(http.StatusOK, svc)
}

// Delete desativa o serviço; a remoção definitiva só é aceita para
// serviços já Inativos.
func (h *ServiceHandler) Delete(c *gin.Context) {
	t := middleware.TenantFrom(c)

	svc, ok := h.findService(c, t.CompanyID)
	if !ok {
		return
	}

	if svc.Status != models.ServiceStatusInativo {
		if err := h.db.Model(svc).
			Update("status", models.ServiceStatusInativo).Error; err != nil {
			httperr.Internal(c, "failed_to_delete_service", "Erro ao desativar serviço.")
			return
		}
		c.Status(http.StatusNoContent)
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("company_id = ? AND service_id = ?", t.CompanyID, svc.ID).
			Delete(&models.ServiceMaterial{}).Error; err != nil {
			return err
		}
		return tx.Delete(svc).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- Materiais ---------

func (h *ServiceHandler) GetMaterials(c *gin.Context) {
	t := middleware.TenantFrom(c)

	svc, ok := h.findService(c, t.CompanyID)
	if !ok {
		return
	}

	materials, err := h.catalogRepo.ListMaterials(c.Request.Context(), t.CompanyID, svc.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_materials", "Erro ao listar materiais.")
		return
	}

	c.JSON(http.StatusOK, materials)
}

func (h *ServiceHandler) PutMaterials(c *gin.Context) {
	t := middleware.TenantFrom(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req SetMaterialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rows := make([]models.ServiceMaterial, 0, len(req.Materials))
	for _, m := range req.Materials {
		// Snapshot do custo médio corrente do produto.
		var product models.Product
		if err := h.db.
			Where("id = ? AND company_id = ?", m.ProductID, t.CompanyID).
			First(&product).Error; err != nil {
			httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
			return
		}

		rows = append(rows, models.ServiceMaterial{
			ProductID:  m.ProductID,
			Quantidade: m.Quantidade,
			UnitCost:   product.CostPrice,
		})
	}

	if err := h.setMaterials.Execute(c.Request.Context(), t, id, rows); err != nil {
		writeBusinessError(c, err)
		return
	}

	materials, err := h.catalogRepo.ListMaterials(c.Request.Context(), t.CompanyID, id)
	if err != nil {
		httperr.Internal(c, "failed_to_list_materials", "Erro ao listar materiais.")
		return
	}

	c.JSON(http.StatusOK, materials)
}

func (h *ServiceHandler) Estimate(c *gin.Context) {
	t := middleware.TenantFrom(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	estimate, err := h.estimator.Execute(c.Request.Context(), t, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}

func (h *ServiceHandler) findService(c *gin.Context, companyID uuid.UUID) (*models.Service, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return nil, false
	}

	var svc models.Service
	if err := h.db.
		Where("id = ? AND company_id = ?", id, companyID).
		First(&svc).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return nil, false
	}

	return &svc, true
}
