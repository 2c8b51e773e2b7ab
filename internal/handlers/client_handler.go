package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/middleware"
	"github.com/organizeja/gestor-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Categoria string `json:"categoria"`
}

type UpdateClientRequest struct {
	Nome      *string `json:"nome,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Categoria *string `json:"categoria,omitempty"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	t := middleware.TenantFrom(c)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	categoria := strings.TrimSpace(c.Query("categoria"))

	q := h.db.Where("company_id = ?", t.CompanyID)

	if categoria != "" {
		q = q.Where("categoria = ?", categoria)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?", like, like, like)
	}

	var clients []models.Client
	if err := q.
		Order("nome ASC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	t := middleware.TenantFrom(c)

	client, ok := h.findClient(c, t.CompanyID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	t := middleware.TenantFrom(c)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	categoria := req.Categoria
	if categoria == "" {
		categoria = "Novo"
	}

	client := models.Client{
		CompanyID: t.CompanyID,
		Nome:      req.Nome,
		Phone:     req.Phone,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Categoria: categoria,
		CreatedBy: &t.UserID,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	t := middleware.TenantFrom(c)

	client, ok := h.findClient(c, t.CompanyID)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Nome != nil {
		client.Nome = *req.Nome
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Categoria != nil {
		client.Categoria = *req.Categoria
	}

	if err := h.db.Save(client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	t := middleware.TenantFrom(c)

	client, ok := h.findClient(c, t.CompanyID)
	if !ok {
		return
	}

	// Cliente com histórico de eventos não é removido.
	var count int64
	h.db.Model(&models.Event{}).
		Where("company_id = ? AND client_id = ?", t.CompanyID, client.ID).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "client_has_events", "Cliente possui eventos vinculados.")
		return
	}

	if err := h.db.Delete(client).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao remover cliente.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ClientHandler) findClient(c *gin.Context, companyID uuid.UUID) (*models.Client, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return nil, false
	}

	var client models.Client
	if err := h.db.
		Where("id = ? AND company_id = ?", id, companyID).
		First(&client).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_client", "Erro ao buscar cliente.")
		return nil, false
	}

	return &client, true
}
