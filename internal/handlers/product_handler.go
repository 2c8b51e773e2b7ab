package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/middleware"
	"github.com/organizeja/gestor-api/internal/models"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Nome   string `json:"nome" binding:"required"`
	Codigo string `json:"codigo"`

	CategoriaID *uuid.UUID `json:"categoria_id"`

	Preco         decimal.Decimal `json:"preco"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`

	Unidade    string `json:"unidade"`
	Fornecedor string `json:"fornecedor"`
	Descricao  string `json:"descricao"`
}

type UpdateProductRequest struct {
	Nome   *string `json:"nome,omitempty"`
	Codigo *string `json:"codigo,omitempty"`

	CategoriaID *uuid.UUID `json:"categoria_id,omitempty"`

	Preco         *decimal.Decimal `json:"preco,omitempty"`
	EstoqueMinimo *decimal.Decimal `json:"estoque_minimo,omitempty"`

	Unidade    *string `json:"unidade,omitempty"`
	Fornecedor *string `json:"fornecedor,omitempty"`
	Descricao  *string `json:"descricao,omitempty"`
	Status     *string `json:"status,omitempty"`
}

var validUnits = map[string]bool{
	"un": true, "kg": true, "g": true, "L": true, "ml": true,
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	t := middleware.TenantFrom(c)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	status := strings.TrimSpace(c.Query("status"))
	lowStock := c.Query("low_stock") == "true"

	q := h.db.Where("company_id = ?", t.CompanyID)

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if lowStock {
		q = q.Where("status <> ? AND quantidade <= estoque_minimo", models.ProductStatusInativo)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(codigo) LIKE ?", like, like)
	}

	var products []models.Product
	if err := q.
		Preload("Categoria").
		Order("nome ASC").
		Find(&products).Error; err != nil {

		httperr.Internal(c, "failed_to_list_products", "Erro ao listar produtos.")
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	t := middleware.TenantFrom(c)

	product, ok := h.findProduct(c, t.CompanyID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	t := middleware.TenantFrom(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Quantidade.IsNegative() || req.EstoqueMinimo.IsNegative() {
		httperr.BadRequest(c, "invalid_quantity", "Quantidades não podem ser negativas.")
		return
	}

	unidade := req.Unidade
	if unidade == "" {
		unidade = "un"
	}
	if !validUnits[unidade] {
		httperr.BadRequest(c, "invalid_unit", "Unidade deve ser un, kg, g, L ou ml.")
		return
	}

	product := models.Product{
		CompanyID:     t.CompanyID,
		Nome:          req.Nome,
		Codigo:        req.Codigo,
		CategoriaID:   req.CategoriaID,
		Preco:         req.Preco,
		CostPrice:     req.CostPrice,
		Quantidade:    req.Quantidade,
		EstoqueMinimo: req.EstoqueMinimo,
		Unidade:       unidade,
		Fornecedor:    req.Fornecedor,
		Descricao:     req.Descricao,
		Status:        models.ProductStatusAtivo,
		CreatedBy:     &t.UserID,
	}
	if product.LowStock() {
		product.Status = models.ProductStatusEstoqueBaixo
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Erro ao criar produto.")
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	t := middleware.TenantFrom(c)

	product, ok := h.findProduct(c, t.CompanyID)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Nome != nil {
		product.Nome = *req.Nome
	}
	if req.Codigo != nil {
		product.Codigo = *req.Codigo
	}
	if req.CategoriaID != nil {
		product.CategoriaID = req.CategoriaID
	}
	if req.Preco != nil {
		product.Preco = *req.Preco
	}
	if req.EstoqueMinimo != nil {
		if req.EstoqueMinimo.IsNegative() {
			httperr.BadRequest(c, "invalid_quantity", "Estoque mínimo não pode ser negativo.")
			return
		}
		product.EstoqueMinimo = *req.EstoqueMinimo
	}
	if req.Unidade != nil {
		if !validUnits[*req.Unidade] {
			httperr.BadRequest(c, "invalid_unit", "Unidade deve ser un, kg, g, L ou ml.")
			return
		}
		product.Unidade = *req.Unidade
	}
	if req.Fornecedor != nil {
		product.Fornecedor = *req.Fornecedor
	}
	if req.Descricao != nil {
		product.Descricao = *req.Descricao
	}
	if req.Status != nil {
		if *req.Status != models.ProductStatusAtivo && *req.Status != models.ProductStatusInativo {
			httperr.BadRequest(c, "invalid_status", "Status deve ser Ativo ou Inativo.")
			return
		}
		product.Status = *req.Status
	}

	// Quantidade e cost_price só mudam via movimentos de estoque.
	if product.Status != models.ProductStatusInativo {
		if product.LowStock() {
			product.Status = models.ProductStatusEstoqueBaixo
		} else {
			product.Status = models.ProductStatusAtivo
		}
	}

	if err := h.db.Save(product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Erro ao atualizar produto.")
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	t := middleware.TenantFrom(c)

	product, ok := h.findProduct(c, t.CompanyID)
	if !ok {
		return
	}

	// Histórico de movimentos referencia o produto: só desativamos.
	if err := h.db.Model(product).
		Update("status", models.ProductStatusInativo).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_product", "Erro ao desativar produto.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) findProduct(c *gin.Context, companyID uuid.UUID) (*models.Product, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return nil, false
	}

	var product models.Product
	if err := h.db.
		Preload("Categoria").
		Where("id = ? AND company_id = ?", id, companyID).
		First(&product).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_product", "Erro ao buscar produto.")
		return nil, false
	}

	return &product, true
}

// ======================================================
// CATEGORIAS
// ======================================================

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	t := middleware.TenantFrom(c)

	var categories []models.ProductCategory
	if err := h.db.
		Where("company_id = ?", t.CompanyID).
		Order("name ASC").
		Find(&categories).Error; err != nil {

		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	t := middleware.TenantFrom(c)

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	category := models.ProductCategory{
		CompanyID:   t.CompanyID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Erro ao criar categoria.")
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	t := middleware.TenantFrom(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var count int64
	h.db.Model(&models.Product{}).
		Where("company_id = ? AND categoria_id = ?", t.CompanyID, id).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "category_in_use", "Categoria em uso por produtos.")
		return
	}

	if err := h.db.
		Where("id = ? AND company_id = ?", id, t.CompanyID).
		Delete(&models.ProductCategory{}).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_category", "Erro ao remover categoria.")
		return
	}

	c.Status(http.StatusNoContent)
}
