package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/organizeja/gestor-api/internal/audit"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/middleware"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/storage"
	"github.com/organizeja/gestor-api/internal/validators"
)

type CompanyHandler struct {
	db    *gorm.DB
	logos *storage.LogoStore
	audit *audit.Dispatcher
}

func NewCompanyHandler(db *gorm.DB, logos *storage.LogoStore, dispatcher *audit.Dispatcher) *CompanyHandler {
	return &CompanyHandler{db: db, logos: logos, audit: dispatcher}
}

// --------- Requests ---------

type UpdateCompanyRequest struct {
	Name    *string `json:"name,omitempty"`
	CNPJ    *string `json:"cnpj,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`
}

// --------- Handlers ---------

func (h *CompanyHandler) Get(c *gin.Context) {
	t := middleware.TenantFrom(c)

	var company models.Company
	if err := h.db.First(&company, "id = ?", t.CompanyID).Error; err != nil {
		httperr.Internal(c, "company_not_found", "Empresa não encontrada.")
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	t := middleware.TenantFrom(c)

	if !t.CanManageCompany() {
		httperr.Forbidden(c, "forbidden", "Apenas owner/admin alteram a empresa.")
		return
	}

	var company models.Company
	if err := h.db.First(&company, "id = ?", t.CompanyID).Error; err != nil {
		httperr.Internal(c, "company_not_found", "Empresa não encontrada.")
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.CNPJ != nil {
		if !validators.IsCNPJValid(*req.CNPJ) {
			httperr.BadRequest(c, "invalid_cnpj", "CNPJ inválido.")
			return
		}
		company.CNPJ = *req.CNPJ
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.City != nil {
		company.City = *req.City
	}
	if req.State != nil {
		company.State = *req.State
	}
	if req.ZipCode != nil {
		company.ZipCode = *req.ZipCode
	}

	if err := h.db.Save(&company).Error; err != nil {
		httperr.Internal(c, "failed_to_update_company", "Erro ao atualizar a empresa.")
		return
	}

	h.audit.Dispatch(audit.Event{
		CompanyID: t.CompanyID,
		UserID:    &t.UserID,
		Action:    "company_updated",
		Entity:    "company",
		EntityID:  &company.ID,
	})

	c.JSON(http.StatusOK, company)
}

// UploadLogo recebe multipart ("logo"), converte para webp e grava no
// bucket; a URL pública volta no corpo e fica em logo_url.
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	t := middleware.TenantFrom(c)

	if !t.CanManageCompany() {
		httperr.Forbidden(c, "forbidden", "Apenas owner/admin alteram a empresa.")
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo 'logo'.")
		return
	}
	if fileHeader.Size > storage.MaxLogoBytes {
		httperr.BadRequest(c, "file_too_large", "Logo acima do limite de 5MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o arquivo.")
		return
	}
	defer file.Close()

	url, err := h.logos.Upload(c.Request.Context(), t.CompanyID, file)
	if err != nil {
		if _, ok := httperr.AsBusiness(err); ok {
			writeBusinessError(c, err)
			return
		}
		httperr.Internal(c, "failed_to_upload_logo", "Erro ao enviar a logo.")
		return
	}

	if err := h.db.Model(&models.Company{}).
		Where("id = ?", t.CompanyID).
		Update("logo_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_company", "Erro ao gravar a URL da logo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		CompanyID: t.CompanyID,
		UserID:    &t.UserID,
		Action:    "company_logo_updated",
		Entity:    "company",
		EntityID:  &t.CompanyID,
	})

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
