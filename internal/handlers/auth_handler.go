package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/organizeja/gestor-api/internal/config"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
	"github.com/organizeja/gestor-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	CompanyName  string `json:"company_name" binding:"required"`
	CompanyCNPJ  string `json:"company_cnpj"`
	CompanyPhone string `json:"company_phone"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	var user models.User
	var company models.Company

	// Empresa, dono, vínculo e plano free saem numa transação só.
	err = h.db.Transaction(func(tx *gorm.DB) error {
		user = models.User{
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hashed),
			Phone:        req.Phone,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		company = models.Company{
			OwnerID: user.ID,
			Name:    req.CompanyName,
			CNPJ:    req.CompanyCNPJ,
			Phone:   req.CompanyPhone,
			Email:   email,
		}
		if err := tx.Create(&company).Error; err != nil {
			return err
		}

		member := models.CompanyMember{
			CompanyID: company.ID,
			UserID:    user.ID,
			Role:      tenant.RoleOwner,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		plan := models.CompanyPlan{
			CompanyID: company.ID,
			Plan:      string(tenant.PlanFree),
			Status:    models.PlanStatusActive,
		}
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("current_company_id", company.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_register"})
		return
	}

	token, err := h.generateToken(user.ID, company.ID, tenant.RoleOwner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
		},
		"company": gin.H{
			"id":    company.ID,
			"name":  company.Name,
			"cnpj":  company.CNPJ,
			"phone": company.Phone,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if user.CurrentCompanyID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no_company"})
		return
	}

	var member models.CompanyMember
	if err := h.db.
		Where("company_id = ? AND user_id = ?", *user.CurrentCompanyID, user.ID).
		First(&member).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not_a_member"})
		return
	}

	var company models.Company
	if err := h.db.First(&company, "id = ?", *user.CurrentCompanyID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	token, err := h.generateToken(user.ID, company.ID, member.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  member.Role,
		},
		"company": gin.H{
			"id":    company.ID,
			"name":  company.Name,
			"cnpj":  company.CNPJ,
			"phone": company.Phone,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(userID, companyID uuid.UUID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":       userID.String(),
		"companyId": companyID.String(),
		"role":      role,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
