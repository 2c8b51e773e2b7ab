package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/organizeja/gestor-api/internal/audit"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/middleware"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
)

type InviteHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewInviteHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *InviteHandler {
	return &InviteHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type CreateInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

// --------- Handlers ---------

// Create vincula um usuário já cadastrado à empresa do convidante.
// 403 para quem não é owner/admin, 404 quando o e-mail não existe,
// 409 quando o vínculo já existe (unique violation do Postgres).
func (h *InviteHandler) Create(c *gin.Context) {
	t := middleware.TenantFrom(c)

	if !t.CanManageCompany() {
		httperr.Forbidden(c, "forbidden", "Apenas owner/admin convidam membros.")
		return
	}

	var req CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	role := req.Role
	if role == "" {
		role = tenant.RoleMember
	}
	if role != tenant.RoleAdmin && role != tenant.RoleMember {
		httperr.BadRequest(c, "invalid_role", "Papel deve ser admin ou member.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "Nenhum usuário com esse e-mail.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro ao buscar usuário.")
		return
	}

	member := models.CompanyMember{
		CompanyID: t.CompanyID,
		UserID:    user.ID,
		Role:      role,
		InvitedBy: &t.UserID,
	}

	if err := h.db.Create(&member).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			httperr.Conflict(c, "already_member", "Usuário já faz parte da empresa.")
			return
		}
		httperr.Internal(c, "failed_to_create_member", "Erro ao criar vínculo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		CompanyID: t.CompanyID,
		UserID:    &t.UserID,
		Action:    "member_invited",
		Entity:    "company_member",
		EntityID:  &member.ID,
		Metadata:  map[string]any{"email": email, "role": role},
	})

	c.JSON(http.StatusCreated, member)
}

func (h *InviteHandler) ListMembers(c *gin.Context) {
	t := middleware.TenantFrom(c)

	var members []models.CompanyMember
	if err := h.db.
		Where("company_id = ?", t.CompanyID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {

		httperr.Internal(c, "failed_to_list_members", "Erro ao listar membros.")
		return
	}

	c.JSON(http.StatusOK, members)
}
