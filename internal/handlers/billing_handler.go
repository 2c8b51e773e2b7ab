package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/organizeja/gestor-api/internal/billing"
	"github.com/organizeja/gestor-api/internal/httperr"
	"github.com/organizeja/gestor-api/internal/middleware"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
)

type BillingHandler struct {
	db      *gorm.DB
	service *billing.Service
}

func NewBillingHandler(db *gorm.DB, service *billing.Service) *BillingHandler {
	return &BillingHandler{db: db, service: service}
}

// --------- Requests ---------

type CheckoutRequest struct {
	Plan string `json:"plan" binding:"required"`
}

type webhookBody struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// --------- Handlers ---------

func (h *BillingHandler) Checkout(c *gin.Context) {
	t := middleware.TenantFrom(c)

	if !t.CanManageCompany() {
		httperr.Forbidden(c, "forbidden", "Apenas owner/admin contratam planos.")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", t.UserID).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao buscar usuário.")
		return
	}

	result, err := h.service.CreateCheckout(c.Request.Context(), t, user.Email, tenant.Plan(req.Plan))
	if err != nil {
		if _, ok := httperr.AsBusiness(err); ok {
			writeBusinessError(c, err)
			return
		}
		logrus.Error("billing checkout failed: " + err.Error())
		httperr.Internal(c, "checkout_failed", "Erro ao criar o checkout.")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Webhook recebe as notificações do Mercado Pago. Assinatura
// inválida devolve 400; falha interna devolve 500 para o gateway
// reentregar depois.
func (h *BillingHandler) Webhook(c *gin.Context) {
	var body webhookBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Corpo inválido.")
		return
	}

	signature := c.GetHeader("x-signature")
	requestID := c.GetHeader("x-request-id")

	if !billing.VerifySignature(signature, requestID, body.Data.ID, h.service.WebhookSecret()) {
		httperr.BadRequest(c, "invalid_signature", "Assinatura inválida.")
		return
	}

	if body.Type != "subscription_preapproval" {
		c.Status(http.StatusOK)
		return
	}

	if err := h.service.HandleNotification(c.Request.Context(), body.Data.ID); err != nil {
		logrus.Error("billing webhook failed: " + err.Error())
		httperr.Internal(c, "webhook_failed", "Erro ao processar notificação.")
		return
	}

	c.Status(http.StatusOK)
}
