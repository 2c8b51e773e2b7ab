package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/organizeja/gestor-api/internal/middleware"
	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
	"github.com/organizeja/gestor-api/internal/timezone"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	t := middleware.TenantFrom(c)

	var user models.User
	if err := h.db.First(&user, "id = ?", t.UserID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	var company models.Company
	if err := h.db.First(&company, "id = ?", t.CompanyID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "company_not_found"})
		return
	}

	plan := string(tenant.PlanFree)
	var companyPlan models.CompanyPlan
	if err := h.db.First(&companyPlan, "company_id = ?", t.CompanyID).Error; err == nil {
		plan = companyPlan.Plan
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  t.Role,
		},
		"company": gin.H{
			"id":       company.ID,
			"name":     company.Name,
			"cnpj":     company.CNPJ,
			"phone":    company.Phone,
			"logo_url": company.LogoURL,
		},
		"plan": plan,
	})
}

// Dashboard agrega o razão financeiro do mês corrente mais alguns
// contadores. Nada aqui é recalculado de estoque ou eventos: a
// tabela financial_movements é a fonte.
func (h *MeHandler) Dashboard(c *gin.Context) {
	t := middleware.TenantFrom(c)

	now := timezone.Now()
	monthStart, monthEnd := timezone.MonthRange(now.Year(), now.Month())

	type totalRow struct {
		Type  string
		Total decimal.Decimal
	}

	var rows []totalRow
	if err := h.db.Model(&models.FinancialMovement{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("company_id = ? AND date >= ? AND date < ?", t.CompanyID, monthStart, monthEnd).
		Group("type").
		Scan(&rows).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_aggregate"})
		return
	}

	faturamento := decimal.Zero
	despesas := decimal.Zero
	for _, r := range rows {
		switch r.Type {
		case models.FinancialFaturamento:
			faturamento = r.Total
		case models.FinancialDespesa:
			despesas = r.Total
		}
	}

	var clientCount, productCount, lowStockCount, eventsToday int64
	h.db.Model(&models.Client{}).Where("company_id = ?", t.CompanyID).Count(&clientCount)
	h.db.Model(&models.Product{}).
		Where("company_id = ? AND status <> ?", t.CompanyID, models.ProductStatusInativo).
		Count(&productCount)
	h.db.Model(&models.Product{}).
		Where("company_id = ? AND status <> ? AND quantidade <= estoque_minimo",
			t.CompanyID, models.ProductStatusInativo).
		Count(&lowStockCount)

	dayStart, dayEnd := timezone.DayRange(now)
	h.db.Model(&models.Event{}).
		Where("company_id = ? AND start_date >= ? AND start_date < ?",
			t.CompanyID, dayStart, dayEnd).
		Count(&eventsToday)

	c.JSON(http.StatusOK, gin.H{
		"month": gin.H{
			"faturamento": faturamento,
			"despesas":    despesas,
			"resultado":   faturamento.Sub(despesas),
		},
		"clientes":      clientCount,
		"produtos":      productCount,
		"estoque_baixo": lowStockCount,
		"eventos_hoje":  eventsToday,
	})
}
