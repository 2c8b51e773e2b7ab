package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/organizeja/gestor-api/internal/models"
	"github.com/organizeja/gestor-api/internal/tenant"
)

// RequireFeature barra o acesso quando o plano da empresa não
// libera a funcionalidade. Empresa sem registro de plano conta
// como free.
func RequireFeature(db *gorm.DB, feature tenant.Feature) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := TenantFrom(c)

		plan := tenant.PlanFree
		var cp models.CompanyPlan
		if err := db.First(&cp, "company_id = ?", t.CompanyID).Error; err == nil {
			plan = tenant.Plan(cp.Plan)
		}

		if !tenant.CanAccess(plan, feature) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "plan_upgrade_required",
				"plan":  string(plan),
			})
			return
		}

		c.Next()
	}
}
