package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PlanStatusActive   = "active"
	PlanStatusPastDue  = "past_due"
	PlanStatusCanceled = "canceled"
)

// Um registro por empresa; criado como "free" no onboarding e
// atualizado pelo webhook de pagamento.
type CompanyPlan struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey" json:"company_id"`

	Plan string `gorm:"size:20;default:'free'" json:"plan"`

	GatewayCustomerID     string `gorm:"size:100;index" json:"gateway_customer_id"`
	GatewaySubscriptionID string `gorm:"size:100" json:"gateway_subscription_id"`

	Status           string     `gorm:"size:30;default:'active'" json:"status"`
	CurrentPeriodEnd *time.Time `json:"current_period_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
