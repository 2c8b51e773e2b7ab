package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ServiceStatusAtivo   = "Ativo"
	ServiceStatusInativo = "Inativo"
)

type Service struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`

	Header string `gorm:"size:100;not null" json:"header"`
	Type   string `gorm:"size:50" json:"type"`
	Status string `gorm:"size:20;default:'Ativo'" json:"status"`

	// Preço alvo do serviço (nullable)
	Target *decimal.Decimal `gorm:"type:decimal(20,4)" json:"target"`

	DurationMinutes int    `gorm:"default:60" json:"duration_minutes"`
	Description     string `gorm:"size:255" json:"description"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceMaterial é a lista de materiais (produto + quantidade)
// consumida por execução do serviço. UnitCost é um snapshot do
// custo médio no momento do cadastro, usado só para estimativa.
type ServiceMaterial struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"service_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	Quantidade decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantidade"`
	UnitCost   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
