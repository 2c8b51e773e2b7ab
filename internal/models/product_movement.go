package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MovementEntrada = "entrada"
	MovementSaida   = "saida"
)

// Registro imutável; nunca é alterado depois de criado.
// Para saída, UnitCost carrega o custo médio vigente no momento
// da baixa (base de custo consumida).
type ProductMovement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`

	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	Type       string          `gorm:"size:10;not null" json:"type"`
	Quantidade decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantidade"`
	UnitCost   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"unit_cost"`

	Note string `gorm:"size:255" json:"note"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}
