package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	FinancialFaturamento = "faturamento"
	FinancialDespesa     = "despesa"
)

// Linha imutável do razão financeiro. É a única fonte de verdade
// financeira do sistema: o dashboard agrega sobre esta tabela e
// nada aqui é recalculado a partir de outras.
type FinancialMovement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`

	ClientID *uuid.UUID `gorm:"type:uuid" json:"client_id"`
	EventID  *uuid.UUID `gorm:"type:uuid;index" json:"event_id"`

	Type   string          `gorm:"size:20;not null" json:"type"`
	Amount decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`

	Description string    `gorm:"size:255" json:"description"`
	Category    string    `gorm:"size:50" json:"category"`
	Date        time.Time `gorm:"type:date;index" json:"date"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}
