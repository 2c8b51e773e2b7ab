package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente da empresa, sem login próprio
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`

	Nome  string `gorm:"size:100;not null" json:"nome"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	Categoria string `gorm:"size:20;default:'Novo'" json:"categoria"`

	// Acumulado vitalício; nunca decresce
	TotalGasto        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_gasto"`
	UltimoAtendimento *time.Time      `json:"ultimo_atendimento"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
