package models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`

	ClientID *uuid.UUID `gorm:"type:uuid" json:"client_id"`
	Client   *Client    `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	ServiceID *uuid.UUID `gorm:"type:uuid" json:"service_id"`
	Service   *Service   `gorm:"foreignKey:ServiceID" json:"service,omitempty"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"size:255" json:"description"`

	StartDate time.Time `gorm:"index" json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	AllDay    bool      `gorm:"default:false" json:"all_day"`
	Color     string    `gorm:"size:20;default:'sky'" json:"color"`
	Location  string    `gorm:"size:255" json:"location"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	// Preenchido uma única vez, quando a liquidação do evento
	// (baixa de estoque + lançamentos financeiros) é concluída.
	SettledAt *time.Time `json:"settled_at"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
