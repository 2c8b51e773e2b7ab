package models

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	CNPJ  string `gorm:"size:20" json:"cnpj"`
	Email string `gorm:"size:100" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:2" json:"state"`
	ZipCode string `gorm:"size:10" json:"zip_code"`

	LogoURL string `gorm:"size:255" json:"logo_url"`
	Status  string `gorm:"size:20;default:'Ativo'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
