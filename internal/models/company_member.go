package models

import (
	"time"

	"github.com/google/uuid"
)

type CompanyMember struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:uniq_member,unique" json:"company_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:uniq_member,unique" json:"user_id"`

	Role string `gorm:"size:20;default:'member'" json:"role"`

	InvitedBy *uuid.UUID `gorm:"type:uuid" json:"invited_by"`
	JoinedAt  time.Time  `gorm:"autoCreateTime" json:"joined_at"`
}
