package dto

import (
	"time"

	"github.com/google/uuid"
)

type EventListDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	AllDay      bool      `json:"all_day"`
	Color       string    `json:"color"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
}
