package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateAlertRequest DTO для создания тревоги
// @Description DTO для создания тревоги
type CreateAlertRequest struct {
	Source         string     `json:"source" validate:"required,oneof=app geofence switch manual"`
	Name           string     `json:"name" validate:"required,min=2,max=255"`
	PrimaryPhone   string     `json:"primary_phone" validate:"required,min=5,max=20"`
	SecondaryPhone string     `json:"secondary_phone,omitempty" validate:"omitempty,max=20"`
	AlertTypeID    *uuid.UUID `json:"alert_type_id,omitempty"`
	Latitude       float64    `json:"latitude" validate:"required,latitude"`
	Longitude      float64    `json:"longitude" validate:"required,longitude"`
	Datetime       time.Time  `json:"datetime,omitempty"`
	Image          string     `json:"image,omitempty"`
	Remarks        string     `json:"remarks,omitempty"`
	InstituteID    uuid.UUID  `json:"institute_id" validate:"required"`
}

// UpdateAlertRequest DTO для обновления статуса тревоги
// @Description DTO для обновления статуса тревоги
type UpdateAlertRequest struct {
	Status  string `json:"status" validate:"required,oneof=pending accepted rejected resolved"`
	Remarks string `json:"remarks,omitempty" validate:"omitempty,max=1000"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID             uuid.UUID  `json:"id"`
	Source         string     `json:"source"`
	Name           string     `json:"name"`
	PrimaryPhone   string     `json:"primary_phone"`
	SecondaryPhone string     `json:"secondary_phone,omitempty"`
	AlertTypeID    *uuid.UUID `json:"alert_type_id,omitempty"`
	AlertTypeName  string     `json:"alert_type_name,omitempty"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	Datetime       time.Time  `json:"datetime"`
	Image          string     `json:"image,omitempty"`
	Remarks        string     `json:"remarks,omitempty"`
	Status         string     `json:"status"`
	InstituteID    uuid.UUID  `json:"institute_id"`
	InstituteName  string     `json:"institute_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
