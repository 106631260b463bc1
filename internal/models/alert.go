package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertSource - источник, породивший тревогу
type AlertSource string

const (
	SourceApp      AlertSource = "app"
	SourceGeofence AlertSource = "geofence"
	SourceSwitch   AlertSource = "switch"
	SourceManual   AlertSource = "manual"
)

// AlertStatus - статус обработки тревоги
type AlertStatus string

const (
	StatusPending  AlertStatus = "pending"
	StatusAccepted AlertStatus = "accepted"
	StatusRejected AlertStatus = "rejected"
	StatusResolved AlertStatus = "resolved"
)

// Institute - организация, которой принадлежат тревоги и получатели
type Institute struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AlertType - справочник типов тревог (пожар, наводнение и т.д.)
type AlertType struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon string    `json:"icon,omitempty"`
}

// AlertEvent - запись о тревоге. Создается внешним путем записи,
// само ядро диспетчеризации ее никогда не изменяет.
type AlertEvent struct {
	ID             uuid.UUID   `json:"id"`
	Source         AlertSource `json:"source"`
	Name           string      `json:"name"`
	PrimaryPhone   string      `json:"primary_phone"`
	SecondaryPhone string      `json:"secondary_phone,omitempty"`
	AlertTypeID    *uuid.UUID  `json:"alert_type_id,omitempty"`
	AlertTypeName  string      `json:"alert_type_name,omitempty"`
	Latitude       float64     `json:"latitude"`
	Longitude      float64     `json:"longitude"`
	Datetime       time.Time   `json:"datetime"`
	Image          string      `json:"image,omitempty"`
	Remarks        string      `json:"remarks,omitempty"`
	Status         AlertStatus `json:"status"`
	InstituteID    uuid.UUID   `json:"institute_id"`
	InstituteName  string      `json:"institute_name,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// AlertTypeDisplay возвращает отображаемое имя типа тревоги
func (a *AlertEvent) AlertTypeDisplay() string {
	if a.AlertTypeName == "" {
		return "Unknown"
	}
	return a.AlertTypeName
}

// InstituteDisplay возвращает отображаемое имя института
func (a *AlertEvent) InstituteDisplay() string {
	if a.InstituteName == "" {
		return "Unknown Institute"
	}
	return a.InstituteName
}
