package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Geofence - геозона института с границей в формате GeoJSON
// (Polygon/MultiPolygon) либо в одном из унаследованных форматов.
type Geofence struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	InstituteID uuid.UUID       `json:"institute_id"`
	Boundary    json.RawMessage `json:"boundary"`
}

// RegionScope - область действия получателя по геозонам.
// Явное тегированное представление: либо глобально (без ограничений),
// либо конкретный набор геозон.
type RegionScope struct {
	Global    bool
	RegionIDs []uuid.UUID
}

// GlobalRegions возвращает область действия без ограничений по геозонам
func GlobalRegions() RegionScope {
	return RegionScope{Global: true}
}

// SpecificRegions возвращает область действия, ограниченную набором геозон
func SpecificRegions(ids []uuid.UUID) RegionScope {
	return RegionScope{RegionIDs: ids}
}

// Matches сообщает, пересекается ли область действия с набором
// совпавших геозон. Глобальная область совпадает всегда.
func (s RegionScope) Matches(matched map[uuid.UUID]struct{}) bool {
	if s.Global {
		return true
	}
	for _, id := range s.RegionIDs {
		if _, ok := matched[id]; ok {
			return true
		}
	}
	return false
}

// TypeScope - область действия получателя по типам тревог.
type TypeScope struct {
	Global  bool
	TypeIDs []uuid.UUID
}

// GlobalTypes возвращает область действия без ограничений по типам
func GlobalTypes() TypeScope {
	return TypeScope{Global: true}
}

// SpecificTypes возвращает область действия, ограниченную набором типов
func SpecificTypes(ids []uuid.UUID) TypeScope {
	return TypeScope{TypeIDs: ids}
}

// Matches сообщает, входит ли тип тревоги в область действия.
// Глобальная область совпадает всегда, в том числе для тревог без типа.
func (s TypeScope) Matches(typeID *uuid.UUID) bool {
	if s.Global {
		return true
	}
	if typeID == nil {
		return false
	}
	for _, id := range s.TypeIDs {
		if id == *typeID {
			return true
		}
	}
	return false
}

// Radar - экран оповещения с токеном доставки push-уведомлений.
// Радар получает тревогу, если хотя бы одна из его геозон содержит точку.
type Radar struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	InstituteID uuid.UUID   `json:"institute_id"`
	Token       string      `json:"token"`
	RegionIDs   []uuid.UUID `json:"region_ids"`
}

// Contact - контакт для SMS-оповещения с областями действия по геозонам и типам
type Contact struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	InstituteID uuid.UUID   `json:"institute_id"`
	SMSEnabled  bool        `json:"is_sms"`
	CallEnabled bool        `json:"is_call"`
	Regions     RegionScope `json:"-"`
	Types       TypeScope   `json:"-"`
}

// Buzzer - сирена с управляемым устройством и задержкой автоотключения.
// Глобальных сирен не бывает: нужна хотя бы одна совпавшая геозона.
type Buzzer struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	InstituteID  uuid.UUID   `json:"institute_id"`
	DevicePhone  string      `json:"device_phone"`
	DelaySeconds int         `json:"delay_seconds"`
	RegionIDs    []uuid.UUID `json:"region_ids"`
}

// AlertSwitch - физическая тревожная кнопка, привязанная к устройству
type AlertSwitch struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	InstituteID    uuid.UUID `json:"institute_id"`
	DevicePhone    string    `json:"device_phone"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	TriggerRadius  int       `json:"trigger_radius"`
	PrimaryPhone   string    `json:"primary_phone"`
	SecondaryPhone string    `json:"secondary_phone,omitempty"`
}
