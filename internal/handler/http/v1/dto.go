package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateHelpRequestForm DTO для подачи заявки (multipart form)
// @Description DTO для подачи заявки о помощи
type CreateHelpRequestForm struct {
	Longitude     float64 `form:"longitude" validate:"required,longitude"`
	Latitude      float64 `form:"latitude" validate:"required,latitude"`
	EmergencyType string  `form:"emergencyType" validate:"required,max=100"`
	VictimCount   string  `form:"victimCount" validate:"required,max=20"`
	MedicalInfo   string  `form:"medicalInfo" validate:"max=2000"`
	ContactNumber string  `form:"contactNumber" validate:"required,e164"`
}

// UpdateStatusRequest DTO для смены статуса заявки.
// Пустой статус допустим и означает "оставить текущий";
// непустые значения проверяются сервисом по закрытому перечню.
// @Description DTO для смены статуса заявки
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// NearbyQuery DTO для поиска незавершённых заявок рядом с точкой
// @Description DTO для поиска заявок рядом с точкой
type NearbyQuery struct {
	Latitude     float64 `form:"latitude" validate:"required,latitude"`
	Longitude    float64 `form:"longitude" validate:"required,longitude"`
	RadiusMeters int     `form:"radius_meters" validate:"required,gt=0,lte=50000"`
}

// HelpRequestResponse DTO для ответа с заявкой. Поля variant/nextStatus/
// nextAction - производные таблицы статусов для дашборда.
// @Description DTO для ответа с информацией о заявке
type HelpRequestResponse struct {
	ID            uuid.UUID `json:"id"`
	Longitude     float64   `json:"longitude"`
	Latitude      float64   `json:"latitude"`
	EmergencyType string    `json:"emergencyType"`
	VictimCount   string    `json:"victimCount"`
	MedicalInfo   string    `json:"medicalInfo,omitempty"`
	ContactNumber string    `json:"contactNumber"`
	Image         string    `json:"image"`
	Status        string    `json:"status"`
	Variant       string    `json:"variant"`
	NextStatus    string    `json:"nextStatus,omitempty"`
	NextAction    string    `json:"nextAction,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
