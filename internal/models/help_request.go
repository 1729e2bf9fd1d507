package models

import (
	"time"

	"github.com/google/uuid"
)

// HelpRequest представляет заявку о помощи от пострадавшего
type HelpRequest struct {
	ID            uuid.UUID `json:"id"`
	Longitude     float64   `json:"longitude"`
	Latitude      float64   `json:"latitude"`
	EmergencyType string    `json:"emergencyType"`
	VictimCount   string    `json:"victimCount"`
	MedicalInfo   string    `json:"medicalInfo,omitempty"`
	ContactNumber string    `json:"contactNumber"`
	Image         string    `json:"image"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
