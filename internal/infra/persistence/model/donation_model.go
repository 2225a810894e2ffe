package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationModel mirrors the 'donations' table. Status transitions are written
// with conditional updates keyed on the current status, so the column carries
// the single source of truth for the lifecycle state.
type DonationModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key"`
	VendorID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title              string     `gorm:"type:varchar(200);not null"`
	Description        string     `gorm:"type:text"`
	Category           string     `gorm:"type:varchar(30);not null;index"`
	Quantity           string     `gorm:"type:varchar(100)"`
	Images             []string   `gorm:"serializer:json;type:jsonb"`
	Address            string     `gorm:"type:text"`
	Latitude           float64    `gorm:"not null;index:idx_donations_lat_lng"`
	Longitude          float64    `gorm:"not null;index:idx_donations_lat_lng"`
	ExpiryDate         time.Time  `gorm:"not null"`
	Status             string     `gorm:"type:varchar(20);not null;index"`
	RequestedBy        *uuid.UUID `gorm:"type:uuid;index"`
	RequestedAt        *time.Time
	ConfirmedAt        *time.Time
	CompletedAt        *time.Time
	PickupInstructions string `gorm:"type:text"`
	ImpactNotes        string `gorm:"type:text"`
	PointsAwarded      int    `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}
