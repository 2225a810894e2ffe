package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The counters are only ever
// written with atomic increments, never read-modify-write.
type ProductModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	VendorID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(200);not null"`
	Description    string    `gorm:"type:text"`
	Category       string    `gorm:"type:varchar(30);not null;index"`
	Price          float64   `gorm:"not null;default:0"`
	Images         []string  `gorm:"serializer:json;type:jsonb"`
	Address        string    `gorm:"type:text"`
	Latitude       float64   `gorm:"not null;index:idx_products_lat_lng"`
	Longitude      float64   `gorm:"not null;index:idx_products_lat_lng"`
	IsAvailable    bool      `gorm:"not null;default:true;index"`
	EcoFriendly    bool      `gorm:"not null;default:false"`
	Tags           []string  `gorm:"serializer:json;type:jsonb"`
	ContactVisible bool      `gorm:"not null;default:false"`
	ViewCount      int       `gorm:"not null;default:0"`
	InquiryCount   int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
