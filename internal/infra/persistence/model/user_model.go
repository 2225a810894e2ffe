package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The password hash lives only on this
// model; it is never mapped onto the domain entity.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Phone        string    `gorm:"type:varchar(30)"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	VendorProfile *VendorProfileModel `gorm:"foreignKey:UserID"`
	NGOProfile    *NGOProfileModel    `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// VendorProfileModel mirrors the 'vendor_profiles' table. UserID references users.id (UUID).
type VendorProfileModel struct {
	UserID         uuid.UUID `gorm:"primaryKey"`
	StoreName      string    `gorm:"type:varchar(100);not null"`
	Address        string    `gorm:"type:text"`
	Latitude       float64   `gorm:"not null;index:idx_vendor_profiles_lat_lng"`
	Longitude      float64   `gorm:"not null;index:idx_vendor_profiles_lat_lng"`
	DonationScore  int       `gorm:"not null;default:0;index"`
	ScoreUpdatedAt time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendor_profiles"
}

// NGOProfileModel mirrors the 'ngo_profiles' table. UserID references users.id (UUID).
type NGOProfileModel struct {
	UserID       uuid.UUID `gorm:"primaryKey"`
	Organization string    `gorm:"type:varchar(100);not null"`
	Address      string    `gorm:"type:text"`
	Latitude     float64   `gorm:"not null;index:idx_ngo_profiles_lat_lng"`
	Longitude    float64   `gorm:"not null;index:idx_ngo_profiles_lat_lng"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NGOProfileModel) TableName() string {
	return "ngo_profiles"
}
