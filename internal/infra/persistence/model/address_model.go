package model

import "time"

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Rows are removed together with their owning restaurant (ON DELETE CASCADE).
type AddressModel struct {
	ID             uint     `gorm:"primaryKey"`
	RestaurantID   uint     `gorm:"not null;index"`
	StreetAddress1 string   `gorm:"type:varchar(255);not null"`
	StreetAddress2 string   `gorm:"type:varchar(255)"`
	City           string   `gorm:"type:varchar(100);not null"`
	StateProvince  string   `gorm:"type:varchar(100)"`
	Country        string   `gorm:"type:varchar(100);not null"`
	PostalCode     string   `gorm:"type:varchar(20)"`
	Latitude       *float64 `gorm:"type:decimal(10,8)"`
	Longitude      *float64 `gorm:"type:decimal(11,8)"`
	Label          string   `gorm:"type:varchar(100)"`
	IsPrimary      bool     `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
