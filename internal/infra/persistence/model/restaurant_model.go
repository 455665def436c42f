package model

import (
	"time"

	"gorm.io/datatypes"
)

// RestaurantModel mirrors the 'restaurants' table. The composite unique
// index on (owner_user_id, name) is the store-level backstop for the
// per-owner name uniqueness rule: two concurrent creations can both pass
// the application-level pre-check, but only one can commit.
type RestaurantModel struct {
	ID                 uint           `gorm:"primaryKey"`
	Name               string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_restaurants_owner_name"`
	Description        string         `gorm:"type:text"`
	CuisineType        string         `gorm:"type:varchar(100)"`
	LogoImageURL       string         `gorm:"type:varchar(512)"`
	HeaderImageURL     string         `gorm:"type:varchar(512)"`
	PriceRange         string         `gorm:"type:varchar(50)"`
	OperatingHoursInfo datatypes.JSON `gorm:"type:jsonb"`
	ContactPhone       string         `gorm:"type:varchar(30)"`
	ContactEmail       string         `gorm:"type:varchar(255)"`
	AverageRating      float64        `gorm:"type:decimal(3,2);not null;default:0"`
	IsActive           bool           `gorm:"not null;default:true"`
	OwnerUserID        *uint          `gorm:"uniqueIndex:idx_restaurants_owner_name"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Addresses []AddressModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
