package model

import "time"

// UserModel mirrors the 'users' table. IDs are store-generated bigserial values.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null"`
	PhoneNumber  string `gorm:"type:varchar(30)"`
	Role         string `gorm:"type:varchar(30);not null;default:CUSTOMER"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Restaurants []RestaurantModel `gorm:"foreignKey:OwnerUserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
