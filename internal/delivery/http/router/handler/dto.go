package handler

import (
	"time"

	"feastly/internal/domain/entity"
)

// userResponse is the wire shape of an account. It deliberately has no
// field for the password hash.
type userResponse struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUserResponse(user *entity.User) *userResponse {
	return &userResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role.String(),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

type addressResponse struct {
	ID             uint     `json:"id"`
	StreetAddress1 string   `json:"street_address_1"`
	StreetAddress2 string   `json:"street_address_2,omitempty"`
	City           string   `json:"city"`
	StateProvince  string   `json:"state_province,omitempty"`
	Country        string   `json:"country"`
	PostalCode     string   `json:"postal_code,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Label          string   `json:"label,omitempty"`
	IsPrimary      bool     `json:"is_primary"`
}

type restaurantResponse struct {
	ID                 uint               `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description,omitempty"`
	CuisineType        string             `json:"cuisine_type,omitempty"`
	LogoImageURL       string             `json:"logo_image_url,omitempty"`
	HeaderImageURL     string             `json:"header_image_url,omitempty"`
	PriceRange         string             `json:"price_range,omitempty"`
	OperatingHoursInfo map[string]any     `json:"operating_hours_info,omitempty"`
	ContactPhone       string             `json:"contact_phone,omitempty"`
	ContactEmail       string             `json:"contact_email,omitempty"`
	AverageRating      float64            `json:"average_rating"`
	IsActive           bool               `json:"is_active"`
	OwnerUserID        *uint              `json:"owner_user_id,omitempty"`
	Addresses          []*addressResponse `json:"addresses,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func toRestaurantResponse(restaurant *entity.Restaurant) *restaurantResponse {
	resp := &restaurantResponse{
		ID:                 restaurant.ID,
		Name:               restaurant.Name,
		Description:        restaurant.Description,
		CuisineType:        restaurant.CuisineType,
		LogoImageURL:       restaurant.LogoImageURL,
		HeaderImageURL:     restaurant.HeaderImageURL,
		PriceRange:         restaurant.PriceRange,
		OperatingHoursInfo: restaurant.OperatingHoursInfo,
		ContactPhone:       restaurant.ContactPhone,
		ContactEmail:       restaurant.ContactEmail,
		AverageRating:      restaurant.AverageRating,
		IsActive:           restaurant.IsActive,
		OwnerUserID:        restaurant.OwnerUserID,
		CreatedAt:          restaurant.CreatedAt,
		UpdatedAt:          restaurant.UpdatedAt,
	}
	for _, addr := range restaurant.Addresses {
		resp.Addresses = append(resp.Addresses, &addressResponse{
			ID:             addr.ID,
			StreetAddress1: addr.StreetAddress1,
			StreetAddress2: addr.StreetAddress2,
			City:           addr.City,
			StateProvince:  addr.StateProvince,
			Country:        addr.Country,
			PostalCode:     addr.PostalCode,
			Latitude:       addr.Latitude,
			Longitude:      addr.Longitude,
			Label:          addr.Label,
			IsPrimary:      addr.IsPrimary,
		})
	}

	return resp
}

func toRestaurantResponses(restaurants []*entity.Restaurant) []*restaurantResponse {
	responses := make([]*restaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		responses = append(responses, toRestaurantResponse(restaurant))
	}

	return responses
}
