package usecase

import (
	"context"

	"feastly/internal/domain/entity"
	"feastly/internal/domain/repository"
)

// Listing window bounds. The validation layer enforces the same limits; the
// service clamps again so no caller can bypass them.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListRestaurantsInput carries the filter, sort, and pagination request for
// the public restaurant listing.
type ListRestaurantsInput struct {
	Search    string
	Cuisine   string
	Page      int
	Limit     int
	SortBy    repository.SortField
	SortOrder repository.SortOrder
}

// PageMeta describes the pagination envelope returned with every listing.
type PageMeta struct {
	TotalItems   int64 `json:"totalItems"`
	ItemCount    int   `json:"itemCount"`
	ItemsPerPage int   `json:"itemsPerPage"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
}

// ListRestaurantsOutput is the listing result envelope.
type ListRestaurantsOutput struct {
	Data []*entity.Restaurant
	Meta PageMeta
}

// AddressInput defines one nested address in a restaurant creation request.
type AddressInput struct {
	StreetAddress1 string
	StreetAddress2 string
	City           string
	StateProvince  string
	Country        string
	PostalCode     string
	Latitude       *float64
	Longitude      *float64
	Label          string
	IsPrimary      *bool
}

// CreateRestaurantInput defines the data required to create a restaurant
// with its nested addresses. OwnerID comes from the authenticated caller,
// never from the request body.
type CreateRestaurantInput struct {
	OwnerID            uint
	Name               string
	Description        string
	CuisineType        string
	LogoImageURL       string
	HeaderImageURL     string
	PriceRange         string
	OperatingHoursInfo map[string]any
	ContactPhone       string
	ContactEmail       string
	IsActive           *bool // nil defaults to active.
	Addresses          []AddressInput
}

// RestaurantUsecase defines the interface for restaurant-related business operations.
type RestaurantUsecase interface {
	// List returns the page of active restaurants matching the request,
	// together with the pagination metadata.
	List(ctx context.Context, input *ListRestaurantsInput) (*ListRestaurantsOutput, error)

	// GetByID returns a single restaurant with its addresses.
	GetByID(ctx context.Context, id uint) (*entity.Restaurant, error)

	// Create atomically creates a restaurant and its addresses for the
	// calling owner, enforcing the per-owner name uniqueness rule.
	Create(ctx context.Context, input *CreateRestaurantInput) (*entity.Restaurant, error)
}
