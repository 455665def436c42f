package repository

import (
	"context"
	"errors"

	"feastly/internal/domain/entity"
)

// ErrRestaurantNotFound is a domain-specific error returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// SortField names a listing sort key accepted from the outside.
type SortField string

// Accepted listing sort keys. Anything else is rejected at the validation layer.
const (
	SortByName   SortField = "name"
	SortByRating SortField = "rating"
	SortByPrice  SortField = "price"
)

// SortOrder is the listing sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListQuery carries the filter, sort, and window for a restaurant listing.
// Only active restaurants are ever matched; Search matches name or
// description and Cuisine matches the cuisine type, both as
// case-insensitive substrings.
type ListQuery struct {
	Search    string
	Cuisine   string
	SortBy    SortField
	SortOrder SortOrder
	Offset    int
	Limit     int
}

// RestaurantRepository defines the standard operations for restaurant persistence.
type RestaurantRepository interface {
	// List retrieves the page of active restaurants matching the query.
	List(ctx context.Context, query ListQuery) ([]*entity.Restaurant, error)

	// Count returns the total number of active restaurants matching the
	// query's filters, ignoring its offset and limit.
	Count(ctx context.Context, query ListQuery) (int64, error)

	// FindByID retrieves a single restaurant by its unique ID, with addresses.
	FindByID(ctx context.Context, id uint) (*entity.Restaurant, error)

	// FindByOwnerAndName retrieves a restaurant owned by ownerID whose name
	// matches exactly (case-sensitive).
	FindByOwnerAndName(ctx context.Context, ownerID uint, name string) (*entity.Restaurant, error)

	// Create persists a new restaurant together with its nested addresses.
	// All rows are written through a single GORM create so the caller can
	// wrap it in one transaction.
	Create(ctx context.Context, restaurant *entity.Restaurant) error
}
