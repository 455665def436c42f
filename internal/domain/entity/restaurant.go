// Package entity contains the core business objects of the project.
package entity

import "time"

// Restaurant is the core entity for a listed venue. A restaurant exclusively
// owns its addresses; an owner may not hold two restaurants with the same
// name (exact, case-sensitive match).
type Restaurant struct {
	ID                 uint           // Store-generated identifier for the restaurant.
	Name               string         // Display name, unique per owner.
	Description        string         // Optional free-form description.
	CuisineType        string         // Optional cuisine tags, e.g. "Egyptian, Fast Food".
	LogoImageURL       string         // Optional URL of the logo image.
	HeaderImageURL     string         // Optional URL of the header image.
	PriceRange         string         // Optional price indication, e.g. "EGP 20-80".
	OperatingHoursInfo map[string]any // Free-form structured opening hours.
	ContactPhone       string         // Optional contact phone.
	ContactEmail       string         // Optional contact email.
	AverageRating      float64        // Aggregated rating, 0 when unrated.
	IsActive           bool           // Inactive restaurants never appear in listings.
	OwnerUserID        *uint          // Optional reference to the owning user.
	Addresses          []*Address     // The restaurant's branches, at least one at creation.
	CreatedAt          time.Time      // Timestamp of when this restaurant was created.
	UpdatedAt          time.Time      // Timestamp of the last modification.
}
