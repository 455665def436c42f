// Package entity contains the core business objects of the project.
package entity

import "time"

// Address is the core entity for a physical restaurant location. Addresses
// belong to exactly one restaurant and are created atomically with it.
type Address struct {
	ID             uint      // Store-generated identifier for the address.
	RestaurantID   uint      // The restaurant this address belongs to.
	StreetAddress1 string    // Primary street line.
	StreetAddress2 string    // Optional secondary street line.
	City           string    // City name.
	StateProvince  string    // Optional state or governorate.
	Country        string    // Country name.
	PostalCode     string    // Optional postal code.
	Latitude       *float64  // Optional latitude in [-90, 90].
	Longitude      *float64  // Optional longitude in [-180, 180].
	Label          string    // Optional user-facing label, e.g. "Main Branch".
	IsPrimary      bool      // Indicates the restaurant's primary branch.
	CreatedAt      time.Time // Timestamp of when this address was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}
