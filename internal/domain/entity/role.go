// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of account a user holds in the marketplace.
type Role string

const (
	// RoleCustomer indicates a regular ordering customer.
	RoleCustomer Role = "CUSTOMER"
	// RoleDriver indicates a delivery driver.
	RoleDriver Role = "DRIVER"
	// RoleRestaurantOwner indicates an account that may own restaurants.
	RoleRestaurantOwner Role = "RESTAURANT_OWNER"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleRestaurantOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
