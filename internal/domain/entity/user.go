// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core account entity. The identifier is assigned by the store
// at registration time and never changes afterwards.
type User struct {
	ID           uint      // Store-generated identifier for the user.
	Email        string    // Login identifier, unique across all users.
	PasswordHash string    // bcrypt hash of the password. Never leaves the process boundary.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	PhoneNumber  string    // Optional contact number, empty when not provided.
	Role         Role      // The account's role, defaults to CUSTOMER.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Sanitized returns a copy of the user with the password hash cleared.
// Handlers map this copy to response DTOs so the hash can never leak.
func (u *User) Sanitized() *User {
	clone := *u
	clone.PasswordHash = ""

	return &clone
}
