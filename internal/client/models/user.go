// Package models defines the records exchanged with the Arkania admin API
// and cached by the client: users, roles, role assignments, auth payloads
// and the response envelopes that wrap them.
package models

import "strings"

// User is the identity record returned by the backend and cached in the
// session store next to the token. Timestamps are kept as the backend sends
// them.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// FullName joins first and last name, falling back to the username.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

type CreateUserDTO struct {
	Username    string `json:"username" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Password    string `json:"password" validate:"required,min=6"`
}

// UpdateUserDTO carries a partial update; nil fields are left untouched.
type UpdateUserDTO struct {
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}
