package model

import "strings"

// Role is a user's role in the system. Owners manage dogs; walkers are
// assigned to walks.
type Role string

const (
	RoleOwner  Role = "Owner"
	RoleWalker Role = "Walker"
)

// ParseRole maps a client-supplied role string to a Role. Anything
// unrecognized falls back to Owner, the registration default.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleWalker)) {
		return RoleWalker
	}
	return RoleOwner
}

// User represents a user in the database.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}

// RegisterRequest represents a user registration request.
// Role is optional; unrecognized values default to Owner.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents an authentication response with a JWT token and user info.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents user data safe for API responses (no password hash).
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  Role   `json:"role,omitempty"`
}
