package domain

import (
	"errors"
	"time"
)

const (
	RoleManager  = "Manager"
	RoleMechanic = "Mechanic"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an authenticated actor in the system. Username is immutable
// after registration and doubles as the assignment key on jobs.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the two fixed roles.
func ValidRole(role string) bool {
	return role == RoleManager || role == RoleMechanic
}
