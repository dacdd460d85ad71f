package model

import "time"

// Roles recognised by the service.  The role is stored on the users row
// and embedded in access tokens; route middleware enforces which roles
// may reach which endpoints.
const (
	RoleStudent       = "STUDENT"
	RoleFacultyMember = "FACULTY_MEMBER"
	RoleAdmin         = "ADMIN"
)

// ValidRole reports whether s is one of the known role names.
func ValidRole(s string) bool {
	switch s {
	case RoleStudent, RoleFacultyMember, RoleAdmin:
		return true
	}
	return false
}

// User represents a row in the `users` table.  Passwords are stored as
// bcrypt hashes only and never serialized.
type User struct {
	ID           uint64    `json:"id"`
	Username     string    `json:"username"` // unique
	Email        string    `json:"email"`    // unique
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// RefreshToken models an entry in the `refresh_tokens` table.  Only the
// SHA-256 hash of the raw token is persisted.
type RefreshToken struct {
	ID        uint64     `json:"id"`
	UserID    uint64     `json:"user_id"`
	TokenHash string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
