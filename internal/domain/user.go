package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "usuario"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch role := Role(s); role {
	case RoleUser, RoleAdmin:
		return role, nil
	default:
		return "", BadRequest("invalid role %q, use 'usuario' or 'admin'", s)
	}
}

// User never carries the password hash, see Credentials.
type User struct {
	ID       uuid.UUID
	Username string
	Role     Role

	CreatedAt time.Time
}

type Credentials struct {
	User         User
	PasswordHash string
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Role: u.Role}
}
