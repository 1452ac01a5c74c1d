package domain

import "github.com/google/uuid"

// Identity is the authenticated caller of an operation.
type Identity struct {
	ID       uuid.UUID
	Username string
	Role     Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// RequireAuthenticated fails when no caller is attached to the request.
func RequireAuthenticated(caller *Identity) (Identity, error) {
	if caller == nil || caller.ID == uuid.Nil {
		return Identity{}, Unauthenticated("authentication required")
	}

	return *caller, nil
}

// RequireAdmin fails for anonymous callers and for callers without the admin role.
func RequireAdmin(caller *Identity) (Identity, error) {
	id, err := RequireAuthenticated(caller)
	if err != nil {
		return Identity{}, err
	}
	if !id.IsAdmin() {
		return Identity{}, Forbidden("admin role required")
	}

	return id, nil
}
