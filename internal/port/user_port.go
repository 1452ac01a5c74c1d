package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
)

type UserRepository interface {
	// CreateUser returns domain.ErrConflict when the username is taken.
	CreateUser(ctx context.Context, creds domain.Credentials) (domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetCredentials(ctx context.Context, username string) (domain.Credentials, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (bool, error)
}
