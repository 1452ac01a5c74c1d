package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopfront/internal/db"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
)

type userRepository struct {
	q *db.Queries
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{
		q: db.New(pool),
	}
}

func (r *userRepository) CreateUser(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	if creds.User.Username == "" {
		return domain.User{}, fmt.Errorf("username is empty")
	}

	row, err := r.q.CreateUser(ctx, db.CreateUserParams{
		ID:           creds.User.ID,
		Username:     creds.User.Username,
		PasswordHash: creds.PasswordHash,
		Role:         string(creds.User.Role),
		CreatedAt:    creds.User.CreatedAt,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("q.CreateUser: %w", mapErr(err))
	}

	return domain.User{
		ID:        row.ID,
		Username:  row.Username,
		Role:      domain.Role(row.Role),
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *userRepository) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	row, err := r.q.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("q.GetUser: %w", mapErr(err))
	}

	return domain.User{
		ID:        row.ID,
		Username:  row.Username,
		Role:      domain.Role(row.Role),
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *userRepository) GetCredentials(ctx context.Context, username string) (domain.Credentials, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("q.GetUserByUsername: %w", mapErr(err))
	}

	return domain.Credentials{
		User: domain.User{
			ID:        row.ID,
			Username:  row.Username,
			Role:      domain.Role(row.Role),
			CreatedAt: row.CreatedAt,
		},
		PasswordHash: row.PasswordHash,
	}, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListUsers: %w", err)
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, domain.User{
			ID:        row.ID,
			Username:  row.Username,
			Role:      domain.Role(row.Role),
			CreatedAt: row.CreatedAt,
		})
	}

	return users, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (domain.User, error) {
	row, err := r.q.UpdateUserRole(ctx, db.UpdateUserRoleParams{
		ID:   id,
		Role: string(role),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("q.UpdateUserRole: %w", mapErr(err))
	}

	return domain.User{
		ID:        row.ID,
		Username:  row.Username,
		Role:      domain.Role(row.Role),
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) (bool, error) {
	rowsAffected, err := r.q.DeleteUser(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.DeleteUser: %w", err)
	}

	return rowsAffected > 0, nil
}
