package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) CreateUser(_ context.Context, creds domain.Credentials) (domain.User, error) {
	if creds.User.Username == "" {
		return domain.User{}, fmt.Errorf("username is empty")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.User.Username == creds.User.Username {
			return domain.User{}, fmt.Errorf("username[%s]: %w", creds.User.Username, domain.ErrConflict)
		}
	}

	r.s.users[creds.User.ID] = creds
	r.s.userOrder = append(r.s.userOrder, creds.User.ID)

	return creds.User, nil
}

func (r *userRepository) GetUser(_ context.Context, id uuid.UUID) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	creds, ok := r.s.users[id]
	if !ok {
		return domain.User{}, fmt.Errorf("user[%s]: %w", id, domain.ErrNotFound)
	}

	return creds.User, nil
}

func (r *userRepository) GetCredentials(_ context.Context, username string) (domain.Credentials, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, creds := range r.s.users {
		if creds.User.Username == username {
			return creds, nil
		}
	}

	return domain.Credentials{}, fmt.Errorf("username[%s]: %w", username, domain.ErrNotFound)
}

func (r *userRepository) ListUsers(_ context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := make([]domain.User, 0, len(r.s.userOrder))
	for _, id := range slices.Backward(r.s.userOrder) {
		users = append(users, r.s.users[id].User)
	}

	return users, nil
}

func (r *userRepository) UpdateRole(_ context.Context, id uuid.UUID, role domain.Role) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	creds, ok := r.s.users[id]
	if !ok {
		return domain.User{}, fmt.Errorf("user[%s]: %w", id, domain.ErrNotFound)
	}

	creds.User.Role = role
	r.s.users[id] = creds

	return creds.User, nil
}

func (r *userRepository) DeleteUser(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return false, nil
	}

	delete(r.s.users, id)
	r.s.userOrder = removeID(r.s.userOrder, id)

	return true, nil
}
