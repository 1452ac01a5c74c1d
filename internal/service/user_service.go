package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
	"go.uber.org/zap"
)

type UserService struct {
	users  port.UserRepository
	carts  port.CartRepository
	logger *zap.Logger
}

func NewUserService(users port.UserRepository, carts port.CartRepository, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		carts:  carts,
		logger: logger,
	}
}

func (s *UserService) ListUsers(ctx context.Context, caller *domain.Identity) ([]domain.User, error) {
	if _, err := domain.RequireAdmin(caller); err != nil {
		return nil, err
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("users.ListUsers: %w", err)
	}

	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, caller *domain.Identity, userID uuid.UUID) (domain.User, error) {
	if _, err := domain.RequireAdmin(caller); err != nil {
		return domain.User{}, err
	}

	user, err := s.users.GetUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.NotFound("user not found")
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("users.GetUser: %w", err)
	}

	return user, nil
}

func (s *UserService) UpdateRole(ctx context.Context, caller *domain.Identity, userID uuid.UUID, role string) (domain.User, error) {
	admin, err := domain.RequireAdmin(caller)
	if err != nil {
		return domain.User{}, err
	}

	parsed, err := domain.ParseRole(role)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.users.UpdateRole(ctx, userID, parsed)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.NotFound("user not found")
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("users.UpdateRole: %w", err)
	}

	s.logger.Info("user role updated",
		zap.Stringer("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.Stringer("admin_id", admin.ID))

	return user, nil
}

// DeleteUser removes the account and its cart. Orders are kept as history.
func (s *UserService) DeleteUser(ctx context.Context, caller *domain.Identity, userID uuid.UUID) error {
	admin, err := domain.RequireAdmin(caller)
	if err != nil {
		return err
	}
	if admin.ID == userID {
		return domain.BadRequest("you cannot delete yourself")
	}

	deleted, err := s.users.DeleteUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("users.DeleteUser: %w", err)
	}
	if !deleted {
		return domain.NotFound("user not found")
	}

	if _, err := s.carts.DeleteCart(ctx, userID); err != nil {
		return fmt.Errorf("carts.DeleteCart: %w", err)
	}

	s.logger.Info("user deleted",
		zap.Stringer("user_id", userID),
		zap.Stringer("admin_id", admin.ID))

	return nil
}
