package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
	"go.uber.org/zap"
)

const (
	MinUsernameLen = 3
	MinPasswordLen = 4

	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

type TokenIssuer interface {
	Issue(id domain.Identity) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) (bool, error)
}

// Session is what a successful register or login hands back to the client.
type Session struct {
	Token string
	User  domain.User
}

type AuthService struct {
	users     port.UserRepository
	tokens    TokenIssuer
	passwords PasswordHasher
	logger    *zap.Logger
	now       func() time.Time
}

func NewAuthService(users port.UserRepository, tokens TokenIssuer, passwords PasswordHasher, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Session{}, domain.BadRequest("username and password are required")
	}
	if utf8.RuneCountInString(username) < MinUsernameLen {
		return Session{}, domain.BadRequest("username must be at least %d characters", MinUsernameLen)
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return Session{}, domain.BadRequest("password must be at least %d characters", MinPasswordLen)
	}
	if len(password) > MaxPasswordBytes {
		return Session{}, domain.BadRequest("password must be at most %d bytes", MaxPasswordBytes)
	}

	user, err := s.createUser(ctx, username, password, domain.RoleUser)
	if err != nil {
		return Session{}, err
	}

	return s.session(user)
}

func (s *AuthService) Login(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Session{}, domain.BadRequest("username and password are required")
	}

	creds, err := s.users.GetCredentials(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return Session{}, domain.Unauthenticated("invalid credentials")
	}
	if err != nil {
		return Session{}, fmt.Errorf("users.GetCredentials: %w", err)
	}

	ok, err := s.passwords.Verify(creds.PasswordHash, password)
	if err != nil {
		return Session{}, fmt.Errorf("passwords.Verify: %w", err)
	}
	if !ok {
		return Session{}, domain.Unauthenticated("invalid credentials")
	}

	return s.session(creds.User)
}

// EnsureAdmin creates the bootstrap admin account, or promotes the account when
// the username already exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) (domain.User, error) {
	if username == "" || password == "" {
		return domain.User{}, fmt.Errorf("admin username or password is empty")
	}

	creds, err := s.users.GetCredentials(ctx, username)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		user, err := s.createUser(ctx, username, password, domain.RoleAdmin)
		if err != nil {
			return domain.User{}, err
		}
		s.logger.Info("admin account created", zap.String("username", username))
		return user, nil
	case err != nil:
		return domain.User{}, fmt.Errorf("users.GetCredentials: %w", err)
	}

	if creds.User.Role == domain.RoleAdmin {
		return creds.User, nil
	}

	user, err := s.users.UpdateRole(ctx, creds.User.ID, domain.RoleAdmin)
	if err != nil {
		return domain.User{}, fmt.Errorf("users.UpdateRole: %w", err)
	}
	s.logger.Info("account promoted to admin", zap.String("username", username))

	return user, nil
}

func (s *AuthService) createUser(ctx context.Context, username, password string, role domain.Role) (domain.User, error) {
	hash, err := s.passwords.Hash(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("passwords.Hash: %w", err)
	}

	user, err := s.users.CreateUser(ctx, domain.Credentials{
		User: domain.User{
			ID:        uuid.New(),
			Username:  username,
			Role:      role,
			CreatedAt: s.now(),
		},
		PasswordHash: hash,
	})
	if errors.Is(err, domain.ErrConflict) {
		return domain.User{}, domain.BadRequest("username is already taken")
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("users.CreateUser: %w", err)
	}

	return user, nil
}

func (s *AuthService) session(user domain.User) (Session, error) {
	token, err := s.tokens.Issue(user.Identity())
	if err != nil {
		return Session{}, fmt.Errorf("tokens.Issue: %w", err)
	}

	return Session{Token: token, User: user}, nil
}
