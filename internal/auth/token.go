package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
)

const issuer = "shopfront"

// Claims is the JWT payload, the same identity the websocket and both HTTP
// transports resolve.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, fmt.Errorf("secret is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("ttl must be positive")
	}

	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (t *Tokens) Issue(id domain.Identity) (string, error) {
	now := t.now()
	claims := &Claims{
		ID:       id.ID.String(),
		Username: id.Username,
		Role:     string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}

	return signed, nil
}

// Parse verifies the signature and expiry and returns the caller identity.
func (t *Tokens) Parse(token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, domain.Unauthenticated("token is empty")
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.Unauthenticated("token expired")
		}
		return domain.Identity{}, domain.Unauthenticated("invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return domain.Identity{}, domain.Unauthenticated("invalid token claims")
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return domain.Identity{}, domain.Unauthenticated("invalid token subject")
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, domain.Unauthenticated("invalid token role")
	}

	return domain.Identity{ID: id, Username: claims.Username, Role: role}, nil
}
