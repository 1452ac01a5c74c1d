package auth

import (
	"context"
	"strings"

	"github.com/nikolayk812/shopfront/internal/domain"
)

type identityKey struct{}

func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns nil for anonymous requests.
func IdentityFrom(ctx context.Context) *domain.Identity {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	if !ok {
		return nil
	}

	return &id
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
