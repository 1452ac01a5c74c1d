package gql

import (
	"github.com/nikolayk812/shopfront/internal/domain"
	"go.uber.org/zap"
)

// Error is returned from resolvers so that the response carries extensions.code.
type Error struct {
	Code    domain.Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(e.Code)}
}

func (r *resolver) fail(op string, err error) error {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		r.logger.Error("graphql resolver failed", zap.String("field", op), zap.Error(err))
	}

	return &Error{Code: kind, Message: domain.PublicMessage(err)}
}
