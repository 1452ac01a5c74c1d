package port

import (
	"context"

	"github.com/nikolayk812/shopfront/internal/domain"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, msg domain.Message) (domain.Message, error)
	// ListRecent returns at most limit messages, oldest first.
	ListRecent(ctx context.Context, limit int) ([]domain.Message, error)
}

// Broadcaster fans a message out to every connected chat session.
type Broadcaster interface {
	Broadcast(ctx context.Context, msg domain.Message) error
}
