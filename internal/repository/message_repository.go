package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopfront/internal/db"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
)

type messageRepository struct {
	q *db.Queries
}

func NewMessage(pool *pgxpool.Pool) port.MessageRepository {
	return &messageRepository{
		q: db.New(pool),
	}
}

func (r *messageRepository) CreateMessage(ctx context.Context, msg domain.Message) (domain.Message, error) {
	row, err := r.q.CreateMessage(ctx, db.CreateMessageParams{
		ID:        msg.ID,
		UserID:    msg.UserID,
		Username:  msg.Username,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("q.CreateMessage: %w", err)
	}

	return mapMessageToDomain(row), nil
}

func (r *messageRepository) ListRecent(ctx context.Context, limit int) ([]domain.Message, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	rows, err := r.q.ListRecentMessages(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("q.ListRecentMessages: %w", err)
	}

	messages := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, mapMessageToDomain(row))
	}
	// newest first from the query
	slices.Reverse(messages)

	return messages, nil
}

func mapMessageToDomain(row db.Message) domain.Message {
	return domain.Message{
		ID:        row.ID,
		UserID:    row.UserID,
		Username:  row.Username,
		Text:      row.Text,
		CreatedAt: row.CreatedAt,
	}
}
