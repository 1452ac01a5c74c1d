package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/nikolayk812/shopfront/internal/domain"
)

type messageRepository struct {
	s *Store
}

func (r *messageRepository) CreateMessage(_ context.Context, msg domain.Message) (domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.messages = append(r.s.messages, msg)

	return msg, nil
}

func (r *messageRepository) ListRecent(_ context.Context, limit int) ([]domain.Message, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	start := max(len(r.s.messages)-limit, 0)

	return slices.Clone(r.s.messages[start:]), nil
}
