package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopfront/internal/domain"
	"github.com/nikolayk812/shopfront/internal/port"
	"go.uber.org/zap"
)

type ChatService struct {
	messages     port.MessageRepository
	broadcaster  port.Broadcaster
	historyLimit int
	logger       *zap.Logger
	now          func() time.Time
}

func NewChatService(messages port.MessageRepository, broadcaster port.Broadcaster, historyLimit int, logger *zap.Logger) *ChatService {
	return &ChatService{
		messages:     messages,
		broadcaster:  broadcaster,
		historyLimit: historyLimit,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// PostMessage saves the message and then fans it out. A failed broadcast is
// logged and otherwise ignored, the message is already stored.
func (s *ChatService) PostMessage(ctx context.Context, caller *domain.Identity, text string) (domain.Message, error) {
	id, err := domain.RequireAuthenticated(caller)
	if err != nil {
		return domain.Message{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, domain.BadRequest("message text is empty")
	}

	msg, err := s.messages.CreateMessage(ctx, domain.Message{
		ID:        uuid.New(),
		UserID:    id.ID,
		Username:  id.Username,
		Text:      text,
		CreatedAt: s.now(),
	})
	if err != nil {
		return domain.Message{}, fmt.Errorf("messages.CreateMessage: %w", err)
	}

	if err := s.broadcaster.Broadcast(ctx, msg); err != nil {
		s.logger.Warn("chat broadcast failed", zap.Stringer("message_id", msg.ID), zap.Error(err))
	}

	return msg, nil
}

func (s *ChatService) History(ctx context.Context, caller *domain.Identity) ([]domain.Message, error) {
	if _, err := domain.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	messages, err := s.messages.ListRecent(ctx, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("messages.ListRecent: %w", err)
	}

	return messages, nil
}
