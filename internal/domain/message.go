package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a chat line.
type Message struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Username string
	Text     string

	CreatedAt time.Time
}
