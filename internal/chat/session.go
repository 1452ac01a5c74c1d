package chat

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nikolayk812/shopfront/internal/domain"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

type session struct {
	conn     *websocket.Conn
	identity domain.Identity
	send     chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

func newSession(conn *websocket.Conn, identity domain.Identity, buffer int) *session {
	return &session{
		conn:     conn,
		identity: identity,
		send:     make(chan []byte, buffer),
		done:     make(chan struct{}),
	}
}

func (s *session) enqueue(payload []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.send <- payload:
		return true
	default:
		return false
	}
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

func (s *session) readLoop(ctx context.Context, handle MessageHandler, logger *zap.Logger) {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("chat read failed", zap.String("username", s.identity.Username), zap.Error(err))
			}
			return
		}

		var event Event
		if err := json.Unmarshal(data, &event); err != nil || event.Event != EventMessage {
			continue
		}

		var in incomingMessage
		if err := json.Unmarshal(event.Data, &in); err != nil {
			continue
		}

		if err := handle(ctx, s.identity, in.Text); err != nil {
			// empty text is dropped without telling the sender
			if errors.Is(err, domain.ErrBadRequest) {
				continue
			}
			logger.Error("chat message not saved", zap.String("username", s.identity.Username), zap.Error(err))
			if payload, encErr := encode(EventError, errorPayload{Message: "message could not be sent"}); encErr == nil {
				s.enqueue(payload)
			}
		}
	}
}

func (s *session) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case payload := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				s.close()
				_ = s.conn.Close()
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.close()
				_ = s.conn.Close()
				return
			}
		case <-s.done:
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			// unblocks the read loop
			_ = s.conn.Close()
			return
		}
	}
}
