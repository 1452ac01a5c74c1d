package chat

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/nikolayk812/shopfront/internal/domain"
	"go.uber.org/zap"
)

const defaultSendBuffer = 32

// MessageHandler is called for every chat text a session sends.
type MessageHandler func(ctx context.Context, caller domain.Identity, text string) error

// Hub tracks the websocket sessions of this process. Delivery is best effort:
// a session whose buffer is full misses the frame.
type Hub struct {
	mu       sync.RWMutex
	sessions map[*session]struct{}
	closed   bool

	sendBuffer int
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		sessions:   make(map[*session]struct{}),
		sendBuffer: defaultSendBuffer,
		logger:     logger,
	}
}

// Broadcast delivers msg to every local session.
func (h *Hub) Broadcast(_ context.Context, msg domain.Message) error {
	payload, err := EncodeMessage(msg)
	if err != nil {
		return fmt.Errorf("EncodeMessage: %w", err)
	}

	h.Deliver(payload)

	return nil
}

// Deliver pushes an already encoded frame to every local session.
func (h *Hub) Deliver(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.sessions {
		if !s.enqueue(payload) {
			h.logger.Debug("chat frame dropped", zap.String("username", s.identity.Username))
		}
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.sessions)
}

// Serve runs a session until the peer goes away or the hub is closed.
func (h *Hub) Serve(ctx context.Context, conn *websocket.Conn, caller domain.Identity, handle MessageHandler) {
	s := newSession(conn, caller, h.sendBuffer)
	if !h.register(s) {
		_ = conn.Close()
		return
	}

	h.logger.Info("chat session opened", zap.String("username", caller.Username))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.writeLoop()
	}()

	s.readLoop(ctx, handle, h.logger)

	h.unregister(s)
	s.close()
	wg.Wait()
	_ = conn.Close()

	h.logger.Info("chat session closed", zap.String("username", caller.Username))
}

// Close ends every session and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for s := range h.sessions {
		s.close()
	}
}

func (h *Hub) register(s *session) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.sessions[s] = struct{}{}

	return true
}

func (h *Hub) unregister(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.sessions, s)
}
