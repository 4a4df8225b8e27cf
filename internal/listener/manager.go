package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/halcyar/go-saga/internal/session"
)

// ConnectionManager hands accepted connections to the session layer.
// Listeners own the transport; everything after "connected" is the
// session's problem.
type ConnectionManager struct {
	sm *session.Manager
}

func NewConnectionManager(sm *session.Manager) *ConnectionManager {
	return &ConnectionManager{
		sm: sm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := m.sm.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "play session", "error", err)
	}
}
