package messaging

import "fmt"

// SessionSubject returns the subject carrying rendered output for one
// session.
func SessionSubject(sessionID string) string {
	return fmt.Sprintf("session.%s", sessionID)
}

// SessionBus routes rendered session output over the embedded broker.
// Game turns publish to a session's subject; the connection that owns
// the session subscribes and writes whatever arrives.
type SessionBus struct {
	server *NatsServer
}

func NewSessionBus(server *NatsServer) *SessionBus {
	return &SessionBus{server: server}
}

func (b *SessionBus) Publish(sessionID string, data []byte) error {
	return b.server.Publish(SessionSubject(sessionID), data)
}

func (b *SessionBus) Subscribe(sessionID string, handler func(data []byte)) (func(), error) {
	return b.server.Subscribe(SessionSubject(sessionID), handler)
}
