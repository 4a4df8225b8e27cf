// Package session runs one interactive playthrough per connection:
// character creation or resume, then a read-eval loop that feeds player
// input to the engine, applies the reported changes to the save
// document, and publishes the rendered turn to the session's subject.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/halcyar/go-saga/internal"
	"github.com/halcyar/go-saga/internal/engine"
	"github.com/halcyar/go-saga/internal/game"
	"github.com/halcyar/go-saga/internal/narrate"
	"github.com/halcyar/go-saga/internal/storage"
)

// A Bus carries rendered turn output from game logic to the connection
// that owns the session.
type Bus interface {
	Publish(sessionID string, data []byte) error
	Subscribe(sessionID string, handler func(data []byte)) (func(), error)
}

// Manager builds a Session for every accepted connection.
type Manager struct {
	engine *engine.Engine
	saves  storage.Storer[*game.GameState]
	bus    Bus

	startChapter string
	startScene   string
}

type ManagerOpt func(*Manager)

// WithStartingScene overrides where new characters begin.
func WithStartingScene(chapter, scene string) ManagerOpt {
	return func(m *Manager) {
		if chapter != "" {
			m.startChapter = chapter
		}
		if scene != "" {
			m.startScene = scene
		}
	}
}

func NewManager(eng *engine.Engine, saves storage.Storer[*game.GameState], bus Bus, opts ...ManagerOpt) *Manager {
	m := &Manager{
		engine:       eng,
		saves:        saves,
		bus:          bus,
		startChapter: game.StartingChapter,
		startScene:   game.StartingScene,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RunSession owns conn for the life of one play session. A dropped
// connection is a normal ending, not an error.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	prompter := internal.NewPrompter(conn)

	flow := &creationFlow{
		saves:        m.saves,
		startChapter: m.startChapter,
		startScene:   m.startScene,
	}

	state, saveID, isNew, err := flow.Run(prompter, conn)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("creating character: %w", err)
	}

	sess := &Session{
		id:       uuid.NewString(),
		saveID:   saveID,
		conn:     conn,
		prompter: prompter,
		state:    state,
		engine:   m.engine,
		saves:    m.saves,
		bus:      m.bus,
		renderer: narrate.NewRenderer(narrate.Context{
			Name:       state.Player.Name,
			Background: state.Player.Background,
		}),
	}

	slog.InfoContext(ctx, "session starting",
		"session", sess.id,
		"player", state.Player.Name,
		"resumed", !isNew,
	)

	return sess.run(ctx, isNew)
}
