package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/halcyar/go-saga/internal"
	"github.com/halcyar/go-saga/internal/engine"
	"github.com/halcyar/go-saga/internal/game"
	"github.com/halcyar/go-saga/internal/narrate"
	"github.com/halcyar/go-saga/internal/storage"
)

// A Session is one connected playthrough. Turns resolve synchronously
// on the connection's goroutine; the rendered output travels through
// the bus and is written back by the session's own subscriber.
type Session struct {
	id       string
	saveID   string
	conn     io.ReadWriter
	prompter *internal.Prompter
	state    *game.GameState
	engine   *engine.Engine
	saves    storage.Storer[*game.GameState]
	bus      Bus
	renderer *narrate.Renderer
}

func (s *Session) run(ctx context.Context, isNew bool) error {
	unsub, err := s.bus.Subscribe(s.id, s.deliver)
	if err != nil {
		return fmt.Errorf("subscribing session: %w", err)
	}
	defer unsub()

	first := game.ActionStart
	if !isNew {
		first = game.ActionResume
	}

	res := s.resolve(ctx, engine.Action{Type: first})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if s.state.Player.HP <= 0 {
			s.write("Your tale ends here.\n")
			return nil
		}
		if len(res.AvailableActions) == 0 {
			s.write("The tale pauses here. Farewell.\n")
			return nil
		}

		line, err := s.prompter.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch strings.ToLower(line) {
		case "":
			s.writePrompt()

		case "quit", "q", "exit":
			s.write(fmt.Sprintf("Rest well, %s. The tale keeps your place.\n", s.state.Player.Name))
			return nil

		case "save":
			if err := s.persist(); err != nil {
				slog.WarnContext(ctx, "saving game state", "session", s.id, "error", err)
				s.write("The tale could not be written down.\n")
			} else {
				s.write("Saved.\n")
			}
			s.writePrompt()

		case "look", "menu":
			s.write(s.renderer.Menu(actionLabels(res.AvailableActions)) + "\n")
			s.writePrompt()

		default:
			idx, aerr := strconv.Atoi(line)
			if aerr != nil || idx < 1 || idx > len(res.AvailableActions) {
				s.write("Choose a number from the menu, or 'quit'.\n")
				s.writePrompt()
				continue
			}

			res = s.resolve(ctx, engine.FromDescriptor(res.AvailableActions[idx-1]))
		}
	}
}

// resolve runs one engine turn against the save document, applies and
// persists the reported changes, and publishes the rendered output.
func (s *Session) resolve(ctx context.Context, action engine.Action) *engine.Result {
	res := s.engine.Resolve(s.state, action)

	s.state.Apply(res.Changes)

	if err := s.persist(); err != nil {
		slog.WarnContext(ctx, "saving game state", "session", s.id, "error", err)
	}

	out := []byte(s.renderTurn(res))
	if err := s.bus.Publish(s.id, out); err != nil {
		slog.WarnContext(ctx, "publishing turn", "session", s.id, "error", err)
		// Deliver directly so the player is not left staring at nothing.
		s.deliver(out)
	}

	return res
}

func (s *Session) persist() error {
	return s.saves.Save(s.saveID, s.state)
}

func (s *Session) renderTurn(res *engine.Result) string {
	var b strings.Builder

	if len(res.Narrative) > 0 {
		b.WriteString(s.renderer.Narrative(res.Narrative))
		b.WriteString("\n")
	}

	if d := res.Dice; d != nil {
		fmt.Fprintf(&b, "\n[d100 %d vs %d: %s]\n", d.Roll, d.Threshold, d.Outcome)
	}

	if ci := res.CombatInfo; ci != nil {
		fmt.Fprintf(&b, "\n[%s  HP %d/%d]\n", ci.EnemyName, ci.EnemyHP, ci.EnemyMaxHP)
	}

	if len(res.AvailableActions) > 0 {
		b.WriteString("\n")
		b.WriteString(s.renderer.Menu(actionLabels(res.AvailableActions)))
		b.WriteString("\n")
	}

	return b.String()
}

// actionLabels falls back to the action type when content omits a label.
func actionLabels(actions []game.ActionDescriptor) []string {
	labels := make([]string, len(actions))
	for i, a := range actions {
		label := a.Label
		if label == "" {
			label = narrate.Capitalize(strings.ReplaceAll(a.Type, "_", " "))
		}
		labels[i] = label
	}
	return labels
}

// deliver writes bus output back to the connection.
func (s *Session) deliver(data []byte) {
	if _, err := s.conn.Write(append([]byte("\n"), data...)); err != nil {
		slog.Warn("writing session output", "session", s.id, "error", err)
		return
	}
	s.writePrompt()
}

func (s *Session) write(msg string) {
	if _, err := s.conn.Write([]byte(msg)); err != nil {
		slog.Warn("writing to session", "session", s.id, "error", err)
	}
}

func (s *Session) writePrompt() {
	prompt := fmt.Sprintf("[%d/%dHP %d/%dMP] > ",
		s.state.Player.HP, s.state.Player.MaxHP,
		s.state.Player.MP, s.state.Player.MaxMP,
	)
	if _, err := s.conn.Write([]byte(prompt)); err != nil {
		slog.Warn("writing prompt", "session", s.id, "error", err)
	}
}
