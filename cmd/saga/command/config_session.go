package command

import (
	"fmt"

	"github.com/halcyar/go-saga/internal/storage"
	"github.com/pixil98/go-errors"
)

// SessionConfig tunes where new playthroughs begin. Empty fields keep
// the game's defaults.
type SessionConfig struct {
	StartingChapter string `json:"starting_chapter,omitempty"`
	StartingScene   string `json:"starting_scene,omitempty"`
}

func (c *SessionConfig) Validate() error {
	el := errors.NewErrorList()

	if c.StartingChapter != "" && !storage.ValidIdentifier(c.StartingChapter) {
		el.Add(fmt.Errorf("starting_chapter contains invalid characters"))
	}
	if c.StartingScene != "" && !storage.ValidIdentifier(c.StartingScene) {
		el.Add(fmt.Errorf("starting_scene contains invalid characters"))
	}

	return el.Err()
}
