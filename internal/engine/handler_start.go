package engine

import "github.com/halcyar/go-saga/internal/game"

// openingNarrative is shown when a playthrough starts in a scene the
// catalog does not carry.
var openingNarrative = []string{
	"Darkness.",
	"",
	"A voice reaches you, thin and far away. Your master's voice.",
	"",
	"\"Remember, child... light and shadow were never enemies...\"",
	"",
	"The words smear into echoes.",
	"",
	"\"The Prism Grail... the shards... you must not let them...\"",
	"",
	"You wake with a start, heart hammering.",
	"",
	"Cold sweat soaks your back. A sickle moon hangs outside the window.",
	"On the desk lies your master's last letter. The seal is broken.",
	"A single line shows: \"The old lighthouse. The answer waits there.\"",
}

// handleStart begins a playthrough at the document's current scene.
func (e *Engine) handleStart(req *request) *Result {
	if req.scene == nil {
		return &Result{
			Success:          true,
			Message:          "Game started",
			Narrative:        openingNarrative,
			Changes:          req.delta,
			AvailableActions: []game.ActionDescriptor{},
		}
	}

	return &Result{
		Success:          true,
		Message:          "Game started",
		Narrative:        req.scene.Narrative,
		Changes:          req.delta,
		AvailableActions: sceneActions(req.scene),
		SceneType:        req.scene.SceneType(),
		CombatInfo:       e.combatInfo(req.scene, activeSnapshot(req.state)),
	}
}

// handleResume picks a saved playthrough back up, preferring the scene's
// short recap over its full prose.
func (e *Engine) handleResume(req *request) *Result {
	if req.scene == nil {
		return &Result{
			Success:          true,
			Message:          "Game resumed",
			Narrative:        []string{"Your adventure continues..."},
			Changes:          req.delta,
			AvailableActions: []game.ActionDescriptor{},
		}
	}

	return &Result{
		Success:          true,
		Message:          "Game resumed",
		Narrative:        req.scene.Resume(),
		Changes:          req.delta,
		AvailableActions: sceneActions(req.scene),
		SceneType:        req.scene.SceneType(),
		CombatInfo:       e.combatInfo(req.scene, activeSnapshot(req.state)),
	}
}
