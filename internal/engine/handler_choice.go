package engine

import "github.com/halcyar/go-saga/internal/game"

// handleChoice resolves a selected scene choice. A choice carrying a
// skill check defers to the check flow with its texts and changes; a
// direct choice applies them immediately.
func (e *Engine) handleChoice(req *request) *Result {
	var choice *game.Choice
	if req.scene != nil {
		choice = req.scene.Choices[req.action.Data.ChoiceID]
	}
	if choice == nil {
		return failure(
			"Invalid choice",
			[]string{"Please choose a valid option."},
			sceneActions(req.scene),
		)
	}

	if choice.SkillCheck != nil {
		return e.performCheck(req, checkRequest{
			attribute:   choice.SkillCheck.Attribute,
			difficulty:  choice.SkillCheck.Difficulty,
			successText: choice.SuccessText,
			failureText: choice.FailureText,
			changes:     choice.StateChanges,
			nextScene:   choice.NextScene,
			nextActions: choice.NextActions,
		})
	}

	req.delta.Merge(choice.StateChanges)

	scene := req.scene
	if choice.NextScene != "" {
		scene = e.transition(req, choice.NextScene)
	}

	available := choice.NextActions
	if available == nil {
		available = sceneActions(scene)
	}

	return &Result{
		Success:          true,
		Message:          "Choice made",
		Narrative:        choice.Narrative,
		Changes:          req.delta,
		AvailableActions: available,
		SceneType:        scene.SceneType(),
		CombatInfo:       e.combatInfo(scene, activeSnapshot(req.state)),
	}
}
