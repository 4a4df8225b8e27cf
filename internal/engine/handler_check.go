package engine

import (
	"fmt"

	"github.com/halcyar/go-saga/internal/dice"
	"github.com/halcyar/go-saga/internal/game"
)

// defaultCheckAttribute governs checks whose payload names no attribute.
const defaultCheckAttribute = "perception"

// checkRequest is the distilled payload of a skill check, whether it
// arrived as a raw action or folded into a choice.
type checkRequest struct {
	attribute   string
	difficulty  string
	successText []string
	failureText []string
	changes     *game.Delta
	nextScene   string
	nextActions []game.ActionDescriptor
}

// handleSkillCheck rolls a d100 against an attribute threshold.
func (e *Engine) handleSkillCheck(req *request) *Result {
	d := req.action.Data
	return e.performCheck(req, checkRequest{
		attribute:   d.Attribute,
		difficulty:  d.Difficulty,
		successText: d.SuccessText,
		failureText: d.FailureText,
		changes:     d.StateChanges,
		nextScene:   d.NextScene,
		nextActions: d.NextActions,
	})
}

// performCheck resolves one check. Success applies the payload's changes
// and transition; failure narrates and leaves the document alone. The
// dice result rides along either way.
func (e *Engine) performCheck(req *request, check checkRequest) *Result {
	attribute := check.attribute
	if attribute == "" {
		attribute = defaultCheckAttribute
	}
	attrValue := req.state.Player.Attributes.Value(attribute)

	res := dice.Check(e.roller, attrValue, dice.ParseDifficulty(check.difficulty))
	passed := res.Outcome.Succeeded()

	scene := req.scene
	var narrative []string
	if passed {
		narrative = check.successText
		if len(narrative) == 0 {
			narrative = []string{"You succeed."}
		}
		req.delta.Merge(check.changes)
		if check.nextScene != "" {
			scene = e.transition(req, check.nextScene)
		}
	} else {
		narrative = check.failureText
		if len(narrative) == 0 {
			narrative = []string{"You fail."}
		}
	}

	available := check.nextActions
	if available == nil {
		available = sceneActions(scene)
	}

	message := fmt.Sprintf("Failure (%d/%d)", res.Roll, res.Threshold)
	if passed {
		message = fmt.Sprintf("Success (%d/%d)", res.Roll, res.Threshold)
	}

	return &Result{
		Success:          passed,
		Message:          message,
		Narrative:        narrative,
		Changes:          req.delta,
		AvailableActions: available,
		Dice: &DiceResult{
			Roll:           res.Roll,
			Threshold:      res.Threshold,
			Outcome:        res.Outcome,
			Attribute:      attribute,
			AttributeValue: attrValue,
		},
		SceneType:  scene.SceneType(),
		CombatInfo: e.combatInfo(scene, activeSnapshot(req.state)),
	}
}
