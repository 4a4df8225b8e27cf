package engine

import "github.com/halcyar/go-saga/internal/game"

// handleContinue advances the story, following the payload's scene
// reference when one is given and re-presenting the scene otherwise.
func (e *Engine) handleContinue(req *request) *Result {
	p := &req.state.Player

	var narrative []string
	if !req.state.InCombat() {
		hp, regenLines := e.tickRegen(req, p.HP, p.MaxHP)
		if hp != p.HP {
			req.delta.SetPlayerHP(hp)
		}
		narrative = append(narrative, regenLines...)
	}

	scene := req.scene
	if next := req.action.Data.NextScene; next != "" {
		scene = e.transition(req, next)
	}

	narrative = append(narrative, sceneNarrative(scene)...)

	return &Result{
		Success:          true,
		Message:          "Continuing",
		Narrative:        narrative,
		Changes:          req.delta,
		AvailableActions: sceneActions(scene),
		SceneType:        scene.SceneType(),
		CombatInfo:       e.combatInfo(scene, activeSnapshot(req.state)),
	}
}

// sceneNarrative returns a scene's prose, or an ellipsis when the
// catalog has nothing for it.
func sceneNarrative(s *game.Scene) []string {
	if s == nil || len(s.Narrative) == 0 {
		return []string{"..."}
	}
	return s.Narrative
}

// handleCancel backs out of a submenu, reoffering the options for where
// the player stands. Pure navigation; the delta stays empty.
func (e *Engine) handleCancel(req *request) *Result {
	res := &Result{
		Success:          true,
		Message:          "Cancelled",
		Narrative:        []string{},
		Changes:          req.delta,
		AvailableActions: e.currentActions(req),
		SceneType:        req.scene.SceneType(),
	}
	if req.state.InCombat() {
		res.SceneType = game.SceneTypeCombat
		res.CombatInfo = e.combatInfo(req.scene, req.state.Combat)
	}
	return res
}
