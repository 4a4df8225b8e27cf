package engine

import (
	"github.com/halcyar/go-saga/internal/dice"
	"github.com/halcyar/go-saga/internal/game"
)

// Result is the outcome of resolving one action.
type Result struct {
	// Success reports whether the action achieved its effect. A failed
	// skill check and an invalid payload both report false.
	Success bool `json:"success"`

	Message string `json:"message,omitempty"`

	// Narrative is the prose to show, one line per entry; empty strings
	// are paragraph breaks
	Narrative []string `json:"narrative"`

	// Changes is the sparse delta to apply to the save document. Never
	// nil, possibly empty.
	Changes *game.Delta `json:"state_changes"`

	AvailableActions []game.ActionDescriptor `json:"available_actions"`

	// Dice reports the roll behind a skill check
	Dice *DiceResult `json:"dice_result,omitempty"`

	SceneType  string      `json:"scene_type,omitempty"`
	CombatInfo *CombatInfo `json:"combat_info,omitempty"`
}

// DiceResult is the d100 roll behind a resolved check.
type DiceResult struct {
	Roll           int          `json:"roll"`
	Threshold      int          `json:"target"`
	Outcome        dice.Outcome `json:"result"`
	Attribute      string       `json:"attribute"`
	AttributeValue int          `json:"attribute_value"`
}

// CombatInfo summarizes the encounter attached to a result.
type CombatInfo struct {
	EnemyID    string `json:"enemy_id"`
	EnemyName  string `json:"enemy_name"`
	EnemyHP    int    `json:"enemy_hp"`
	EnemyMaxHP int    `json:"enemy_max_hp"`
	Evasion    int    `json:"evasion"`
	Turn       int    `json:"turn,omitempty"`
}

// failure builds a failed result. The delta stays empty; the caller
// hands the player their current options back.
func failure(message string, narrative []string, actions []game.ActionDescriptor) *Result {
	return &Result{
		Message:          message,
		Narrative:        narrative,
		Changes:          &game.Delta{},
		AvailableActions: actions,
	}
}
