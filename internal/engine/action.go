package engine

import "github.com/halcyar/go-saga/internal/game"

// Action is one player input. Clients echo the fields of the menu entry
// they picked into Data, so the engine never has to remember what it
// offered.
type Action struct {
	Type string     `json:"action_type"`
	Data ActionData `json:"action_data,omitempty"`
}

// ActionData is the per-type payload. Each handler reads only the fields
// it names; the rest are ignored.
type ActionData struct {
	ChoiceID string `json:"choice_id,omitempty"`

	ItemID string `json:"item_id,omitempty"`

	AttackType string `json:"attack_type,omitempty"`
	EnemyID    string `json:"enemy_id,omitempty"`

	Attribute   string   `json:"attribute,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	SuccessText []string `json:"success_text,omitempty"`
	FailureText []string `json:"failure_text,omitempty"`

	StateChanges *game.Delta             `json:"state_changes,omitempty"`
	NextScene    string                  `json:"next_scene,omitempty"`
	NextActions  []game.ActionDescriptor `json:"next_actions,omitempty"`
}

// FromDescriptor converts a picked menu entry into the action it
// describes.
func FromDescriptor(d game.ActionDescriptor) Action {
	return Action{
		Type: d.Type,
		Data: ActionData{
			ChoiceID:     d.ChoiceID,
			ItemID:       d.ItemID,
			AttackType:   d.AttackType,
			EnemyID:      d.EnemyID,
			Attribute:    d.Attribute,
			Difficulty:   d.Difficulty,
			SuccessText:  d.SuccessText,
			FailureText:  d.FailureText,
			StateChanges: d.StateChanges,
			NextScene:    d.NextScene,
			NextActions:  d.NextActions,
		},
	}
}
