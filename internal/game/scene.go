package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Action types the engine dispatches on. Scene action descriptors carry
// these in their type field.
const (
	ActionStart      = "start"
	ActionResume     = "resume"
	ActionChoice     = "choice"
	ActionSkillCheck = "skill_check"
	ActionAttack     = "attack"
	ActionUseItem    = "use_item"
	ActionContinue   = "continue"
	ActionCancel     = "cancel"
)

// Scene types.
const (
	SceneTypeNarrative = "narrative"
	SceneTypeCombat    = "combat"
)

// Chapter is one content pack: a titled collection of scenes loaded as a
// single asset file.
type Chapter struct {
	Title  string            `json:"title,omitempty"`
	Scenes map[string]*Scene `json:"scenes"`
}

// Validate satisfies storage.ValidatingSpec
func (c *Chapter) Validate() error {
	el := errors.NewErrorList()
	if len(c.Scenes) == 0 {
		el.Add(fmt.Errorf("chapter has no scenes"))
	}
	for id, scene := range c.Scenes {
		if scene == nil {
			el.Add(fmt.Errorf("scene %s is empty", id))
			continue
		}
		if err := scene.Validate(); err != nil {
			el.Add(fmt.Errorf("scene %s: %w", id, err))
		}
	}
	return el.Err()
}

// Scene is one narrative unit: its prose, the actions offered to the
// player, and optional combat wiring.
type Scene struct {
	// Type defaults to narrative when empty
	Type string `json:"type,omitempty"`

	Narrative []string `json:"narrative,omitempty"`

	// ResumeNarrative is the short variant shown when a session picks the
	// scene back up; the full Narrative is the fallback
	ResumeNarrative []string `json:"resume_narrative,omitempty"`

	Actions []ActionDescriptor `json:"actions,omitempty"`
	Choices map[string]*Choice `json:"choices,omitempty"`

	CombatInfo *SceneCombat `json:"combat_info,omitempty"`

	// OnEnter is merged into the save document whenever a transition
	// makes this scene current
	OnEnter *Delta `json:"on_enter_state_changes,omitempty"`

	// PostCombatScene is entered after winning this scene's encounter
	PostCombatScene string `json:"post_combat_scene,omitempty"`
}

// SceneType returns the scene's type tag, defaulting to narrative.
func (s *Scene) SceneType() string {
	if s == nil || s.Type == "" {
		return SceneTypeNarrative
	}
	return s.Type
}

// Resume returns the narrative to show when resuming into this scene.
func (s *Scene) Resume() []string {
	if len(s.ResumeNarrative) > 0 {
		return s.ResumeNarrative
	}
	return s.Narrative
}

// Validate checks the scene's internal consistency.
func (s *Scene) Validate() error {
	el := errors.NewErrorList()
	if s.Type == SceneTypeCombat && s.CombatInfo == nil {
		el.Add(fmt.Errorf("combat scene has no combat info"))
	}
	if s.CombatInfo != nil && s.CombatInfo.EnemyID == "" {
		el.Add(fmt.Errorf("combat info enemy id is required"))
	}
	for id, choice := range s.Choices {
		if choice == nil {
			el.Add(fmt.Errorf("choice %s is empty", id))
		}
	}
	return el.Err()
}

// SceneCombat wires a scene to its encounter.
type SceneCombat struct {
	EnemyID string `json:"enemy_id"`

	// Intro lines shown when the encounter opens
	Intro []string `json:"intro,omitempty"`
}

// Choice is one selectable branch in a scene. A choice either resolves
// directly or gates its outcome behind a skill check.
type Choice struct {
	Label     string   `json:"label,omitempty"`
	Narrative []string `json:"narrative,omitempty"`

	SkillCheck  *CheckSpec `json:"skill_check,omitempty"`
	SuccessText []string   `json:"success_text,omitempty"`
	FailureText []string   `json:"failure_text,omitempty"`

	// StateChanges applies on a direct choice, or on check success
	StateChanges *Delta `json:"state_changes,omitempty"`

	NextScene   string             `json:"next_scene,omitempty"`
	NextActions []ActionDescriptor `json:"next_actions,omitempty"`
}

// CheckSpec names the attribute and difficulty of a skill check.
type CheckSpec struct {
	Attribute  string `json:"attribute"`
	Difficulty string `json:"difficulty,omitempty"`
}

// ActionDescriptor is one entry in a scene's action menu. It is both the
// menu item shown to the player and, echoed back, the payload of the
// resulting action.
type ActionDescriptor struct {
	ID    string `json:"id,omitempty"`
	Type  string `json:"type"`
	Label string `json:"label,omitempty"`

	ChoiceID   string `json:"choice_id,omitempty"`
	ItemID     string `json:"item_id,omitempty"`
	AttackType string `json:"attack_type,omitempty"`
	EnemyID    string `json:"enemy_id,omitempty"`

	// Skill check payload for type skill_check
	Attribute   string   `json:"attribute,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	SuccessText []string `json:"success_text,omitempty"`
	FailureText []string `json:"failure_text,omitempty"`

	StateChanges *Delta             `json:"state_changes,omitempty"`
	NextScene    string             `json:"next_scene,omitempty"`
	NextActions  []ActionDescriptor `json:"next_actions,omitempty"`
}
