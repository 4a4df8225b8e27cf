package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// StartingChapter and StartingScene are where freshly created characters
// begin unless the session is configured otherwise.
const (
	StartingChapter = "prologue"
	StartingScene   = "dream_opening"
)

// GameState is the root save document for a single playthrough. The engine
// receives it as a read-only view and reports mutations as a Delta; only
// the owner of the document applies them.
type GameState struct {
	// Chapter is the content pack the player is in
	Chapter string `json:"chapter"`

	// Scene is the current scene id within Chapter
	Scene string `json:"scene"`

	Player Player `json:"player"`

	// Flags persists narrative branch memory (visited markers, quest
	// switches, timed effects)
	Flags map[string]any `json:"flags,omitempty"`

	// Combat is present iff an encounter is in progress
	Combat *CombatSnapshot `json:"combat,omitempty"`
}

// NewGameState returns the initial save document for a new character.
func NewGameState(p Player) *GameState {
	return &GameState{
		Chapter: StartingChapter,
		Scene:   StartingScene,
		Player:  p,
		Flags:   map[string]any{},
	}
}

// Validate satisfies storage.ValidatingSpec
func (s *GameState) Validate() error {
	el := errors.NewErrorList()
	if s.Chapter == "" {
		el.Add(fmt.Errorf("chapter is required"))
	}
	if s.Scene == "" {
		el.Add(fmt.Errorf("scene is required"))
	}
	el.Add(s.Player.Validate())
	return el.Err()
}

// Flag returns the named flag value, or nil when unset.
func (s *GameState) Flag(name string) any {
	if s.Flags == nil {
		return nil
	}
	return s.Flags[name]
}

// InCombat reports whether an encounter is active.
func (s *GameState) InCombat() bool {
	return s.Combat != nil && s.Combat.Active
}

// Player is the character sheet embedded in a save document.
type Player struct {
	Name       string `json:"name"`
	Background string `json:"background"`

	Attributes Attributes `json:"stats"`

	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	MP    int `json:"mp"`
	MaxMP int `json:"max_mp"`

	Gold int `json:"gold"`

	Inventory []InventoryStack `json:"inventory"`
	Equipment Equipment        `json:"equipment"`

	// Recipes the player has learned. Tracked for crafting content;
	// nothing in the engine consumes them yet.
	Recipes []string `json:"recipes"`

	// Choices records narrative decisions keyed by choice id
	Choices map[string]string `json:"choices"`
}

// Validate satisfies storage.ValidatingSpec
func (p *Player) Validate() error {
	el := errors.NewErrorList()
	if p.Name == "" {
		el.Add(fmt.Errorf("player name is required"))
	}
	if p.MaxHP < 1 {
		el.Add(fmt.Errorf("player max hp must be positive"))
	}
	if p.HP < 0 || p.HP > p.MaxHP {
		el.Add(fmt.Errorf("player hp out of range"))
	}
	if p.MP < 0 || p.MP > p.MaxMP {
		el.Add(fmt.Errorf("player mp out of range"))
	}
	return el.Err()
}

// Holds reports whether the player carries at least quantity of an item.
func (p *Player) Holds(itemID string, quantity int) bool {
	for _, stack := range p.Inventory {
		if stack.ID == itemID {
			return stack.Quantity >= quantity
		}
	}
	return false
}

// Attributes are the four core stats. Creation allocates each in [1, 5];
// an unset value reads as 2 so older saves keep working.
type Attributes struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Perception   int `json:"perception"`
}

const defaultAttribute = 2

// Value returns the attribute with the given name. Unknown names and
// unset values read as the default.
func (a Attributes) Value(name string) int {
	var v int
	switch name {
	case "strength":
		v = a.Strength
	case "dexterity":
		v = a.Dexterity
	case "intelligence":
		v = a.Intelligence
	case "perception":
		v = a.Perception
	default:
		return defaultAttribute
	}
	if v <= 0 {
		return defaultAttribute
	}
	return v
}

// Total sums all four attributes.
func (a Attributes) Total() int {
	return a.Strength + a.Dexterity + a.Intelligence + a.Perception
}

// Equipment names the item occupying each equipment slot. Empty means the
// slot is free.
type Equipment struct {
	Weapon     string `json:"weapon,omitempty"`
	Armor      string `json:"armor,omitempty"`
	Accessory1 string `json:"accessory1,omitempty"`
	Accessory2 string `json:"accessory2,omitempty"`
}

// InventoryStack is one carried item entry. At most one stack exists per
// item id; a stack never persists with quantity below 1.
type InventoryStack struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type,omitempty"`
	Quantity int    `json:"quantity"`
}

// CombatSnapshot is the persisted state of an in-progress encounter. It
// rides inside the save document so a fight survives disconnects.
type CombatSnapshot struct {
	EnemyID     string `json:"enemy_id"`
	EnemyName   string `json:"enemy_name"`
	EnemyHP     int    `json:"enemy_hp"`
	EnemyMaxHP  int    `json:"enemy_max_hp"`
	Evasion     int    `json:"evasion"`
	Armor       int    `json:"armor"`
	Turn        int    `json:"turn"`
	Active      bool   `json:"active"`
	PlayerHP    int    `json:"player_hp"`
	PlayerMaxHP int    `json:"player_max_hp"`
}

// Clone returns a copy the engine can mutate without touching the
// embedded original.
func (c *CombatSnapshot) Clone() *CombatSnapshot {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
