package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Enemy defines one opponent loaded from asset files.
type Enemy struct {
	Name    string `json:"name"`
	HP      int    `json:"hp"`
	MaxHP   int    `json:"max_hp"`
	Evasion int    `json:"evasion"`
	Armor   int    `json:"armor,omitempty"`

	// Weakness names a damage affinity (e.g. "light"). Matching attacks
	// add WeaknessBonus damage before armor.
	Weakness      string `json:"weakness,omitempty"`
	WeaknessBonus int    `json:"weakness_bonus,omitempty"`

	Attacks []EnemyAttack    `json:"attacks,omitempty"`
	Drops   []InventoryStack `json:"drops,omitempty"`
	Exp     int              `json:"exp,omitempty"`
}

// EnemyAttack is one move an enemy can take on its turn.
type EnemyAttack struct {
	Description string `json:"description,omitempty"`

	Damage int `json:"damage,omitempty"`

	// Effect optionally names a status applied when an independent d100
	// rolls at or under EffectChance
	Effect       string `json:"effect,omitempty"`
	EffectChance int    `json:"effect_chance,omitempty"`
}

const (
	defaultWeaknessBonus = 2
	defaultAttackDamage  = 4
	defaultExpReward     = 10
)

// BonusAgainstWeakness returns the extra damage for hitting this enemy's
// weakness.
func (e *Enemy) BonusAgainstWeakness() int {
	if e.WeaknessBonus > 0 {
		return e.WeaknessBonus
	}
	return defaultWeaknessBonus
}

// AttackDamage returns the damage of one attack entry.
func (a EnemyAttack) AttackDamage() int {
	if a.Damage > 0 {
		return a.Damage
	}
	return defaultAttackDamage
}

// ExpReward returns the experience granted for defeating this enemy.
func (e *Enemy) ExpReward() int {
	if e.Exp > 0 {
		return e.Exp
	}
	return defaultExpReward
}

// Validate satisfies storage.ValidatingSpec
func (e *Enemy) Validate() error {
	el := errors.NewErrorList()
	if e.Name == "" {
		el.Add(fmt.Errorf("enemy name is required"))
	}
	if e.HP < 1 {
		el.Add(fmt.Errorf("enemy hp must be positive"))
	}
	if e.MaxHP < e.HP {
		el.Add(fmt.Errorf("enemy max hp cannot be below hp"))
	}
	if e.Evasion < 0 {
		el.Add(fmt.Errorf("enemy evasion cannot be negative"))
	}
	for i, d := range e.Drops {
		if d.ID == "" {
			el.Add(fmt.Errorf("drop %d: id is required", i))
		}
		if d.Quantity < 1 {
			el.Add(fmt.Errorf("drop %d: quantity must be positive", i))
		}
	}
	return el.Err()
}
