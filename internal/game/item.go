package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Item types recognized by the inventory rules. Only consumable and misc
// items can be used directly.
const (
	ItemTypeConsumable = "consumable"
	ItemTypeMaterial   = "material"
	ItemTypeWeapon     = "weapon"
	ItemTypeArmor      = "armor"
	ItemTypeAccessory  = "accessory"
	ItemTypeKeyItem    = "key_item"
	ItemTypeAmmo       = "ammo"
	ItemTypeMisc       = "misc"
)

// Item effect types.
const (
	EffectHealHP        = "heal_hp"
	EffectHealMP        = "heal_mp"
	EffectRegenHP       = "regen_hp"
	EffectCureStatus    = "cure_status"
	EffectCureAllStatus = "cure_all_status"
	EffectBuff          = "buff"
	EffectDamageAOE     = "damage_aoe"
)

// Item defines one catalog item loaded from asset files.
type Item struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type"`
	Weight      float64 `json:"weight,omitempty"`

	// Weapon fields, read only for type "weapon"
	Damage    int    `json:"damage,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	IsLight   bool   `json:"is_light,omitempty"`

	Effect         *ItemEffect `json:"effect,omitempty"`
	UsableInCombat bool        `json:"usable_in_combat,omitempty"`
}

// ItemEffect is what happens when a usable item is consumed. Which
// parameter fields apply depends on Type.
type ItemEffect struct {
	Type     string `json:"type"`
	Value    int    `json:"value,omitempty"`
	Duration int    `json:"duration,omitempty"`
	Status   string `json:"status,omitempty"`
	BuffID   string `json:"buff_id,omitempty"`
}

var itemTypes = map[string]bool{
	ItemTypeConsumable: true,
	ItemTypeMaterial:   true,
	ItemTypeWeapon:     true,
	ItemTypeArmor:      true,
	ItemTypeAccessory:  true,
	ItemTypeKeyItem:    true,
	ItemTypeAmmo:       true,
	ItemTypeMisc:       true,
}

// Validate satisfies storage.ValidatingSpec
func (i *Item) Validate() error {
	el := errors.NewErrorList()
	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if !itemTypes[i.Type] {
		el.Add(fmt.Errorf("unknown item type %q", i.Type))
	}
	if i.Weight < 0 {
		el.Add(fmt.Errorf("item weight cannot be negative"))
	}
	if i.Effect != nil && i.Effect.Type == "" {
		el.Add(fmt.Errorf("item effect type is required"))
	}
	return el.Err()
}

// Usable reports whether the item type can be used directly.
func (i *Item) Usable() bool {
	return i.Type == ItemTypeConsumable || i.Type == ItemTypeMisc
}
