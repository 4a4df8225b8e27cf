package inventory

import "github.com/halcyar/go-saga/internal/game"

const baseCarryCapacity = 10

// Weight totals an inventory's carry weight. Items missing from the
// catalog weigh nothing.
func (m *Manager) Weight(inv []game.InventoryStack) float64 {
	var total float64
	for _, stack := range inv {
		if item := m.catalog.Item(stack.ID); item != nil {
			total += item.Weight * float64(stack.Quantity)
		}
	}
	return total
}

// Capacity returns how much the player can carry. Strength is the only
// modifier for now.
func (m *Manager) Capacity(p *game.Player) float64 {
	return float64(baseCarryCapacity + p.Attributes.Value("strength"))
}

// Overweight reports whether the inventory exceeds the player's capacity.
// Advisory only; nothing blocks on it.
func (m *Manager) Overweight(inv []game.InventoryStack, p *game.Player) bool {
	return m.Weight(inv) > m.Capacity(p)
}

// WeaponProfile describes the equipped weapon's combat contribution.
type WeaponProfile struct {
	Damage    int
	Attribute string
	Light     bool
}

// Unarmed strikes use these numbers, as does any equipped weapon the
// catalog no longer knows.
var unarmed = WeaponProfile{Damage: 2, Attribute: "strength"}

// WeaponDamage resolves the player's equipped weapon into its damage
// profile.
func (m *Manager) WeaponDamage(p *game.Player) WeaponProfile {
	weaponID := p.Equipment.Weapon
	if weaponID == "" {
		return unarmed
	}

	weapon := m.catalog.Item(weaponID)
	if weapon == nil {
		return unarmed
	}

	profile := WeaponProfile{
		Damage:    weapon.Damage,
		Attribute: weapon.Attribute,
		Light:     weapon.IsLight,
	}
	if profile.Damage == 0 {
		profile.Damage = unarmed.Damage
	}
	if profile.Attribute == "" {
		profile.Attribute = unarmed.Attribute
	}
	return profile
}
