package inventory

import (
	"fmt"

	"github.com/halcyar/go-saga/internal/game"
)

// Manager applies the item rules against a loaded catalog. It holds no
// per-player state; callers pass inventories in and get updated copies
// back.
type Manager struct {
	catalog *game.Catalog
}

func NewManager(catalog *game.Catalog) *Manager {
	return &Manager{catalog: catalog}
}

// UseResult reports what consuming an item did. Failures leave the player
// untouched and the item unconsumed.
type UseResult struct {
	Success   bool
	Message   string
	Narrative []string

	// HPChange and MPChange are the amounts actually restored, already
	// clamped against the pool maximums
	HPChange int
	MPChange int

	StatusCured string
	BuffApplied string

	// Regen is set for timed regeneration effects; ticking it is the
	// caller's job
	Regen *Regen

	Consumed bool
}

// Regen is a timed heal-over-time grant.
type Regen struct {
	Value int
	Turns int
}

const defaultRegenTurns = 3

// CanUse checks whether an item may be used right now. The returned
// reason is player-facing.
func (m *Manager) CanUse(itemID string, inCombat bool) (bool, string) {
	item := m.catalog.Item(itemID)
	if item == nil {
		return false, "You can't find that item."
	}

	if !item.Usable() {
		return false, fmt.Sprintf("The %s cannot be used.", item.Name)
	}

	if inCombat && !item.UsableInCombat {
		return false, "That item cannot be used in combat."
	}

	return true, ""
}

// Use consumes one of the named item and reports its effect. The player
// is read, never written; the caller applies HPChange/MPChange and
// removes the consumed unit.
func (m *Manager) Use(itemID string, p *game.Player, inCombat bool) *UseResult {
	item := m.catalog.Item(itemID)
	if item == nil {
		return &UseResult{
			Success:   false,
			Message:   "Item does not exist",
			Narrative: []string{"You can't find that item."},
		}
	}

	if ok, reason := m.CanUse(itemID, inCombat); !ok {
		return &UseResult{
			Success:   false,
			Message:   "Cannot use that",
			Narrative: []string{reason},
		}
	}

	res := &UseResult{
		Success:   true,
		Message:   fmt.Sprintf("Used %s", item.Name),
		Narrative: []string{fmt.Sprintf("You use the %s.", item.Name)},
		Consumed:  true,
	}

	if item.Effect == nil {
		return res
	}

	switch item.Effect.Type {
	case game.EffectHealHP:
		heal := min(item.Effect.Value, p.MaxHP-p.HP)
		res.HPChange = heal
		if heal > 0 {
			res.Narrative = append(res.Narrative, fmt.Sprintf("You recover %d HP.", heal))
		} else {
			res.Narrative = append(res.Narrative, "Your HP is already full.")
		}

	case game.EffectHealMP:
		heal := min(item.Effect.Value, p.MaxMP-p.MP)
		res.MPChange = heal
		if heal > 0 {
			res.Narrative = append(res.Narrative, fmt.Sprintf("You recover %d MP.", heal))
		} else {
			res.Narrative = append(res.Narrative, "Your MP is already full.")
		}

	case game.EffectRegenHP:
		turns := item.Effect.Duration
		if turns <= 0 {
			turns = defaultRegenTurns
		}
		res.Regen = &Regen{Value: item.Effect.Value, Turns: turns}
		res.Narrative = append(res.Narrative,
			fmt.Sprintf("For the next %d turns, you recover %d HP each turn.", turns, item.Effect.Value))

	case game.EffectCureStatus:
		res.StatusCured = item.Effect.Status
		res.Narrative = append(res.Narrative,
			fmt.Sprintf("Your %s is cured.", statusName(item.Effect.Status)))

	case game.EffectCureAllStatus:
		res.StatusCured = "all"
		res.Narrative = append(res.Narrative, "All of your ailments are cured.")

	case game.EffectBuff:
		res.BuffApplied = item.Effect.BuffID
		res.Narrative = append(res.Narrative,
			fmt.Sprintf("You gain %s.", buffName(item.Effect.BuffID)))

	case game.EffectDamageAOE:
		res.Narrative = append(res.Narrative,
			fmt.Sprintf("All enemies take %d damage!", item.Effect.Value))
	}

	return res
}

// Add puts quantity of an item into an inventory sequence, merging with
// an existing stack. Unknown items leave the sequence unchanged.
func (m *Manager) Add(inv []game.InventoryStack, itemID string, quantity int) []game.InventoryStack {
	item := m.catalog.Item(itemID)
	if item == nil {
		return inv
	}

	for i := range inv {
		if inv[i].ID == itemID {
			inv[i].Quantity += quantity
			return inv
		}
	}

	return append(inv, game.InventoryStack{
		ID:       itemID,
		Name:     item.Name,
		Type:     item.Type,
		Quantity: quantity,
	})
}

// Remove takes quantity of an item out of an inventory sequence. When the
// holdings don't cover the request, the sequence comes back unchanged and
// ok is false. Removing a stack's last unit deletes the entry.
func (m *Manager) Remove(inv []game.InventoryStack, itemID string, quantity int) ([]game.InventoryStack, bool) {
	for i := range inv {
		if inv[i].ID != itemID {
			continue
		}

		switch {
		case inv[i].Quantity < quantity:
			return inv, false
		case inv[i].Quantity == quantity:
			return append(inv[:i:i], inv[i+1:]...), true
		default:
			inv[i].Quantity -= quantity
			return inv, true
		}
	}

	return inv, false
}

// UsableItem is one menu entry for item selection.
type UsableItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description,omitempty"`
}

// UsableItems filters an inventory down to the entries that pass CanUse
// in the given context.
func (m *Manager) UsableItems(inv []game.InventoryStack, inCombat bool) []UsableItem {
	var usable []UsableItem
	for _, stack := range inv {
		if ok, _ := m.CanUse(stack.ID, inCombat); !ok {
			continue
		}

		entry := UsableItem{
			ID:       stack.ID,
			Name:     stack.Name,
			Quantity: stack.Quantity,
		}
		if entry.Name == "" {
			entry.Name = m.catalog.ItemName(stack.ID)
		}
		if item := m.catalog.Item(stack.ID); item != nil {
			entry.Description = item.Description
		}
		usable = append(usable, entry)
	}
	return usable
}

var statusNames = map[string]string{
	"poison": "poison",
	"blind":  "blindness",
	"fear":   "fear",
}

func statusName(id string) string {
	if name, ok := statusNames[id]; ok {
		return name
	}
	return id
}

var buffNames = map[string]string{
	"fire_resist": "fire resistance",
	"ice_resist":  "frost resistance",
}

func buffName(id string) string {
	if name, ok := buffNames[id]; ok {
		return name
	}
	return id
}
