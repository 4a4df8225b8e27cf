package game

import "fmt"

// Background is a character origin. Each grants one attribute point and a
// small starting kit on top of the allocated attributes.
type Background string

const (
	BackgroundWarrior   Background = "warrior"
	BackgroundHerbalist Background = "herbalist"
	BackgroundMage      Background = "mage"
)

// Backgrounds lists the selectable origins in display order.
func Backgrounds() []Background {
	return []Background{BackgroundWarrior, BackgroundHerbalist, BackgroundMage}
}

// ParseBackground validates a background name.
func ParseBackground(name string) (Background, error) {
	switch Background(name) {
	case BackgroundWarrior, BackgroundHerbalist, BackgroundMage:
		return Background(name), nil
	}
	return "", fmt.Errorf("unknown background %q", name)
}

// Description returns the selection text for a background.
func (b Background) Description() string {
	switch b {
	case BackgroundWarrior:
		return "Warrior - raised on the drill yard (+1 strength)"
	case BackgroundHerbalist:
		return "Herbalist - trained to read the wilds (+1 perception)"
	case BackgroundMage:
		return "Mage - schooled in the old arts (+1 intelligence)"
	}
	return string(b)
}

const (
	// AllocatablePoints is the attribute total a new character distributes
	AllocatablePoints = 9

	attributeMin = 1
	attributeMax = 5

	startingGold = 50
)

// DefaultAttributes is the spread used when the player skips manual
// allocation.
func DefaultAttributes() Attributes {
	return Attributes{Strength: 2, Dexterity: 2, Intelligence: 2, Perception: 2}
}

// ValidateAllocation checks a manual attribute spread: every attribute in
// [1, 5] and the four together totalling exactly the allocatable points.
func ValidateAllocation(a Attributes) error {
	for _, v := range []struct {
		name string
		val  int
	}{
		{"strength", a.Strength},
		{"dexterity", a.Dexterity},
		{"intelligence", a.Intelligence},
		{"perception", a.Perception},
	} {
		if v.val < attributeMin || v.val > attributeMax {
			return fmt.Errorf("%s must be between %d and %d", v.name, attributeMin, attributeMax)
		}
	}
	if a.Total() != AllocatablePoints {
		return fmt.Errorf("attributes must total %d points, got %d", AllocatablePoints, a.Total())
	}
	return nil
}

// NewPlayer builds a level-one character sheet. attrs of nil means the
// default spread; a provided spread must pass ValidateAllocation. The
// background bonus lands after allocation, so derived pools include it.
func NewPlayer(name string, background Background, attrs *Attributes) (Player, error) {
	if name == "" {
		return Player{}, fmt.Errorf("player name is required")
	}

	base := DefaultAttributes()
	if attrs != nil {
		if err := ValidateAllocation(*attrs); err != nil {
			return Player{}, err
		}
		base = *attrs
	}

	var kit []InventoryStack
	switch background {
	case BackgroundWarrior:
		base.Strength++
		kit = []InventoryStack{{ID: "red_potion", Name: "Red Glow Potion", Type: "consumable", Quantity: 2}}
	case BackgroundHerbalist:
		base.Perception++
		kit = []InventoryStack{{ID: "green_potion", Name: "Green Glow Potion", Type: "consumable", Quantity: 2}}
	case BackgroundMage:
		base.Intelligence++
		kit = []InventoryStack{{ID: "blue_potion", Name: "Blue Glow Potion", Type: "consumable", Quantity: 2}}
	default:
		return Player{}, fmt.Errorf("unknown background %q", background)
	}

	maxHP := 20 + base.Strength*2
	maxMP := 10 + base.Intelligence*2

	return Player{
		Name:       name,
		Background: string(background),
		Attributes: base,
		HP:         maxHP,
		MaxHP:      maxHP,
		MP:         maxMP,
		MaxMP:      maxMP,
		Gold:       startingGold,
		Inventory:  kit,
		Recipes:    []string{},
		Choices:    map[string]string{},
	}, nil
}
