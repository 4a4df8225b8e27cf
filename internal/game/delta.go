package game

// Delta is the sparse change-set an action resolution reports. The engine
// never mutates the save document it was given; the document's owner
// applies the delta with Apply. Zero-valued fields mean "untouched".
type Delta struct {
	Chapter string `json:"chapter,omitempty"`
	Scene   string `json:"scene,omitempty"`

	// Flags merge into the document's flag map; existing keys not named
	// here survive. A nil value removes the key.
	Flags map[string]any `json:"flags,omitempty"`

	// PlayerHP and PlayerMP are absolute values, nil when unchanged
	PlayerHP *int `json:"player_hp,omitempty"`
	PlayerMP *int `json:"player_mp,omitempty"`

	// Inventory replaces the whole sequence when InventoryChanged is set
	Inventory        []InventoryStack `json:"inventory,omitempty"`
	InventoryChanged bool             `json:"inventory_changed,omitempty"`

	// Combat replaces the embedded snapshot; CombatCleared removes it
	Combat        *CombatSnapshot `json:"combat,omitempty"`
	CombatCleared bool            `json:"combat_cleared,omitempty"`

	// Victory rewards
	GoldGained    int              `json:"gold_gained,omitempty"`
	Drops         []InventoryStack `json:"drops,omitempty"`
	CombatVictory bool             `json:"combat_victory,omitempty"`
}

// SetPlayerHP records an absolute hp value.
func (d *Delta) SetPlayerHP(v int) {
	d.PlayerHP = &v
}

// SetPlayerMP records an absolute mp value.
func (d *Delta) SetPlayerMP(v int) {
	d.PlayerMP = &v
}

// SetFlag records one flag entry.
func (d *Delta) SetFlag(name string, value any) {
	if d.Flags == nil {
		d.Flags = map[string]any{}
	}
	d.Flags[name] = value
}

// Empty reports whether the delta changes anything at all.
func (d *Delta) Empty() bool {
	if d == nil {
		return true
	}
	return d.Chapter == "" && d.Scene == "" && len(d.Flags) == 0 &&
		d.PlayerHP == nil && d.PlayerMP == nil &&
		!d.InventoryChanged && d.Combat == nil && !d.CombatCleared &&
		d.GoldGained == 0 && len(d.Drops) == 0 && !d.CombatVictory
}

// Merge folds a later delta into this one. Scalar fields from o win when
// set; flags merge; drops and gold accumulate.
func (d *Delta) Merge(o *Delta) {
	if o == nil {
		return
	}
	if o.Chapter != "" {
		d.Chapter = o.Chapter
	}
	if o.Scene != "" {
		d.Scene = o.Scene
	}
	for k, v := range o.Flags {
		d.SetFlag(k, v)
	}
	if o.PlayerHP != nil {
		d.PlayerHP = o.PlayerHP
	}
	if o.PlayerMP != nil {
		d.PlayerMP = o.PlayerMP
	}
	if o.InventoryChanged {
		d.Inventory = o.Inventory
		d.InventoryChanged = true
	}
	if o.Combat != nil {
		d.Combat = o.Combat
		d.CombatCleared = false
	}
	if o.CombatCleared {
		d.Combat = nil
		d.CombatCleared = true
	}
	d.GoldGained += o.GoldGained
	d.Drops = append(d.Drops, o.Drops...)
	if o.CombatVictory {
		d.CombatVictory = true
	}
}

// Apply merges the delta into a save document. This is the reference
// merge; anything that owns a GameState uses it rather than reimplementing
// the key semantics.
func (s *GameState) Apply(d *Delta) {
	if d == nil {
		return
	}

	if d.Chapter != "" {
		s.Chapter = d.Chapter
	}
	if d.Scene != "" {
		s.Scene = d.Scene
	}

	if len(d.Flags) > 0 {
		if s.Flags == nil {
			s.Flags = map[string]any{}
		}
		for k, v := range d.Flags {
			if v == nil {
				delete(s.Flags, k)
				continue
			}
			s.Flags[k] = v
		}
	}

	if d.PlayerHP != nil {
		s.Player.HP = clamp(*d.PlayerHP, 0, s.Player.MaxHP)
	}
	if d.PlayerMP != nil {
		s.Player.MP = clamp(*d.PlayerMP, 0, s.Player.MaxMP)
	}

	if d.InventoryChanged {
		s.Player.Inventory = append([]InventoryStack(nil), d.Inventory...)
	}

	for _, drop := range d.Drops {
		s.Player.Inventory = stackInto(s.Player.Inventory, drop)
	}
	s.Player.Gold += d.GoldGained

	if d.Combat != nil {
		s.Combat = d.Combat.Clone()
	}
	if d.CombatCleared {
		s.Combat = nil
	}
}

// stackInto adds a grant to an inventory sequence, merging with an
// existing stack of the same item.
func stackInto(inv []InventoryStack, grant InventoryStack) []InventoryStack {
	for i := range inv {
		if inv[i].ID == grant.ID {
			inv[i].Quantity += grant.Quantity
			return inv
		}
	}
	return append(inv, grant)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
