package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func testStateFixture() *GameState {
	p, err := NewPlayer("Aria", BackgroundWarrior, nil)
	if err != nil {
		panic(err)
	}
	return NewGameState(p)
}

func TestDeltaEmpty(t *testing.T) {
	var nilDelta *Delta
	testutil.AssertEqual(t, "nil", nilDelta.Empty(), true)
	testutil.AssertEqual(t, "zero", (&Delta{}).Empty(), true)

	d := &Delta{}
	d.SetPlayerHP(10)
	testutil.AssertEqual(t, "hp set", d.Empty(), false)

	testutil.AssertEqual(t, "scene set", (&Delta{Scene: "x"}).Empty(), false)
	testutil.AssertEqual(t, "cleared", (&Delta{CombatCleared: true}).Empty(), false)
}

func TestDeltaMerge(t *testing.T) {
	d := &Delta{
		Scene:      "crossroads",
		Flags:      map[string]any{"a": 1},
		GoldGained: 5,
		Drops:      []InventoryStack{{ID: "rope", Quantity: 1}},
	}
	d.SetPlayerHP(12)

	later := &Delta{
		Scene:      "lighthouse",
		Flags:      map[string]any{"b": 2},
		GoldGained: 10,
		Drops:      []InventoryStack{{ID: "lamp_oil", Quantity: 2}},
	}
	later.SetPlayerHP(8)

	d.Merge(later)

	testutil.AssertEqual(t, "scene", d.Scene, "lighthouse")
	testutil.AssertEqual(t, "flag a", d.Flags["a"], 1)
	testutil.AssertEqual(t, "flag b", d.Flags["b"], 2)
	testutil.AssertEqual(t, "hp", *d.PlayerHP, 8)
	testutil.AssertEqual(t, "gold accumulates", d.GoldGained, 15)
	testutil.AssertEqual(t, "drops accumulate", len(d.Drops), 2)
}

func TestDeltaMergeCombat(t *testing.T) {
	t.Run("snapshot clears the cleared mark", func(t *testing.T) {
		d := &Delta{CombatCleared: true}
		d.Merge(&Delta{Combat: &CombatSnapshot{EnemyID: "wisp"}})

		testutil.AssertEqual(t, "cleared", d.CombatCleared, false)
		if d.Combat == nil {
			t.Fatal("expected snapshot")
		}
	})

	t.Run("cleared mark drops the snapshot", func(t *testing.T) {
		d := &Delta{Combat: &CombatSnapshot{EnemyID: "wisp"}}
		d.Merge(&Delta{CombatCleared: true})

		testutil.AssertEqual(t, "cleared", d.CombatCleared, true)
		if d.Combat != nil {
			t.Fatal("expected no snapshot")
		}
	})
}

func TestApply(t *testing.T) {
	s := testStateFixture()
	s.Flags["stale"] = true

	d := &Delta{
		Chapter: "act_one",
		Scene:   "harbor",
		Flags:   map[string]any{"met_keeper": true, "stale": nil},
		Drops: []InventoryStack{
			{ID: "red_potion", Name: "Red Glow Potion", Quantity: 1},
			{ID: "lamp_oil", Name: "Lamp Oil", Quantity: 2},
		},
		GoldGained: 15,
		Combat:     &CombatSnapshot{EnemyID: "wisp", Active: true},
	}
	d.SetPlayerHP(4)
	d.SetPlayerMP(99)

	s.Apply(d)

	testutil.AssertEqual(t, "chapter", s.Chapter, "act_one")
	testutil.AssertEqual(t, "scene", s.Scene, "harbor")
	testutil.AssertEqual(t, "flag set", s.Flags["met_keeper"], true)

	if _, still := s.Flags["stale"]; still {
		t.Fatal("expected a nil flag value to remove the key")
	}

	testutil.AssertEqual(t, "hp", s.Player.HP, 4)
	testutil.AssertEqual(t, "mp clamped", s.Player.MP, s.Player.MaxMP)

	// the warrior kit already holds red potions; the drop merges in
	testutil.AssertEqual(t, "stacks", len(s.Player.Inventory), 2)
	testutil.AssertEqual(t, "merged quantity", s.Player.Inventory[0].Quantity, 3)
	testutil.AssertEqual(t, "appended drop", s.Player.Inventory[1].ID, "lamp_oil")

	testutil.AssertEqual(t, "gold", s.Player.Gold, 65)

	if s.Combat == nil || !s.Combat.Active {
		t.Fatal("expected an active combat snapshot")
	}
	if s.Combat == d.Combat {
		t.Fatal("expected the snapshot to be cloned, not shared")
	}
}

func TestApplyCombatCleared(t *testing.T) {
	s := testStateFixture()
	s.Combat = &CombatSnapshot{EnemyID: "wisp", Active: true}

	s.Apply(&Delta{CombatCleared: true})

	if s.Combat != nil {
		t.Fatal("expected combat removed")
	}
}

func TestApplyInventoryReplace(t *testing.T) {
	s := testStateFixture()
	replacement := []InventoryStack{{ID: "rope", Name: "Hemp Rope", Quantity: 1}}

	s.Apply(&Delta{Inventory: replacement, InventoryChanged: true})

	testutil.AssertEqual(t, "stacks", len(s.Player.Inventory), 1)
	testutil.AssertEqual(t, "replaced", s.Player.Inventory[0].ID, "rope")

	// the applied copy is detached from the delta's slice
	replacement[0].Quantity = 9
	testutil.AssertEqual(t, "detached", s.Player.Inventory[0].Quantity, 1)
}

func TestApplyHPFloor(t *testing.T) {
	s := testStateFixture()
	d := &Delta{}
	d.SetPlayerHP(-5)

	s.Apply(d)

	testutil.AssertEqual(t, "floored", s.Player.HP, 0)
}
