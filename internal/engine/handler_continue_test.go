package engine

import (
	"testing"

	"github.com/halcyar/go-saga/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestHandleContinue(t *testing.T) {
	tests := map[string]struct {
		nextScene    string
		expScene     string
		expLine      string
		expActions   int
		expLighthHit bool
	}{
		"follows the payload reference": {
			nextScene:  "crossroads",
			expScene:   "crossroads",
			expLine:    "The road forks beneath a dead oak.",
			expActions: 2,
		},
		"re-presents the current scene": {
			expLine:    "You wake from a restless dream.",
			expActions: 1,
		},
		"merges the target's on-enter changes": {
			nextScene:    "lighthouse",
			expScene:     "lighthouse",
			expLine:      "You reach the lighthouse.",
			expActions:   1,
			expLighthHit: true,
		},
		"dangling reference": {
			nextScene:  "nowhere",
			expScene:   "nowhere",
			expLine:    "...",
			expActions: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newTestEngine()
			state := testState()

			res := e.Resolve(state, Action{
				Type: game.ActionContinue,
				Data: ActionData{NextScene: tt.nextScene},
			})

			testutil.AssertEqual(t, "success", res.Success, true)
			testutil.AssertEqual(t, "message", res.Message, "Continuing")
			testutil.AssertEqual(t, "scene", res.Changes.Scene, tt.expScene)
			testutil.AssertEqual(t, "narrative", res.Narrative[0], tt.expLine)
			testutil.AssertEqual(t, "actions", len(res.AvailableActions), tt.expActions)

			_, flagged := res.Changes.Flags["reached_lighthouse"]
			testutil.AssertEqual(t, "on enter flag", flagged, tt.expLighthHit)
		})
	}
}

func TestHandleContinueRegen(t *testing.T) {
	e := newTestEngine()
	state := testState()
	state.Player.HP = 20
	state.Flags["regen_hp"] = map[string]any{"value": 3, "turns": 1}

	res := e.Resolve(state, Action{Type: game.ActionContinue})

	testutil.AssertEqual(t, "heal line", res.Narrative[0], "Regeneration restores 3 HP.")
	testutil.AssertEqual(t, "fade line", res.Narrative[1], "The regeneration fades.")

	if res.Changes.PlayerHP == nil {
		t.Fatal("expected player hp in delta")
	}
	testutil.AssertEqual(t, "player hp", *res.Changes.PlayerHP, 23)

	cleared, present := res.Changes.Flags["regen_hp"]
	testutil.AssertEqual(t, "flag entry present", present, true)
	if cleared != nil {
		t.Fatalf("expected nil flag to clear the effect, got %v", cleared)
	}

	// applying the delta removes the flag from the document
	state.Apply(res.Changes)
	if _, still := state.Flags["regen_hp"]; still {
		t.Fatal("expected the applied delta to drop the regen flag")
	}
	testutil.AssertEqual(t, "applied hp", state.Player.HP, 23)
}

func TestHandleCancel(t *testing.T) {
	t.Run("out of combat", func(t *testing.T) {
		e := newTestEngine()
		state := testState()
		state.Scene = "crossroads"

		res := e.Resolve(state, Action{Type: game.ActionCancel})

		testutil.AssertEqual(t, "success", res.Success, true)
		testutil.AssertEqual(t, "message", res.Message, "Cancelled")
		testutil.AssertEqual(t, "actions", len(res.AvailableActions), 2)
		testutil.AssertEqual(t, "delta empty", res.Changes.Empty(), true)
	})

	t.Run("in combat", func(t *testing.T) {
		e := newTestEngine()
		state := testState()
		state.Scene = "wisp_den"
		state.Combat = wispSnapshot(8, 22, 2)

		res := e.Resolve(state, Action{Type: game.ActionCancel})

		testutil.AssertEqual(t, "scene type", res.SceneType, game.SceneTypeCombat)
		testutil.AssertEqual(t, "actions", len(res.AvailableActions), 3)
		if res.CombatInfo == nil {
			t.Fatal("expected combat info")
		}
		testutil.AssertEqual(t, "enemy hp", res.CombatInfo.EnemyHP, 8)
	})

	t.Run("spell gated by mp", func(t *testing.T) {
		e := newTestEngine()
		state := testState()
		state.Scene = "wisp_den"
		state.Combat = wispSnapshot(8, 22, 2)
		state.Player.MP = 2

		res := e.Resolve(state, Action{Type: game.ActionCancel})

		testutil.AssertEqual(t, "actions", len(res.AvailableActions), 2)
		testutil.AssertEqual(t, "first", res.AvailableActions[0].AttackType, "melee")
		testutil.AssertEqual(t, "second", res.AvailableActions[1].Type, game.ActionUseItem)
	})

	t.Run("item entry gated by usable stock", func(t *testing.T) {
		e := newTestEngine()
		state := testState()
		state.Scene = "wisp_den"
		state.Combat = wispSnapshot(8, 22, 2)
		state.Player.Inventory = nil

		res := e.Resolve(state, Action{Type: game.ActionCancel})

		testutil.AssertEqual(t, "actions", len(res.AvailableActions), 2)
		testutil.AssertEqual(t, "second", res.AvailableActions[1].AttackType, "magic")
	})
}
