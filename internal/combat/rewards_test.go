package combat

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestVictoryRewards(t *testing.T) {
	m := NewManager(testCatalog(), &fixedRoller{})

	t.Run("gold and items split", func(t *testing.T) {
		rewards := m.VictoryRewards("shadow_wisp")

		testutil.AssertEqual(t, "gold", rewards.Gold, 15)
		testutil.AssertEqual(t, "exp", rewards.Exp, 20)
		if len(rewards.Items) != 1 {
			t.Fatalf("expected 1 item drop, got %v", rewards.Items)
		}
		testutil.AssertEqual(t, "item id", rewards.Items[0].ID, "shadow_essence")
		testutil.AssertEqual(t, "item quantity", rewards.Items[0].Quantity, 1)
	})

	t.Run("no drops", func(t *testing.T) {
		rewards := m.VictoryRewards("training_dummy")

		testutil.AssertEqual(t, "gold", rewards.Gold, 0)
		testutil.AssertEqual(t, "items", len(rewards.Items), 0)
		testutil.AssertEqual(t, "default exp", rewards.Exp, 10)
	})

	t.Run("unknown enemy", func(t *testing.T) {
		rewards := m.VictoryRewards("phantom")

		testutil.AssertEqual(t, "gold", rewards.Gold, 0)
		testutil.AssertEqual(t, "items", len(rewards.Items), 0)
		testutil.AssertEqual(t, "exp", rewards.Exp, 0)
	})
}
