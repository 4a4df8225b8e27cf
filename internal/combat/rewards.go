package combat

import "github.com/halcyar/go-saga/internal/game"

// Rewards is what defeating an enemy pays out.
type Rewards struct {
	Gold  int
	Items []game.InventoryStack
	Exp   int
}

// VictoryRewards flattens an enemy's drop table. Drop entries with the id
// "gold" count toward the gold total instead of the item grants. Unknown
// enemies pay nothing.
func (m *Manager) VictoryRewards(enemyID string) Rewards {
	enemy := m.catalog.Enemy(enemyID)
	if enemy == nil {
		return Rewards{}
	}

	var rewards Rewards
	for _, drop := range enemy.Drops {
		if drop.ID == "gold" {
			rewards.Gold += drop.Quantity
			continue
		}
		rewards.Items = append(rewards.Items, drop)
	}
	rewards.Exp = enemy.ExpReward()

	return rewards
}
