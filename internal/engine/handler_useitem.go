package engine

import (
	"fmt"

	"github.com/halcyar/go-saga/internal/game"
)

// handleUseItem uses one carried item, or lists what could be used when
// the payload names none. Using an item in combat does not give the
// enemy a turn.
func (e *Engine) handleUseItem(req *request) *Result {
	p := &req.state.Player
	inCombat := req.state.InCombat()

	itemID := req.action.Data.ItemID
	if itemID == "" {
		return e.itemMenu(req, inCombat)
	}

	if !p.Holds(itemID, 1) {
		return failure(
			"Item not found",
			[]string{"You don't have that item."},
			e.currentActions(req),
		)
	}

	use := e.inv.Use(itemID, p, inCombat)
	if !use.Success {
		return failure(use.Message, use.Narrative, e.currentActions(req))
	}

	if use.HPChange != 0 {
		req.delta.SetPlayerHP(clamp(p.HP+use.HPChange, 0, p.MaxHP))
	}
	if use.MPChange != 0 {
		req.delta.SetPlayerMP(clamp(p.MP+use.MPChange, 0, p.MaxMP))
	}
	if use.Regen != nil {
		req.delta.SetFlag(regenFlag, map[string]any{
			"value": use.Regen.Value,
			"turns": use.Regen.Turns,
		})
	}

	inv := p.Inventory
	if use.Consumed {
		spent := append([]game.InventoryStack(nil), p.Inventory...)
		if next, ok := e.inv.Remove(spent, itemID, 1); ok {
			req.delta.Inventory = next
			req.delta.InventoryChanged = true
			inv = next
		}
	}

	if inCombat {
		snap := req.state.Combat.Clone()
		if use.HPChange != 0 {
			snap.PlayerHP = clamp(snap.PlayerHP+use.HPChange, 0, snap.PlayerMaxHP)
		}
		req.delta.Combat = snap

		return &Result{
			Success:          true,
			Message:          use.Message,
			Narrative:        use.Narrative,
			Changes:          req.delta,
			AvailableActions: e.combatActions(p, inv),
			SceneType:        game.SceneTypeCombat,
			CombatInfo:       e.combatInfo(req.scene, snap),
		}
	}

	return &Result{
		Success:          true,
		Message:          use.Message,
		Narrative:        use.Narrative,
		Changes:          req.delta,
		AvailableActions: sceneActions(req.scene),
		SceneType:        req.scene.SceneType(),
	}
}

// itemMenu offers each usable carried item as a ready-to-send action.
func (e *Engine) itemMenu(req *request, inCombat bool) *Result {
	usable := e.inv.UsableItems(req.state.Player.Inventory, inCombat)
	if len(usable) == 0 {
		return failure(
			"Nothing usable",
			[]string{"You have nothing you can use right now."},
			e.currentActions(req),
		)
	}

	actions := make([]game.ActionDescriptor, 0, len(usable)+1)
	for _, item := range usable {
		actions = append(actions, game.ActionDescriptor{
			Type:   game.ActionUseItem,
			ItemID: item.ID,
			Label:  fmt.Sprintf("%s x%d", item.Name, item.Quantity),
		})
	}
	actions = append(actions, game.ActionDescriptor{
		Type:  game.ActionCancel,
		Label: "Never mind",
	})

	res := &Result{
		Success:          true,
		Message:          "Choose an item",
		Narrative:        []string{"What will you use?"},
		Changes:          req.delta,
		AvailableActions: actions,
		SceneType:        req.scene.SceneType(),
	}
	if inCombat {
		res.SceneType = game.SceneTypeCombat
		res.CombatInfo = e.combatInfo(req.scene, req.state.Combat)
	}
	return res
}
