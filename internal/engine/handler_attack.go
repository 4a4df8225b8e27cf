package engine

import (
	"fmt"

	"github.com/halcyar/go-saga/internal/combat"
	"github.com/halcyar/go-saga/internal/game"
)

// magicAttackMinMP gates the spell entry in the combat menu.
const magicAttackMinMP = 3

// handleAttack runs one full combat exchange: regeneration tick, the
// player's swing, then the enemy's answer if it still stands. A fresh
// encounter is seeded from the payload's enemy or the scene's.
func (e *Engine) handleAttack(req *request) *Result {
	p := &req.state.Player

	snap := activeSnapshot(req.state).Clone()
	fresh := snap == nil
	if fresh {
		enemyID := req.action.Data.EnemyID
		if enemyID == "" && req.scene != nil && req.scene.CombatInfo != nil {
			enemyID = req.scene.CombatInfo.EnemyID
		}
		if enemyID == "" {
			return failure(
				"No enemy",
				[]string{"There is nothing to fight here."},
				sceneActions(req.scene),
			)
		}

		snap = e.combat.Start(enemyID, p)
		if snap == nil {
			return failure(
				"Unknown enemy",
				[]string{"Your foe is nowhere to be seen."},
				sceneActions(req.scene),
			)
		}
	}

	var narrative []string
	if fresh && req.scene != nil && req.scene.CombatInfo != nil &&
		snap.EnemyID == req.scene.CombatInfo.EnemyID && len(req.scene.CombatInfo.Intro) > 0 {
		narrative = append(narrative, req.scene.CombatInfo.Intro...)
		narrative = append(narrative, "")
	}

	hp, regenLines := e.tickRegen(req, snap.PlayerHP, snap.PlayerMaxHP)
	snap.PlayerHP = hp
	narrative = append(narrative, regenLines...)

	weapon := e.inv.WeaponDamage(p)
	attackType := req.action.Data.AttackType
	if attackType == "" {
		attackType = combat.AttackMelee
	}

	swing := e.combat.PlayerAttack(snap, p, attackType, weapon.Damage, weapon.Light)
	narrative = append(narrative, swing.Narrative...)

	if swing.Defeated {
		return e.resolveVictory(req, snap, narrative)
	}

	answer := e.combat.EnemyAttack(snap, p)
	narrative = append(narrative, "")
	narrative = append(narrative, answer.Narrative...)
	snap.Turn++

	if snap.PlayerHP <= 0 {
		req.delta.SetPlayerHP(0)
		req.delta.CombatCleared = true
		narrative = append(narrative, "", "Your legs give way. Darkness takes you.")
		return &Result{
			Success:          false,
			Message:          "You have fallen",
			Narrative:        narrative,
			Changes:          req.delta,
			AvailableActions: []game.ActionDescriptor{},
			SceneType:        game.SceneTypeCombat,
		}
	}

	req.delta.Combat = snap
	if snap.PlayerHP != p.HP {
		req.delta.SetPlayerHP(snap.PlayerHP)
	}

	message := fmt.Sprintf("Miss (%d/%d)", swing.Roll, swing.Threshold)
	if swing.Hit {
		message = fmt.Sprintf("Hit (%d/%d)", swing.Roll, swing.Threshold)
	}

	return &Result{
		Success:          true,
		Message:          message,
		Narrative:        narrative,
		Changes:          req.delta,
		AvailableActions: e.combatActions(p, p.Inventory),
		SceneType:        game.SceneTypeCombat,
		CombatInfo:       e.combatInfo(req.scene, snap),
	}
}

// resolveVictory pays out the defeated enemy's drop table and moves the
// story to the scene's aftermath.
func (e *Engine) resolveVictory(req *request, snap *game.CombatSnapshot, narrative []string) *Result {
	rewards := e.combat.VictoryRewards(snap.EnemyID)

	if rewards.Gold > 0 {
		narrative = append(narrative, fmt.Sprintf("You gain %d gold.", rewards.Gold))
	}
	for _, item := range rewards.Items {
		name := item.Name
		if name == "" {
			name = e.catalog.ItemName(item.ID)
		}
		narrative = append(narrative, fmt.Sprintf("You obtain %s x%d.", name, item.Quantity))
	}
	narrative = append(narrative, fmt.Sprintf("You gain %d experience.", rewards.Exp))

	req.delta.GoldGained += rewards.Gold
	req.delta.Drops = append(req.delta.Drops, rewards.Items...)
	req.delta.CombatVictory = true
	req.delta.CombatCleared = true
	if snap.PlayerHP != req.state.Player.HP {
		req.delta.SetPlayerHP(snap.PlayerHP)
	}

	scene := req.scene
	if req.scene != nil && req.scene.PostCombatScene != "" {
		scene = e.transition(req, req.scene.PostCombatScene)
		if scene != nil && len(scene.Narrative) > 0 {
			narrative = append(narrative, "")
			narrative = append(narrative, scene.Narrative...)
		}
	}

	return &Result{
		Success:          true,
		Message:          "Victory!",
		Narrative:        narrative,
		Changes:          req.delta,
		AvailableActions: sceneActions(scene),
		SceneType:        scene.SceneType(),
	}
}
