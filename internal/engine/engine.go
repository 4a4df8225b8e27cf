package engine

import (
	"fmt"

	"github.com/halcyar/go-saga/internal/combat"
	"github.com/halcyar/go-saga/internal/dice"
	"github.com/halcyar/go-saga/internal/game"
	"github.com/halcyar/go-saga/internal/inventory"
)

// handlerFunc resolves one action against a request-scoped view of the
// save document.
type handlerFunc func(*request) *Result

// Engine turns (save document, action) pairs into results. It holds no
// per-player state and never writes the documents it is handed, so one
// instance serves every session concurrently.
type Engine struct {
	catalog *game.Catalog
	inv     *inventory.Manager
	combat  *combat.Manager
	roller  dice.Roller

	handlers map[string]handlerFunc
}

type Option func(*Engine)

// WithRoller replaces the entropy source. Tests use it to script every
// roll.
func WithRoller(r dice.Roller) Option {
	return func(e *Engine) {
		e.roller = r
	}
}

// New builds an engine over a resolved catalog.
func New(catalog *game.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		roller:  dice.NewRoller(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.inv = inventory.NewManager(catalog)
	e.combat = combat.NewManager(catalog, e.roller)

	e.handlers = map[string]handlerFunc{
		game.ActionStart:      e.handleStart,
		game.ActionResume:     e.handleResume,
		game.ActionChoice:     e.handleChoice,
		game.ActionSkillCheck: e.handleSkillCheck,
		game.ActionAttack:     e.handleAttack,
		game.ActionUseItem:    e.handleUseItem,
		game.ActionContinue:   e.handleContinue,
		game.ActionCancel:     e.handleCancel,
	}
	return e
}

// request carries one resolution's working set: the read-only document,
// the action, and the delta being accumulated.
type request struct {
	state  *game.GameState
	action Action

	// scene is the document's current scene, nil when the reference
	// dangles
	scene *game.Scene

	delta *game.Delta
}

// Resolve runs one action against a save document. The document is never
// mutated; everything that changed comes back in the result's delta.
func (e *Engine) Resolve(state *game.GameState, action Action) *Result {
	req := &request{
		state:  state,
		action: action,
		scene:  e.catalog.Scene(state.Chapter, state.Scene),
		delta:  &game.Delta{},
	}

	handler, ok := e.handlers[action.Type]
	if !ok {
		return failure(
			fmt.Sprintf("Unknown action type: %s", action.Type),
			nil,
			sceneActions(req.scene),
		)
	}
	return handler(req)
}

// sceneActions returns a scene's action menu. Dangling scene references
// offer nothing.
func sceneActions(s *game.Scene) []game.ActionDescriptor {
	if s == nil {
		return []game.ActionDescriptor{}
	}
	return s.Actions
}

// activeSnapshot returns the document's combat snapshot when the
// encounter is live.
func activeSnapshot(s *game.GameState) *game.CombatSnapshot {
	if s.InCombat() {
		return s.Combat
	}
	return nil
}

// currentActions is what the player can do right now: the combat menu
// mid-fight, otherwise the scene's list.
func (e *Engine) currentActions(req *request) []game.ActionDescriptor {
	if req.state.InCombat() {
		return e.combatActions(&req.state.Player, req.state.Player.Inventory)
	}
	return sceneActions(req.scene)
}

// combatActions composes the in-combat menu: strike always, spells when
// the player can pay for one, items when something usable is carried.
func (e *Engine) combatActions(p *game.Player, inv []game.InventoryStack) []game.ActionDescriptor {
	actions := []game.ActionDescriptor{
		{Type: game.ActionAttack, AttackType: combat.AttackMelee, Label: "Attack"},
	}
	if p.MP >= magicAttackMinMP {
		actions = append(actions, game.ActionDescriptor{
			Type:       game.ActionAttack,
			AttackType: combat.AttackMagic,
			Label:      "Cast a spell",
		})
	}
	if len(e.inv.UsableItems(inv, true)) > 0 {
		actions = append(actions, game.ActionDescriptor{
			Type:  game.ActionUseItem,
			Label: "Use an item",
		})
	}
	return actions
}

// transition moves the document to a scene reference, merging the target
// scene's on-enter changes into the delta. It returns the target scene,
// nil when the reference dangles.
func (e *Engine) transition(req *request, ref string) *game.Scene {
	fromChapter := req.state.Chapter
	if req.delta.Chapter != "" {
		fromChapter = req.delta.Chapter
	}
	chapter, scene := game.SplitSceneRef(fromChapter, ref)

	if chapter != req.state.Chapter {
		req.delta.Chapter = chapter
	} else {
		req.delta.Chapter = ""
	}
	req.delta.Scene = scene

	target := e.catalog.Scene(chapter, scene)
	if target != nil && target.OnEnter != nil {
		req.delta.Merge(target.OnEnter)
	}
	return target
}

// combatInfo describes the encounter a result touches, from the live
// snapshot when one exists, otherwise from the scene's enemy at full
// strength.
func (e *Engine) combatInfo(scene *game.Scene, snap *game.CombatSnapshot) *CombatInfo {
	if snap != nil {
		return &CombatInfo{
			EnemyID:    snap.EnemyID,
			EnemyName:  snap.EnemyName,
			EnemyHP:    snap.EnemyHP,
			EnemyMaxHP: snap.EnemyMaxHP,
			Evasion:    snap.Evasion,
			Turn:       snap.Turn,
		}
	}

	if scene == nil || scene.CombatInfo == nil {
		return nil
	}
	enemy := e.catalog.Enemy(scene.CombatInfo.EnemyID)
	if enemy == nil {
		return nil
	}
	return &CombatInfo{
		EnemyID:    scene.CombatInfo.EnemyID,
		EnemyName:  enemy.Name,
		EnemyHP:    enemy.HP,
		EnemyMaxHP: enemy.MaxHP,
		Evasion:    enemy.Evasion,
	}
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
