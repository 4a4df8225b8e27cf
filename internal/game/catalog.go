package game

import (
	"fmt"
	"strings"

	"github.com/halcyar/go-saga/internal/storage"
)

// Catalog holds all content definition stores. It provides a single
// reference that can be passed to the rules packages so they all share
// the same signature. Stores are loaded once and treated as immutable.
type Catalog struct {
	Chapters storage.Storer[*Chapter]
	Enemies  storage.Storer[*Enemy]
	Items    storage.Storer[*Item]
}

// Scene returns the named scene, or nil when the chapter or scene is
// unknown. Unknown scenes are not an error at play time; handlers fall
// back to their fixed narratives.
func (c *Catalog) Scene(chapter, scene string) *Scene {
	ch := c.Chapters.Get(chapter)
	if ch == nil {
		return nil
	}
	return ch.Scenes[scene]
}

// Item returns an item definition, or nil when unknown.
func (c *Catalog) Item(id string) *Item {
	return c.Items.Get(id)
}

// ItemName returns an item's display name, falling back to the id.
func (c *Catalog) ItemName(id string) string {
	if item := c.Items.Get(id); item != nil {
		return item.Name
	}
	return id
}

// Enemy returns an enemy definition, or nil when unknown.
func (c *Catalog) Enemy(id string) *Enemy {
	return c.Enemies.Get(id)
}

// SplitSceneRef resolves a scene reference relative to the current
// chapter. A ref written "chapter:scene" crosses content packs; a bare
// id stays in the current one.
func SplitSceneRef(currentChapter, ref string) (chapter, scene string) {
	if ch, sc, ok := strings.Cut(ref, ":"); ok {
		return ch, sc
	}
	return currentChapter, ref
}

// Resolve checks all cross-references between loaded assets. It runs once
// after loading so broken content fails at startup instead of mid-scene.
func (c *Catalog) Resolve() error {
	for chapterID, chapter := range c.Chapters.GetAll() {
		for sceneID, scene := range chapter.Scenes {
			if err := c.resolveScene(chapterID, scene); err != nil {
				return fmt.Errorf("chapter %s scene %s: %w", chapterID, sceneID, err)
			}
		}
	}

	for enemyID, enemy := range c.Enemies.GetAll() {
		for _, drop := range enemy.Drops {
			if drop.ID == "gold" {
				continue
			}
			if c.Items.Get(drop.ID) == nil {
				return fmt.Errorf("enemy %s: drop item %q not found", enemyID, drop.ID)
			}
		}
	}

	return nil
}

func (c *Catalog) resolveScene(chapterID string, scene *Scene) error {
	if scene.CombatInfo != nil {
		if c.Enemies.Get(scene.CombatInfo.EnemyID) == nil {
			return fmt.Errorf("enemy %q not found", scene.CombatInfo.EnemyID)
		}
	}

	if err := c.checkSceneRef(chapterID, scene.PostCombatScene); err != nil {
		return err
	}

	for choiceID, choice := range scene.Choices {
		if err := c.checkSceneRef(chapterID, choice.NextScene); err != nil {
			return fmt.Errorf("choice %s: %w", choiceID, err)
		}
	}

	for _, action := range scene.Actions {
		if err := c.checkSceneRef(chapterID, action.NextScene); err != nil {
			return fmt.Errorf("action %s: %w", action.Type, err)
		}
	}

	return nil
}

func (c *Catalog) checkSceneRef(currentChapter, ref string) error {
	if ref == "" {
		return nil
	}
	chapter, scene := SplitSceneRef(currentChapter, ref)
	if c.Scene(chapter, scene) == nil {
		return fmt.Errorf("scene ref %q not found", ref)
	}
	return nil
}
