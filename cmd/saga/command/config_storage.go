package command

import (
	"fmt"
	"os"

	"github.com/halcyar/go-saga/internal/game"
	"github.com/halcyar/go-saga/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	/* Content catalogs */
	Chapters AssetConfig[*game.Chapter] `json:"chapters"`
	Enemies  AssetConfig[*game.Enemy]   `json:"enemies"`
	Items    AssetConfig[*game.Item]    `json:"items"`

	/* Save documents */
	Saves SaveConfig `json:"saves"`
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Chapters.Validate("chapters"))
	el.Add(c.Enemies.Validate("enemies"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Saves.Validate())
	return el.Err()
}

// BuildCatalog loads every content store and resolves the references
// between them, so a broken catalog fails the boot instead of a turn.
func (c *StorageConfig) BuildCatalog() (*game.Catalog, error) {
	chapters, err := c.Chapters.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating chapter store: %w", err)
	}
	enemies, err := c.Enemies.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating enemy store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}

	catalog := &game.Catalog{
		Chapters: chapters,
		Enemies:  enemies,
		Items:    items,
	}

	if err := catalog.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return catalog, nil
}

func (c *StorageConfig) BuildSaveStore() (*storage.FileStore[*game.GameState], error) {
	return storage.NewFileStore[*game.GameState](c.Saves.Path)
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}

// SaveConfig names the directory save documents live in. Unlike content
// paths it need not exist yet; the store creates it on first boot.
type SaveConfig struct {
	Path string `json:"path"`
}

func (c *SaveConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("saves: path is required")
	}
	return nil
}
