package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-dungeon/internal/commands"
	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Rooms      AssetConfig[*game.Room]          `json:"rooms"`
	Items      AssetConfig[*game.Item]          `json:"items"`
	Mobiles    AssetConfig[*game.Mobile]        `json:"mobiles"`
	Narratives AssetConfig[*commands.Narrative] `json:"narratives"`
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Mobiles.Validate("mobiles"))
	el.Add(c.Narratives.Validate("narratives"))
	return el.Err()
}

// BuildDictionary loads the world definition stores and resolves
// cross-references between them.
func (c *StorageConfig) BuildDictionary() (*game.Dictionary, error) {
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	mobiles, err := c.Mobiles.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating mobile store: %w", err)
	}

	dict := &game.Dictionary{
		Rooms:   rooms,
		Items:   items,
		Mobiles: mobiles,
	}

	if err := dict.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return dict, nil
}

// BuildNarratives loads the narrative store.
func (c *StorageConfig) BuildNarratives() (storage.Storer[*commands.Narrative], error) {
	narratives, err := c.Narratives.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating narrative store: %w", err)
	}
	return narratives, nil
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
