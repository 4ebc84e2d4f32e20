package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pixil98/go-dungeon/internal/storage"
	"github.com/pixil98/go-errors"
)

// Item defines a type of item loaded from asset files.
type Item struct {
	// Name is the word players use to refer to the item. It is the
	// case-insensitive match key within a room or the inventory.
	Name string `json:"name"`

	// Description is shown when the item is examined.
	Description string `json:"description"`

	// Takeable marks items that can be moved into the inventory.
	Takeable bool `json:"takeable"`
}

// Validate satisfies storage.ValidatingSpec
func (i *Item) Validate() error {
	el := errors.NewErrorList()
	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if i.Description == "" {
		el.Add(fmt.Errorf("item description is required"))
	}
	return el.Err()
}

// ItemInstance is a single spawned instance of an Item definition. An
// instance belongs to exactly one container at a time (a room's item
// list or the player's inventory); transfers move the instance, never
// copy it.
type ItemInstance struct {
	InstanceId string
	Item       storage.SmartIdentifier[*Item]
}

// NewItemInstance spawns an instance of the given resolved definition.
func NewItemInstance(id storage.Identifier, def *Item) *ItemInstance {
	return &ItemInstance{
		InstanceId: uuid.New().String(),
		Item:       storage.NewResolvedSmartIdentifier(id, def),
	}
}

// Name returns the definition's display name.
func (ii *ItemInstance) Name() string {
	return ii.Item.Get().Name
}

// MatchName returns true if name matches this item's name under case
// folding.
func (ii *ItemInstance) MatchName(name string) bool {
	return matchKey(ii.Item.Get().Name) == matchKey(name)
}
