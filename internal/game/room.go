package game

import (
	"fmt"

	"github.com/pixil98/go-dungeon/internal/storage"
	"github.com/pixil98/go-errors"
)

// Directions movement commands understand, in display order.
var Directions = []string{"north", "south"}

// KnownDirection returns true for directions the engine understands.
func KnownDirection(dir string) bool {
	for _, d := range Directions {
		if d == dir {
			return true
		}
	}
	return false
}

// Exit defines a destination for movement from a room. Exits reference
// rooms by identifier; rooms never hold each other directly.
type Exit struct {
	Room storage.SmartIdentifier[*Room] `json:"room"`

	// Locked gates traversal until cleared by a successful password
	// check. The lock belongs to the exit, not the room.
	Locked bool `json:"locked,omitempty"`
}

// Room represents a location loaded from asset files.
type Room struct {
	Name        string                           `json:"name"`
	Description string                           `json:"description"`
	Items       []storage.SmartIdentifier[*Item] `json:"items,omitempty"`
	Exits       map[string]*Exit                 `json:"exits,omitempty"`
}

// Validate satisfies storage.ValidatingSpec
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	if r.Description == "" {
		el.Add(fmt.Errorf("room description is required"))
	}

	for dir, exit := range r.Exits {
		if !KnownDirection(dir) {
			el.Add(fmt.Errorf("exit %s: unknown direction", dir))
		}
		el.Add(exit.Room.Validate())
	}

	for i, item := range r.Items {
		if err := item.Validate(); err != nil {
			el.Add(fmt.Errorf("item %d: %w", i, err))
		}
	}

	return el.Err()
}

// Resolve resolves foreign keys from the dictionary.
func (r *Room) Resolve(dict *Dictionary) error {
	el := errors.NewErrorList()

	for dir := range r.Exits {
		if err := r.Exits[dir].Room.Resolve(dict.Rooms); err != nil {
			el.Add(fmt.Errorf("exit %s: %w", dir, err))
		}
	}

	for i := range r.Items {
		if err := r.Items[i].Resolve(dict.Items); err != nil {
			el.Add(fmt.Errorf("item %d: %w", i, err))
		}
	}

	return el.Err()
}
