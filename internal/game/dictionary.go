package game

import (
	"fmt"

	"github.com/pixil98/go-dungeon/internal/storage"
)

// Dictionary holds all game definition stores. It provides a single
// reference that can be passed to resolution methods so they all share
// the same signature.
type Dictionary struct {
	Rooms   storage.Storer[*Room]
	Items   storage.Storer[*Item]
	Mobiles storage.Storer[*Mobile]
}

// Resolve resolves all foreign key references between asset types.
func (d *Dictionary) Resolve() error {
	for id, room := range d.Rooms.GetAll() {
		if err := room.Resolve(d); err != nil {
			return fmt.Errorf("room %s: %w", id, err)
		}
	}
	return nil
}
