package commands

import (
	"context"

	"github.com/pixil98/go-dungeon/internal/game"
)

// handleMove relocates the player through an exit. All checks happen
// before any mutation: an unknown direction, a missing exit, or a locked
// exit leaves the current room unchanged.
func (h *Handler) handleMove(ctx context.Context, action Action) error {
	dir := action.Arg
	if !game.KnownDirection(dir) {
		return h.userError("invalid_direction", nil)
	}

	room := h.world.CurrentRoom()
	exit, ok := room.Exits[dir]
	if !ok {
		return h.userError("cannot_go", map[string]any{"Direction": dir})
	}
	if exit.Locked {
		return h.userError("door_locked", nil)
	}

	h.world.MoveTo(exit.To)
	if err := h.pub.Publish([]byte(exit.To.Describe())); err != nil {
		return err
	}

	// First arrival in the arena starts the one-time encounter.
	if h.world.ArenaEntered() {
		return h.startCombat()
	}

	return nil
}
