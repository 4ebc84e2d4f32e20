package commands

import "context"

// handleOpenDoor reports the lock state of the start room's north door.
// It is purely informational and never changes the lock; unlocking is
// the password's job.
func (h *Handler) handleOpenDoor(ctx context.Context, action Action) error {
	room := h.world.CurrentRoom()
	if room != h.world.StartRoom() {
		return h.userError("open_door_none", nil)
	}

	exit, ok := room.Exits["north"]
	if h.world.DoorUnlocked() || !ok || !exit.Locked {
		return h.say("open_door_open", nil)
	}

	return h.say("open_door_locked", nil)
}
