package commands

import "context"

// noteItemName is the one item the read grammar knows about.
const noteItemName = "note"

// handleReadNote reveals the password. Reading is non-destructive; the
// note never leaves its room.
func (h *Handler) handleReadNote(ctx context.Context, action Action) error {
	room := h.world.CurrentRoom()
	if room.GetItem(noteItemName) == nil {
		return h.userError("read_note_missing", nil)
	}

	return h.say("read_note", map[string]any{"Password": h.world.Password()})
}
