package commands

import "context"

// keyItemName is the one item the take grammar knows about.
const keyItemName = "key"

// handleTakeKey transfers the key from the room to the inventory. The
// transfer moves the single instance; a second attempt in the same room
// reports absence.
func (h *Handler) handleTakeKey(ctx context.Context, action Action) error {
	room := h.world.CurrentRoom()
	if room.GetItem(keyItemName) == nil {
		return h.userError("take_key_missing", nil)
	}

	item := room.RemoveItem(keyItemName)
	h.world.Player().AddItem(item)

	return h.say("take_key_success", map[string]any{"Item": item.Item.Get().Description})
}
