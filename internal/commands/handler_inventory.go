package commands

import "context"

// handleInventory renders the inventory, special-casing the empty one.
func (h *Handler) handleInventory(ctx context.Context, action Action) error {
	items := h.world.Player().Items()
	if len(items) == 0 {
		return h.say("inventory_empty", nil)
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name())
	}

	return h.say("inventory", map[string]any{"Items": names})
}
