package commands

import "context"

// handleQuit ends the game without a win.
func (h *Handler) handleQuit(ctx context.Context, action Action) error {
	h.world.Quit()
	return h.say("goodbye", nil)
}
