package commands

import "context"

// handleHelp displays the command reference.
func (h *Handler) handleHelp(ctx context.Context, action Action) error {
	return h.say("help", nil)
}
