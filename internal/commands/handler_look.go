package commands

import "context"

// handleLook redisplays the current room's full description.
func (h *Handler) handleLook(ctx context.Context, action Action) error {
	return h.pub.Publish([]byte(h.world.CurrentRoom().Describe()))
}
