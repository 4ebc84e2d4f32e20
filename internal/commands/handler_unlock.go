package commands

import "context"

// handleUnlock checks the password attempt against the secret. Failed
// preconditions are checked in order - already unlocked, missing key,
// wrong password - before any state changes. A wrong attempt carries no
// penalty or lockout.
func (h *Handler) handleUnlock(ctx context.Context, action Action) error {
	if h.world.DoorUnlocked() {
		return h.userError("unlock_already", nil)
	}

	if !h.world.Player().HasItem(keyItemName) {
		return h.userError("unlock_no_key", nil)
	}

	if action.Arg != h.world.Password() {
		return h.userError("unlock_wrong", nil)
	}

	h.world.UnlockDoor()
	return h.say("unlock_success", nil)
}
