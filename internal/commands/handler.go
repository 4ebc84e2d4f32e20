package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-dungeon/internal/combat"
	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/storage"
)

// CommandFunc is the signature for action handlers.
type CommandFunc func(ctx context.Context, action Action) error

// Publisher delivers rendered text to the player.
type Publisher interface {
	Publish(data []byte) error
}

// Handler dispatches parsed actions against the world state. It owns the
// exploration/combat vocabulary switch: while an encounter is active,
// every action but attack is refused.
type Handler struct {
	world     *game.WorldState
	narrative *Narrative
	pub       Publisher

	handlers map[ActionKind]CommandFunc

	// encounter is non-nil exactly while the world is in combat.
	encounter *combat.Encounter
}

// NewHandler creates a Handler using the named narrative for all
// player-facing prose.
func NewHandler(world *game.WorldState, narratives storage.Storer[*Narrative], narrativeId storage.Identifier, pub Publisher) (*Handler, error) {
	narrative := narratives.Get(narrativeId)
	if narrative == nil {
		return nil, fmt.Errorf("narrative %q not found", narrativeId)
	}

	h := &Handler{
		world:     world,
		narrative: narrative,
		pub:       pub,
	}

	h.handlers = map[ActionKind]CommandFunc{
		ActionHelp:      h.handleHelp,
		ActionQuit:      h.handleQuit,
		ActionMove:      h.handleMove,
		ActionLook:      h.handleLook,
		ActionInventory: h.handleInventory,
		ActionTakeKey:   h.handleTakeKey,
		ActionReadNote:  h.handleReadNote,
		ActionUnlock:    h.handleUnlock,
		ActionOpenDoor:  h.handleOpenDoor,
		ActionAttack:    h.handleAttack,
	}

	return h, nil
}

// Exec parses one line of input and runs the matching handler. Failed
// preconditions surface as *UserError; anything else is a system
// failure.
func (h *Handler) Exec(ctx context.Context, line string) error {
	action := Parse(line)

	if action.Kind == ActionNone {
		return nil
	}

	// Combat narrows the vocabulary to attack alone. Quit stays
	// unavailable until the encounter resolves.
	if h.world.InCombat() && action.Kind != ActionAttack {
		return h.userError("combat_only", nil)
	}

	fn, ok := h.handlers[action.Kind]
	if !ok {
		return h.userError("unknown_command", nil)
	}

	return fn(ctx, action)
}

// Greet shows the introduction and the starting room. Called once when
// the session begins.
func (h *Handler) Greet(ctx context.Context) error {
	if err := h.say("intro", nil); err != nil {
		return err
	}
	return h.pub.Publish([]byte(h.world.CurrentRoom().Describe()))
}

// Farewell shows the shutdown message used when input ends or the
// process is interrupted.
func (h *Handler) Farewell(ctx context.Context) error {
	return h.say("farewell", nil)
}

// say renders a narrative message and publishes it to the player.
func (h *Handler) say(key string, data any) error {
	msg, err := h.narrative.Render(key, data)
	if err != nil {
		return err
	}
	return h.pub.Publish([]byte(msg))
}

// userError renders a narrative message as a user-facing error.
func (h *Handler) userError(key string, data any) error {
	msg, err := h.narrative.Render(key, data)
	if err != nil {
		return err
	}
	return NewUserError(msg)
}
