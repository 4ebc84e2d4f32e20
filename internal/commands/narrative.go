package commands

import (
	"fmt"
	"text/template"

	"github.com/pixil98/go-errors"
)

// requiredMessages are the message keys the handlers render. A narrative
// asset missing any of them is rejected at load time.
var requiredMessages = []string{
	"intro",
	"help",
	"unknown_command",
	"combat_only",
	"invalid_direction",
	"cannot_go",
	"door_locked",
	"inventory",
	"inventory_empty",
	"take_key_success",
	"take_key_missing",
	"read_note",
	"read_note_missing",
	"unlock_already",
	"unlock_no_key",
	"unlock_success",
	"unlock_wrong",
	"open_door_open",
	"open_door_locked",
	"open_door_none",
	"combat_start",
	"attack_hit",
	"enemy_counter",
	"victory",
	"defeat",
	"goodbye",
	"farewell",
}

// Narrative holds every piece of player-facing prose as template
// strings, loaded from asset files. Prose is flavor configuration; the
// engine only knows the keys.
type Narrative struct {
	Messages map[string]string `json:"messages"`
}

// Validate satisfies storage.ValidatingSpec
func (n *Narrative) Validate() error {
	el := errors.NewErrorList()

	for _, key := range requiredMessages {
		if _, ok := n.Messages[key]; !ok {
			el.Add(fmt.Errorf("message %q is required", key))
		}
	}

	for key, msg := range n.Messages {
		_, err := template.New("").Funcs(templateFuncs).Parse(msg)
		if err != nil {
			el.Add(fmt.Errorf("message %q: %w", key, err))
		}
	}

	return el.Err()
}

// Render expands the named message template with the provided data.
func (n *Narrative) Render(key string, data any) (string, error) {
	msg, ok := n.Messages[key]
	if !ok {
		return "", fmt.Errorf("message %q not defined", key)
	}

	out, err := ExpandTemplate(msg, data)
	if err != nil {
		return "", fmt.Errorf("message %q: %w", key, err)
	}
	return out, nil
}
