package commands

import "strings"

// ActionKind identifies one of the recognized player actions.
type ActionKind int

const (
	// ActionNone is a blank line; the loop just re-prompts.
	ActionNone ActionKind = iota
	ActionHelp
	ActionQuit
	ActionMove
	ActionLook
	ActionInventory
	ActionTakeKey
	ActionReadNote
	ActionUnlock
	ActionOpenDoor
	ActionAttack
	ActionUnknown
)

// Action is one classified line of player input.
type Action struct {
	Kind ActionKind

	// Arg carries the direction for ActionMove and the uppercased
	// password attempt for ActionUnlock.
	Arg string
}

const unlockPrefix = "unlock door with "

// Parse normalizes one raw input line and classifies it into exactly one
// recognized action. Unrecognized input is an action too; the dispatch
// layer turns it into guidance rather than an error.
func Parse(line string) Action {
	cmd := strings.ToLower(strings.TrimSpace(line))

	switch cmd {
	case "":
		return Action{Kind: ActionNone}
	case "help":
		return Action{Kind: ActionHelp}
	case "quit", "exit", "q":
		return Action{Kind: ActionQuit}
	case "look":
		return Action{Kind: ActionLook}
	case "inventory", "i":
		return Action{Kind: ActionInventory}
	case "take key", "pick up key", "get key":
		return Action{Kind: ActionTakeKey}
	case "read note", "examine note", "look at note":
		return Action{Kind: ActionReadNote}
	case "open door", "open north door":
		return Action{Kind: ActionOpenDoor}
	case "attack":
		return Action{Kind: ActionAttack}
	}

	if dir, ok := strings.CutPrefix(cmd, "go "); ok {
		return Action{Kind: ActionMove, Arg: strings.TrimSpace(dir)}
	}

	if attempt, ok := strings.CutPrefix(cmd, unlockPrefix); ok {
		return Action{Kind: ActionUnlock, Arg: strings.ToUpper(strings.TrimSpace(attempt))}
	}

	return Action{Kind: ActionUnknown}
}
