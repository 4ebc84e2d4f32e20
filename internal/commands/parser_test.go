package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		line string
		exp  Action
	}{
		"empty":      {line: "", exp: Action{Kind: ActionNone}},
		"whitespace": {line: "   ", exp: Action{Kind: ActionNone}},

		"help": {line: "help", exp: Action{Kind: ActionHelp}},

		"quit":  {line: "quit", exp: Action{Kind: ActionQuit}},
		"exit":  {line: "exit", exp: Action{Kind: ActionQuit}},
		"q":     {line: "q", exp: Action{Kind: ActionQuit}},

		"look":           {line: "look", exp: Action{Kind: ActionLook}},
		"inventory":      {line: "inventory", exp: Action{Kind: ActionInventory}},
		"inventory short": {line: "i", exp: Action{Kind: ActionInventory}},

		"take key":    {line: "take key", exp: Action{Kind: ActionTakeKey}},
		"pick up key": {line: "pick up key", exp: Action{Kind: ActionTakeKey}},
		"get key":     {line: "get key", exp: Action{Kind: ActionTakeKey}},

		"read note":    {line: "read note", exp: Action{Kind: ActionReadNote}},
		"examine note": {line: "examine note", exp: Action{Kind: ActionReadNote}},
		"look at note": {line: "look at note", exp: Action{Kind: ActionReadNote}},

		"open door":       {line: "open door", exp: Action{Kind: ActionOpenDoor}},
		"open north door": {line: "open north door", exp: Action{Kind: ActionOpenDoor}},

		"attack": {line: "attack", exp: Action{Kind: ActionAttack}},

		"go north": {line: "go north", exp: Action{Kind: ActionMove, Arg: "north"}},
		"go south": {line: "go south", exp: Action{Kind: ActionMove, Arg: "south"}},
		"go east":  {line: "go east", exp: Action{Kind: ActionMove, Arg: "east"}},

		"unlock": {
			line: "unlock door with shadow",
			exp:  Action{Kind: ActionUnlock, Arg: "SHADOW"},
		},
		"unlock uppercase": {
			line: "UNLOCK DOOR WITH Shadow",
			exp:  Action{Kind: ActionUnlock, Arg: "SHADOW"},
		},
		"unlock empty attempt": {
			line: "unlock door with ",
			exp:  Action{Kind: ActionUnknown},
		},

		"mixed case":       {line: "  Take KEY  ", exp: Action{Kind: ActionTakeKey}},
		"gibberish":        {line: "dance", exp: Action{Kind: ActionUnknown}},
		"partial take":     {line: "take", exp: Action{Kind: ActionUnknown}},
		"take other item":  {line: "take sword", exp: Action{Kind: ActionUnknown}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Parse(tt.line)
			testutil.AssertEqual(t, "kind", got.Kind, tt.exp.Kind)
			testutil.AssertEqual(t, "arg", got.Arg, tt.exp.Arg)
		})
	}
}
