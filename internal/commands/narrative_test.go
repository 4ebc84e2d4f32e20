package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

// testMessages covers every required key with short, distinguishable
// prose so handler tests can assert on output.
func testMessages() map[string]string {
	return map[string]string{
		"intro":             "Welcome to the dungeon.",
		"help":              "Commands: go, look, take key.",
		"unknown_command":   "I don't understand that.",
		"combat_only":       "You can only 'attack'.",
		"invalid_direction": "You can only go north or south.",
		"cannot_go":         "You can't go {{ .Direction }}.",
		"door_locked":       "The door is locked.",
		"inventory":         "You are carrying:{{ range .Items }} {{ . }}{{ end }}",
		"inventory_empty":   "You aren't carrying anything.",
		"take_key_success":  "You pick up {{ .Item }}.",
		"take_key_missing":  "There is no key here.",
		"read_note":         "The note reads: {{ .Password }}",
		"read_note_missing": "There is no note here.",
		"unlock_already":    "The door is already unlocked.",
		"unlock_no_key":     "You need the key first.",
		"unlock_success":    "The lock clicks open.",
		"unlock_wrong":      "Nothing happens.",
		"open_door_open":    "The door swings open.",
		"open_door_locked":  "The door won't budge.",
		"open_door_none":    "There is no door here.",
		"combat_start":      "A {{ .Enemy }} attacks!",
		"attack_hit":        "You hit the {{ .Enemy }} for {{ .Damage }}.",
		"enemy_counter":     "The {{ .Enemy }} hits you for {{ .Damage }}.",
		"victory":           "The {{ .Enemy }} falls. You win!",
		"defeat":            "You have been slain.",
		"goodbye":           "Goodbye.",
		"farewell":          "Until next time.",
	}
}

func TestNarrativeValidate(t *testing.T) {
	n := &Narrative{Messages: testMessages()}
	if err := n.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNarrativeValidate_MissingMessage(t *testing.T) {
	msgs := testMessages()
	delete(msgs, "victory")

	n := &Narrative{Messages: msgs}
	testutil.AssertErrorContains(t, n.Validate(), `message "victory" is required`)
}

func TestNarrativeValidate_BadTemplate(t *testing.T) {
	msgs := testMessages()
	msgs["intro"] = "{{ .Unclosed"

	n := &Narrative{Messages: msgs}
	testutil.AssertErrorContains(t, n.Validate(), `message "intro"`)
}

func TestNarrativeRender(t *testing.T) {
	n := &Narrative{Messages: testMessages()}

	out, err := n.Render("cannot_go", map[string]any{"Direction": "north"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "output", out, "You can't go north.")

	_, err = n.Render("no_such_key", nil)
	testutil.AssertErrorContains(t, err, `message "no_such_key" not defined`)
}

func TestNarrativeRender_SprigFunctions(t *testing.T) {
	n := &Narrative{Messages: map[string]string{
		"banner": `{{ repeat 5 "=" }} {{ upper .Title }} {{ repeat 5 "=" }}`,
	}}

	out, err := n.Render("banner", map[string]any{"Title": "victory"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "output", out, "===== VICTORY =====")
}
