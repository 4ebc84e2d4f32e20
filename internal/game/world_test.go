package game

import (
	"encoding/json"
	"testing"

	"github.com/pixil98/go-dungeon/internal/storage"
	"github.com/pixil98/go-testutil"
)

type fakeStore[T storage.ValidatingSpec] map[storage.Identifier]T

func (f fakeStore[T]) Get(id storage.Identifier) T {
	return f[id]
}

func (f fakeStore[T]) GetAll() map[storage.Identifier]T {
	return f
}

func mustRoom(t *testing.T, data string) *Room {
	t.Helper()

	var r Room
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("failed to unmarshal room: %v", err)
	}
	return &r
}

// testDictionary builds a resolved three room dungeon: a locked door
// north of the entry, a middle room holding the note, and an arena.
func testDictionary(t *testing.T) *Dictionary {
	t.Helper()

	dict := &Dictionary{
		Rooms: fakeStore[*Room]{
			"entry": mustRoom(t, `{
				"name": "Entry",
				"description": "The entry.",
				"items": ["key"],
				"exits": {"north": {"room": "middle", "locked": true}}
			}`),
			"middle": mustRoom(t, `{
				"name": "Middle",
				"description": "The middle.",
				"items": ["note"],
				"exits": {"north": {"room": "arena"}, "south": {"room": "entry"}}
			}`),
			"arena": mustRoom(t, `{
				"name": "Arena",
				"description": "The arena.",
				"exits": {"south": {"room": "middle"}}
			}`),
		},
		Items: fakeStore[*Item]{
			"key":  {Name: "key", Description: "A rusty iron key", Takeable: true},
			"note": {Name: "note", Description: "A crumpled note", Takeable: false},
		},
		Mobiles: fakeStore[*Mobile]{
			"dark-warrior": {Name: "Dark Warrior", MaxHealth: 10, MinDamage: 1, MaxDamage: 4},
		},
	}

	if err := dict.Resolve(); err != nil {
		t.Fatalf("failed to resolve dictionary: %v", err)
	}

	return dict
}

func testScenario() Scenario {
	return Scenario{
		StartRoom:       "entry",
		ArenaRoom:       "arena",
		Enemy:           "dark-warrior",
		Password:        "shadow",
		PlayerMaxHealth: 20,
		PlayerMinDamage: 1,
		PlayerMaxDamage: 6,
	}
}

func TestNewWorldState(t *testing.T) {
	w, err := NewWorldState(testDictionary(t), testScenario())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "current room", w.CurrentRoom().Id, storage.Identifier("entry"))
	testutil.AssertEqual(t, "player health", w.Player().Health, 20)
	testutil.AssertEqual(t, "password uppercased", w.Password(), "SHADOW")
	testutil.AssertEqual(t, "game over", w.GameOver(), false)
	testutil.AssertEqual(t, "in combat", w.InCombat(), false)

	// Items were instantiated into their rooms
	if w.CurrentRoom().GetItem("key") == nil {
		t.Error("expected key in entry room")
	}
	if w.Room("middle").GetItem("note") == nil {
		t.Error("expected note in middle room")
	}

	// The north exit out of the entry starts locked
	exit := w.CurrentRoom().Exits["north"]
	if exit == nil {
		t.Fatal("expected north exit from entry")
	}
	testutil.AssertEqual(t, "north locked", exit.Locked, true)
	testutil.AssertEqual(t, "north destination", exit.To.Id, storage.Identifier("middle"))
}

func TestNewWorldState_BadScenario(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Scenario)
		expErr string
	}{
		"missing start room": {
			mutate: func(s *Scenario) { s.StartRoom = "void" },
			expErr: `start room "void" not found`,
		},
		"missing arena room": {
			mutate: func(s *Scenario) { s.ArenaRoom = "void" },
			expErr: `arena room "void" not found`,
		},
		"missing enemy": {
			mutate: func(s *Scenario) { s.Enemy = "slime" },
			expErr: `enemy "slime" not found`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			scenario := testScenario()
			tt.mutate(&scenario)

			_, err := NewWorldState(testDictionary(t), scenario)
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestWorldStateUnlockDoor(t *testing.T) {
	w, err := NewWorldState(testDictionary(t), testScenario())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w.UnlockDoor()

	testutil.AssertEqual(t, "door unlocked", w.DoorUnlocked(), true)
	testutil.AssertEqual(t, "exit unlocked", w.StartRoom().Exits["north"].Locked, false)

	// Unlocking again changes nothing
	w.UnlockDoor()
	testutil.AssertEqual(t, "still unlocked", w.DoorUnlocked(), true)
}

func TestWorldStateArenaEntered(t *testing.T) {
	w, err := NewWorldState(testDictionary(t), testScenario())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "at start", w.ArenaEntered(), false)

	w.MoveTo(w.Room("arena"))
	testutil.AssertEqual(t, "first entry", w.ArenaEntered(), true)

	// Entering combat stops the trigger from re-firing
	w.StartCombat()
	testutil.AssertEqual(t, "during combat", w.ArenaEntered(), false)

	// After victory the encounter never restarts
	w.DeclareVictory()
	testutil.AssertEqual(t, "after victory", w.ArenaEntered(), false)
}

func TestWorldStateCombatLifecycle(t *testing.T) {
	w, err := NewWorldState(testDictionary(t), testScenario())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	enemy := w.StartCombat()
	if enemy == nil {
		t.Fatal("expected spawned enemy")
	}
	testutil.AssertEqual(t, "enemy hp", enemy.CurrentHP, 10)
	testutil.AssertEqual(t, "in combat", w.InCombat(), true)
	if w.Enemy() != enemy {
		t.Error("expected accessor to return the spawned enemy")
	}

	w.DeclareVictory()
	if w.Enemy() != nil {
		t.Error("expected enemy to be discarded after victory")
	}
	testutil.AssertEqual(t, "in combat", w.InCombat(), false)
	testutil.AssertEqual(t, "enemy defeated", w.EnemyDefeated(), true)
	testutil.AssertEqual(t, "game won", w.GameWon(), true)
	testutil.AssertEqual(t, "game over", w.GameOver(), true)
}

func TestWorldStateDefeat(t *testing.T) {
	w, err := NewWorldState(testDictionary(t), testScenario())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w.StartCombat()
	w.DeclareDefeat()

	testutil.AssertEqual(t, "game over", w.GameOver(), true)
	testutil.AssertEqual(t, "game won", w.GameWon(), false)
	testutil.AssertEqual(t, "enemy defeated", w.EnemyDefeated(), false)
}

func TestWorldStateQuit(t *testing.T) {
	w, err := NewWorldState(testDictionary(t), testScenario())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w.Quit()

	testutil.AssertEqual(t, "game over", w.GameOver(), true)
	testutil.AssertEqual(t, "game won", w.GameWon(), false)
}
