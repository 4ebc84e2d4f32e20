package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-dungeon/internal/storage"
)

// ExitState is the runtime state of one directed exit.
type ExitState struct {
	To     *RoomInstance
	Locked bool
}

// RoomInstance is the runtime state of a room: its definition plus the
// items currently present and the state of its exits.
type RoomInstance struct {
	Id   storage.Identifier
	Room storage.SmartIdentifier[*Room]

	// Items in insertion order; insertion order is display order.
	Items []*ItemInstance

	Exits map[string]*ExitState

	// Visited is reserved; no behavior reads it yet.
	Visited bool
}

func (ri *RoomInstance) Name() string {
	return ri.Room.Get().Name
}

// AddItem places an item instance in the room.
func (ri *RoomInstance) AddItem(item *ItemInstance) {
	ri.Items = append(ri.Items, item)
}

// RemoveItem removes and returns an item by case-insensitive name match.
// Returns nil if no item matches.
func (ri *RoomInstance) RemoveItem(name string) *ItemInstance {
	for i, item := range ri.Items {
		if item.MatchName(name) {
			ri.Items = append(ri.Items[:i], ri.Items[i+1:]...)
			return item
		}
	}
	return nil
}

// GetItem returns an item by name without removing it, or nil.
func (ri *RoomInstance) GetItem(name string) *ItemInstance {
	for _, item := range ri.Items {
		if item.MatchName(name) {
			return item
		}
	}
	return nil
}

// Describe renders the full room text: title, narrative, present items,
// and available exits. Empty sections are omitted.
func (ri *RoomInstance) Describe() string {
	def := ri.Room.Get()

	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n%s\n", def.Name, def.Description)

	if len(ri.Items) > 0 {
		b.WriteString("\nYou can see:\n")
		for _, item := range ri.Items {
			fmt.Fprintf(&b, "  - A %s\n", item.Name())
		}
	}

	var exits []string
	for _, dir := range Directions {
		if _, ok := ri.Exits[dir]; ok {
			exits = append(exits, dir)
		}
	}
	if len(exits) > 0 {
		fmt.Fprintf(&b, "\nExits: %s", strings.Join(exits, ", "))
	}

	return b.String()
}

// Scenario configures the mutable parts of a game: where it starts,
// where the encounter happens, and the actors' stats.
type Scenario struct {
	StartRoom storage.Identifier
	ArenaRoom storage.Identifier
	Enemy     storage.Identifier

	// Password guards the start room's north exit. Stored uppercase;
	// attempts are uppercased before comparison.
	Password string

	PlayerMaxHealth int
	PlayerMinDamage int
	PlayerMaxDamage int
}

// WorldState is the single source of truth for all mutable game state.
// The engine is strictly single-threaded: all access happens on the
// session goroutine.
type WorldState struct {
	rooms  map[storage.Identifier]*RoomInstance
	player *Player

	current  *RoomInstance
	start    *RoomInstance
	arena    *RoomInstance
	enemyId  storage.Identifier
	enemyDef *Mobile
	password string

	enemy *MobileInstance

	doorUnlocked  bool
	gameOver      bool
	gameWon       bool
	inCombat      bool
	enemyDefeated bool
}

// NewWorldState builds room and item instances from the dictionary and
// places the player in the scenario's start room.
func NewWorldState(dict *Dictionary, scenario Scenario) (*WorldState, error) {
	rooms := make(map[storage.Identifier]*RoomInstance)
	for roomId, room := range dict.Rooms.GetAll() {
		ri := &RoomInstance{
			Id:    roomId,
			Room:  storage.NewResolvedSmartIdentifier(roomId, room),
			Exits: make(map[string]*ExitState),
		}
		for _, itemRef := range room.Items {
			ri.AddItem(NewItemInstance(itemRef.Id(), itemRef.Get()))
		}
		rooms[roomId] = ri
	}

	// Second pass: wire exit states now that all instances exist.
	for roomId, ri := range rooms {
		for dir, exit := range ri.Room.Get().Exits {
			to, ok := rooms[exit.Room.Id()]
			if !ok {
				return nil, fmt.Errorf("room %s: exit %s: room %q not found", roomId, dir, exit.Room.Id())
			}
			ri.Exits[dir] = &ExitState{To: to, Locked: exit.Locked}
		}
	}

	start, ok := rooms[scenario.StartRoom]
	if !ok {
		return nil, fmt.Errorf("start room %q not found", scenario.StartRoom)
	}
	arena, ok := rooms[scenario.ArenaRoom]
	if !ok {
		return nil, fmt.Errorf("arena room %q not found", scenario.ArenaRoom)
	}

	enemyDef := dict.Mobiles.Get(scenario.Enemy)
	if enemyDef == nil {
		return nil, fmt.Errorf("enemy %q not found", scenario.Enemy)
	}

	w := &WorldState{
		rooms:    rooms,
		player:   NewPlayer(scenario.PlayerMaxHealth, scenario.PlayerMinDamage, scenario.PlayerMaxDamage),
		current:  start,
		start:    start,
		arena:    arena,
		enemyId:  scenario.Enemy,
		enemyDef: enemyDef,
		password: strings.ToUpper(scenario.Password),
	}
	start.Visited = true

	return w, nil
}

// Room returns a room instance by id, or nil.
func (w *WorldState) Room(id storage.Identifier) *RoomInstance {
	return w.rooms[id]
}

func (w *WorldState) CurrentRoom() *RoomInstance {
	return w.current
}

func (w *WorldState) StartRoom() *RoomInstance {
	return w.start
}

func (w *WorldState) Player() *Player {
	return w.player
}

// Enemy returns the active enemy, or nil outside combat.
func (w *WorldState) Enemy() *MobileInstance {
	return w.enemy
}

func (w *WorldState) Password() string {
	return w.password
}

func (w *WorldState) DoorUnlocked() bool {
	return w.doorUnlocked
}

func (w *WorldState) GameOver() bool {
	return w.gameOver
}

func (w *WorldState) GameWon() bool {
	return w.gameWon
}

func (w *WorldState) InCombat() bool {
	return w.inCombat
}

func (w *WorldState) EnemyDefeated() bool {
	return w.enemyDefeated
}

// MoveTo relocates the player. Exit and lock checks belong to the
// command layer; by the time this is called the move is legal.
func (w *WorldState) MoveTo(room *RoomInstance) {
	w.current = room
	room.Visited = true
}

// ArenaEntered returns true when the current room is the arena and its
// encounter has not yet started or been resolved.
func (w *WorldState) ArenaEntered() bool {
	return w.current == w.arena && !w.enemyDefeated && !w.inCombat
}

// StartCombat spawns the enemy at full health and enters combat mode.
func (w *WorldState) StartCombat() *MobileInstance {
	w.enemy = NewMobileInstance(w.enemyId, w.enemyDef)
	w.inCombat = true
	return w.enemy
}

// DeclareVictory resolves the encounter as a win. The enemy instance is
// discarded and never respawned.
func (w *WorldState) DeclareVictory() {
	w.enemy = nil
	w.inCombat = false
	w.enemyDefeated = true
	w.gameWon = true
	w.gameOver = true
}

// DeclareDefeat resolves the encounter as a loss.
func (w *WorldState) DeclareDefeat() {
	w.enemy = nil
	w.inCombat = false
	w.gameOver = true
}

// UnlockDoor clears the start room's north lock. The unlock is
// permanent; there is no way to re-lock.
func (w *WorldState) UnlockDoor() {
	w.doorUnlocked = true
	if exit, ok := w.start.Exits["north"]; ok {
		exit.Locked = false
	}
}

// Quit ends the game without a win.
func (w *WorldState) Quit() {
	w.gameOver = true
}
