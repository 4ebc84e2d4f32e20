package game

import (
	"github.com/pixil98/go-dungeon/internal/combat"
)

// Player holds the player character's combat stats and inventory.
type Player struct {
	Health    int
	MaxHealth int

	// Damage roll bounds, inclusive.
	MinDamage int
	MaxDamage int

	// inventory preserves insertion order for display.
	inventory []*ItemInstance
}

// NewPlayer creates a player at full health with an empty inventory.
func NewPlayer(maxHealth, minDamage, maxDamage int) *Player {
	return &Player{
		Health:    maxHealth,
		MaxHealth: maxHealth,
		MinDamage: minDamage,
		MaxDamage: maxDamage,
	}
}

// AddItem adds an item instance to the inventory. There is no capacity
// limit.
func (p *Player) AddItem(item *ItemInstance) {
	p.inventory = append(p.inventory, item)
}

// HasItem checks possession of a named item, case-insensitively.
func (p *Player) HasItem(name string) bool {
	return p.GetItem(name) != nil
}

// GetItem returns a named item without removing it, or nil.
func (p *Player) GetItem(name string) *ItemInstance {
	for _, item := range p.inventory {
		if item.MatchName(name) {
			return item
		}
	}
	return nil
}

// Items returns the inventory in insertion order.
func (p *Player) Items() []*ItemInstance {
	return p.inventory
}

func (p *Player) CombatName() string {
	return "you"
}

func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// Attack rolls the player's damage for one blow.
func (p *Player) Attack() int {
	return combat.RollDamage(p.MinDamage, p.MaxDamage)
}

// ApplyDamage reduces health, clamping at zero. Health never rises above
// MaxHealth because damage only subtracts.
func (p *Player) ApplyDamage(dmg int) {
	p.Health -= dmg
	if p.Health < 0 {
		p.Health = 0
	}
}
