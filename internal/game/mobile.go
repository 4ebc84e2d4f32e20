package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pixil98/go-dungeon/internal/combat"
	"github.com/pixil98/go-dungeon/internal/storage"
	"github.com/pixil98/go-errors"
)

// Mobile defines a type of hostile entity loaded from asset files.
type Mobile struct {
	// Name is used in combat messages (e.g., "You attack the Dark Warrior.")
	Name string `json:"name"`

	MaxHealth int `json:"max_health"`

	// Damage roll bounds, inclusive.
	MinDamage int `json:"min_damage"`
	MaxDamage int `json:"max_damage"`
}

// Validate satisfies storage.ValidatingSpec
func (m *Mobile) Validate() error {
	el := errors.NewErrorList()
	if m.Name == "" {
		el.Add(fmt.Errorf("mobile name is required"))
	}
	if m.MaxHealth < 1 {
		el.Add(fmt.Errorf("mobile max_health must be positive"))
	}
	if m.MinDamage < 0 {
		el.Add(fmt.Errorf("mobile min_damage must not be negative"))
	}
	if m.MaxDamage < m.MinDamage {
		el.Add(fmt.Errorf("mobile max_damage must be at least min_damage"))
	}
	return el.Err()
}

// MobileInstance is a single spawned instance of a Mobile definition. An
// instance exists only for the duration of one encounter.
type MobileInstance struct {
	InstanceId string
	Mobile     storage.SmartIdentifier[*Mobile]

	CurrentHP int
}

// NewMobileInstance spawns an instance of the given resolved definition
// at full health.
func NewMobileInstance(id storage.Identifier, def *Mobile) *MobileInstance {
	return &MobileInstance{
		InstanceId: uuid.New().String(),
		Mobile:     storage.NewResolvedSmartIdentifier(id, def),
		CurrentHP:  def.MaxHealth,
	}
}

func (mi *MobileInstance) CombatName() string {
	return mi.Mobile.Get().Name
}

func (mi *MobileInstance) IsAlive() bool {
	return mi.CurrentHP > 0
}

func (mi *MobileInstance) MaxHP() int {
	return mi.Mobile.Get().MaxHealth
}

// Attack rolls this mobile's damage for one blow.
func (mi *MobileInstance) Attack() int {
	def := mi.Mobile.Get()
	return combat.RollDamage(def.MinDamage, def.MaxDamage)
}

// ApplyDamage reduces health, clamping at zero.
func (mi *MobileInstance) ApplyDamage(dmg int) {
	mi.CurrentHP -= dmg
	if mi.CurrentHP < 0 {
		mi.CurrentHP = 0
	}
}
