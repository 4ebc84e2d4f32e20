package command

import (
	"fmt"

	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/storage"
	"github.com/pixil98/go-errors"
)

type GameConfig struct {
	StartRoom string `json:"start_room"`
	ArenaRoom string `json:"arena_room"`
	Enemy     string `json:"enemy"`
	Password  string `json:"password"`
	Narrative string `json:"narrative"`

	Player PlayerConfig `json:"player"`
}

type PlayerConfig struct {
	MaxHealth int `json:"max_health"`
	MinDamage int `json:"min_damage"`
	MaxDamage int `json:"max_damage"`
}

func (c *GameConfig) Validate() error {
	el := errors.NewErrorList()

	if c.StartRoom == "" {
		el.Add(fmt.Errorf("start_room is required"))
	}
	if c.ArenaRoom == "" {
		el.Add(fmt.Errorf("arena_room is required"))
	}
	if c.Enemy == "" {
		el.Add(fmt.Errorf("enemy is required"))
	}
	if c.Password == "" {
		el.Add(fmt.Errorf("password is required"))
	}
	if c.Narrative == "" {
		el.Add(fmt.Errorf("narrative is required"))
	}

	el.Add(c.Player.Validate())

	return el.Err()
}

func (c *PlayerConfig) Validate() error {
	el := errors.NewErrorList()

	if c.MaxHealth < 1 {
		el.Add(fmt.Errorf("player max_health must be positive"))
	}
	if c.MinDamage < 0 {
		el.Add(fmt.Errorf("player min_damage must not be negative"))
	}
	if c.MaxDamage < c.MinDamage {
		el.Add(fmt.Errorf("player max_damage must be at least min_damage"))
	}

	return el.Err()
}

// Scenario converts the config into the game's scenario parameters.
func (c *GameConfig) Scenario() game.Scenario {
	return game.Scenario{
		StartRoom:       storage.Identifier(c.StartRoom),
		ArenaRoom:       storage.Identifier(c.ArenaRoom),
		Enemy:           storage.Identifier(c.Enemy),
		Password:        c.Password,
		PlayerMaxHealth: c.Player.MaxHealth,
		PlayerMinDamage: c.Player.MinDamage,
		PlayerMaxDamage: c.Player.MaxDamage,
	}
}
