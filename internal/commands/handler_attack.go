package commands

import (
	"context"

	"github.com/pixil98/go-dungeon/internal/combat"
)

// startCombat spawns the enemy, announces both combatants, and narrows
// the vocabulary to attack.
func (h *Handler) startCombat() error {
	enemy := h.world.StartCombat()
	h.encounter = combat.NewEncounter(h.world.Player(), enemy)

	return h.say("combat_start", map[string]any{
		"Enemy":           enemy.CombatName(),
		"EnemyHealth":     enemy.CurrentHP,
		"EnemyMaxHealth":  enemy.MaxHP(),
		"PlayerHealth":    h.world.Player().Health,
		"PlayerMaxHealth": h.world.Player().MaxHealth,
	})
}

// handleAttack resolves one full combat round. Outside combat, attack is
// not part of the vocabulary and gets the generic guidance response.
func (h *Handler) handleAttack(ctx context.Context, action Action) error {
	if !h.world.InCombat() || h.encounter == nil {
		return h.userError("unknown_command", nil)
	}

	enemy := h.world.Enemy()
	player := h.world.Player()
	round := h.encounter.Round()

	err := h.say("attack_hit", map[string]any{
		"Enemy":          enemy.CombatName(),
		"Damage":         round.PlayerDamage,
		"EnemyHealth":    enemy.CurrentHP,
		"EnemyMaxHealth": enemy.MaxHP(),
	})
	if err != nil {
		return err
	}

	if round.Victory {
		h.encounter = nil
		h.world.DeclareVictory()
		return h.say("victory", map[string]any{"Enemy": enemy.CombatName()})
	}

	err = h.say("enemy_counter", map[string]any{
		"Enemy":           enemy.CombatName(),
		"Damage":          round.EnemyDamage,
		"PlayerHealth":    player.Health,
		"PlayerMaxHealth": player.MaxHealth,
	})
	if err != nil {
		return err
	}

	if round.Defeat {
		h.encounter = nil
		h.world.DeclareDefeat()
		return h.say("defeat", map[string]any{"Enemy": enemy.CombatName()})
	}

	return nil
}
