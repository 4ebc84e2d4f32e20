package combat

// Combatant is anything that can participate in combat.
type Combatant interface {
	CombatName() string
	IsAlive() bool
	Attack() int
	ApplyDamage(int)
}

// Round holds the outcome of one full exchange of blows.
type Round struct {
	PlayerDamage int
	EnemyDamage  int

	// EnemyCountered is false when the player's blow ended the fight
	// before the enemy could strike back.
	EnemyCountered bool

	Victory bool
	Defeat  bool
}

// Done returns true if the round ended the encounter.
func (r Round) Done() bool {
	return r.Victory || r.Defeat
}

// Encounter is a single engagement between the player and one enemy.
type Encounter struct {
	player Combatant
	enemy  Combatant
}

// NewEncounter creates an encounter. The player always strikes first.
func NewEncounter(player, enemy Combatant) *Encounter {
	return &Encounter{
		player: player,
		enemy:  enemy,
	}
}

func (e *Encounter) Enemy() Combatant {
	return e.enemy
}

// Round resolves one combat round. The player's blow lands first; a kill
// ends the round immediately with no counter-attack. Otherwise the enemy
// strikes back, and a lethal counter ends the encounter as a defeat.
func (e *Encounter) Round() Round {
	r := Round{}

	r.PlayerDamage = e.player.Attack()
	e.enemy.ApplyDamage(r.PlayerDamage)

	if !e.enemy.IsAlive() {
		r.Victory = true
		return r
	}

	r.EnemyDamage = e.enemy.Attack()
	e.player.ApplyDamage(r.EnemyDamage)
	r.EnemyCountered = true

	if !e.player.IsAlive() {
		r.Defeat = true
	}

	return r
}
