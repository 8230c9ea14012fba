// Package combat provides attack resolution for the battle.
package combat

import "fmt"

// Combatant is the interface for any unit that can attack or be attacked.
type Combatant interface {
	// Identity
	GetName() string
	IsAlive() bool

	// Stats
	GetHP() int
	GetMaxHP() int
	GetStrength() int
	GetDefense() int

	// Mutations
	TakeDamage(amount int) int // Returns actual damage taken
}

// AttackResult contains the outcome of a single attack.
type AttackResult struct {
	AttackRoll      int
	DefenseRoll     int
	Damage          int    // Damage dealt, always at least 1
	RemainingHealth int    // Defender HP after the hit, never negative
	Killed          bool   // True if this hit took the defender to 0
	Message         string // Human-readable description
}

// Resolver rolls and applies attack damage.
type Resolver struct {
	rng RandomSource
}

// NewResolver creates a resolver drawing rolls from rng.
func NewResolver(rng RandomSource) *Resolver {
	return &Resolver{rng: rng}
}

// ResolveAttack rolls attack and defense, applies the damage to the defender
// and returns what happened. Removing a killed defender from its roster is
// left to the caller.
func (r *Resolver) ResolveAttack(attacker, defender Combatant) AttackResult {
	attackRoll, defenseRoll := r.Roll(attacker, defender)
	damage := Damage(attackRoll, defenseRoll)

	wasAlive := defender.IsAlive()
	defender.TakeDamage(damage)

	return AttackResult{
		AttackRoll:      attackRoll,
		DefenseRoll:     defenseRoll,
		Damage:          damage,
		RemainingHealth: defender.GetHP(),
		Killed:          wasAlive && !defender.IsAlive(),
		Message: fmt.Sprintf("%s hits %s for %d damage!",
			attacker.GetName(), defender.GetName(), damage),
	}
}

// Roll draws the attack roll in [0, strength) and then the defense roll in
// [0, defense), in that order.
func (r *Resolver) Roll(attacker, defender Combatant) (attackRoll, defenseRoll int) {
	attackRoll = r.rng.UniformInt(0, attacker.GetStrength())
	defenseRoll = r.rng.UniformInt(0, defender.GetDefense())
	return attackRoll, defenseRoll
}

// Damage computes max(1, defenseRoll - attackRoll).
// The subtraction order is intentional and must not be swapped.
func Damage(attackRoll, defenseRoll int) int {
	damage := defenseRoll - attackRoll
	if damage < 1 {
		damage = 1
	}
	return damage
}
