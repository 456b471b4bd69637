package entity

import (
	"github.com/samdwyer/cincodedos/internal/combat"
	"github.com/samdwyer/cincodedos/internal/gamedata"
)

// Enemy is the demon lord holding a region.
type Enemy struct {
	Name  string // e.g., "Nocthar"
	Title string // e.g., "Dedo da Luz Corrompida"
	HP    int    // Current hit points, never below 0
	MaxHP int    // Maximum hit points
}

// NewEnemyFromDef creates a full-health enemy from its definition.
func NewEnemyFromDef(def *gamedata.EnemyDef) *Enemy {
	return &Enemy{
		Name:  def.Name,
		Title: def.Title,
		HP:    def.HP,
		MaxHP: def.HP,
	}
}

// Clone returns an independent copy of the enemy.
func (e *Enemy) Clone() *Enemy {
	if e == nil {
		return nil
	}
	cp := *e
	return &cp
}

// GetName returns the enemy's name.
func (e *Enemy) GetName() string { return e.Name }

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// GetHP returns current HP.
func (e *Enemy) GetHP() int { return e.HP }

// GetMaxHP returns maximum HP.
func (e *Enemy) GetMaxHP() int { return e.MaxHP }

// TakeDamage reduces HP and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	return takeDamage(&e.HP, amount)
}

// Heal restores HP and returns actual amount healed.
func (e *Enemy) Heal(amount int) int {
	return heal(&e.HP, e.MaxHP, amount)
}

var _ combat.Combatant = (*Enemy)(nil)
