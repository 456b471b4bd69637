// Package entity provides the hero, the lords holding each region and the potion bag.
package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/cincodedos/internal/combat"
	"github.com/samdwyer/cincodedos/internal/gamedata"
)

// ErrUnknownClass is returned when a class name does not match any playable class.
var ErrUnknownClass = errors.New("unknown class")

// Class represents the hero's class.
type Class int

const (
	ClassKnight Class = iota
	ClassMage
	ClassArcher
	ClassBerserker
	ClassViking
	ClassElf
)

// Classes lists every playable class in selection order.
var Classes = []Class{ClassKnight, ClassMage, ClassArcher, ClassBerserker, ClassViking, ClassElf}

// String returns the class display name.
func (c Class) String() string {
	switch c {
	case ClassKnight:
		return "Cavaleiro"
	case ClassMage:
		return "Mago"
	case ClassArcher:
		return "Arqueiro"
	case ClassBerserker:
		return "Berserk"
	case ClassViking:
		return "Viking"
	case ClassElf:
		return "Elfo"
	default:
		return "Desconhecido"
	}
}

// ID returns the class identifier for data lookup.
func (c Class) ID() string {
	switch c {
	case ClassKnight:
		return "knight"
	case ClassMage:
		return "mage"
	case ClassArcher:
		return "archer"
	case ClassBerserker:
		return "berserker"
	case ClassViking:
		return "viking"
	case ClassElf:
		return "elf"
	default:
		return "unknown"
	}
}

// ParseClass accepts a class ID or display name, case-insensitively.
func ParseClass(name string) (Class, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Classes {
		if name == c.ID() || name == strings.ToLower(c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, name)
}

// Character is the player's hero.
type Character struct {
	Name    string
	Class   Class
	Ability string // Flavour text from the class table

	HP, MaxHP int
	Attack    int
}

// NewCharacter creates a hero at full health from a class definition.
func NewCharacter(name string, class Class, def *gamedata.ClassDef) *Character {
	c := &Character{Name: name, Class: class}
	if def != nil {
		c.MaxHP = def.HP
		c.HP = def.HP
		c.Attack = def.Attack
		c.Ability = def.Ability
	}
	return c
}

// SetAttack overwrites the base attack. Negative values are clamped to 0.
func (c *Character) SetAttack(attack int) {
	if attack < 0 {
		attack = 0
	}
	c.Attack = attack
}

// Clone returns an independent copy of the character.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the character's name.
func (c *Character) GetName() string { return c.Name }

// IsAlive returns true if the character has HP remaining.
func (c *Character) IsAlive() bool { return c.HP > 0 }

// GetHP returns current HP.
func (c *Character) GetHP() int { return c.HP }

// GetMaxHP returns maximum HP.
func (c *Character) GetMaxHP() int { return c.MaxHP }

// TakeDamage reduces HP and returns actual damage taken.
func (c *Character) TakeDamage(amount int) int {
	return takeDamage(&c.HP, amount)
}

// Heal restores HP and returns actual amount healed.
func (c *Character) Heal(amount int) int {
	return heal(&c.HP, c.MaxHP, amount)
}

func takeDamage(hp *int, amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > *hp {
		actual = *hp
	}
	*hp -= actual
	return actual
}

func heal(hp *int, maxHP, amount int) int {
	if amount <= 0 || *hp >= maxHP {
		return 0
	}
	actual := amount
	if *hp+actual > maxHP {
		actual = maxHP - *hp
	}
	*hp += actual
	return actual
}

// Ensure Character implements combat.Combatant
var _ combat.Combatant = (*Character)(nil)
