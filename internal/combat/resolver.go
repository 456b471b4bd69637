// Package combat provides the turn-based duel between the hero and a region's lord.
package combat

// Combatant is the interface for anything that can take part in a duel.
// Both the player character and enemies implement this interface.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetHP() int
	GetMaxHP() int

	TakeDamage(amount int) int // Returns actual damage taken
	Heal(amount int) int       // Returns actual amount healed
}

const (
	// PotionHeal is the HP restored by one potion.
	PotionHeal = 30
	// DrainHeal is the HP an enemy recovers from a drain attack.
	DrainHeal = 10
)

// AttackKind is the kind of blow an enemy winds up during its turn.
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackMedium
	AttackStrong
	AttackDrain
)

// String returns the narrative name of the attack.
func (k AttackKind) String() string {
	switch k {
	case AttackMedium:
		return "Ataque Médio"
	case AttackStrong:
		return "ATAQUE FORTE"
	case AttackDrain:
		return "Drenagem de Vida"
	default:
		return "Nenhum"
	}
}

// ID returns a stable identifier for logs and traces.
func (k AttackKind) ID() string {
	switch k {
	case AttackMedium:
		return "medium"
	case AttackStrong:
		return "strong"
	case AttackDrain:
		return "drain"
	default:
		return "none"
	}
}

// Damage returns the damage the attack deals before any dodge.
func (k AttackKind) Damage() int {
	switch k {
	case AttackMedium, AttackDrain:
		return 10
	case AttackStrong:
		return 15
	default:
		return 0
	}
}

// AttackDamage computes floor(attack * roll / 20).
func AttackDamage(attack, roll int) int {
	if attack <= 0 || roll <= 0 {
		return 0
	}
	return attack * roll / DieSides
}

// DodgeDamage computes floor(pending * (1 - roll/20)). Rolls outside [0, 20]
// are clamped.
func DodgeDamage(pending, roll int) int {
	if roll < 0 {
		roll = 0
	}
	if roll > DieSides {
		roll = DieSides
	}
	return pending * (DieSides - roll) / DieSides
}

// SelectEnemyAttack maps a uniform [0,1) value to an attack kind:
// below 0.5 medium, below 0.8 strong, otherwise drain.
func SelectEnemyAttack(f float64) AttackKind {
	switch {
	case f < 0.5:
		return AttackMedium
	case f < 0.8:
		return AttackStrong
	default:
		return AttackDrain
	}
}

// LootPotions maps a uniform [0,1) value to the potions dropped by a
// defeated lord: below 0.25 two, below 0.75 one, otherwise none.
func LootPotions(f float64) int {
	switch {
	case f < 0.25:
		return 2
	case f < 0.75:
		return 1
	default:
		return 0
	}
}

// AttackResult contains the outcome of the player's attack.
type AttackResult struct {
	Roll     int
	Damage   int
	Defeated bool
}

// HitResult contains the outcome of an enemy blow landing.
type HitResult struct {
	Dodged  bool // True if the player tried to dodge
	Roll    int  // Dodge roll (0 when not dodging)
	Damage  int  // Damage dealt after the dodge roll
	Drained int  // HP the enemy recovered
	Fatal   bool // True if the player was brought to 0 HP
}

// Resolver rolls dice and applies their effects to combatants.
type Resolver struct {
	roller Roller
}

// NewResolver creates a resolver backed by the given roller.
func NewResolver(roller Roller) *Resolver {
	return &Resolver{roller: roller}
}

// Attack rolls a d20 and strikes the target with the attacker's base attack.
func (r *Resolver) Attack(attack int, target Combatant) AttackResult {
	roll := r.roller.D20()
	damage := AttackDamage(attack, roll)
	target.TakeDamage(damage)
	return AttackResult{
		Roll:     roll,
		Damage:   damage,
		Defeated: !target.IsAlive(),
	}
}

// EnemyWindUp picks the kind of blow the enemy prepares.
func (r *Resolver) EnemyWindUp() AttackKind {
	return SelectEnemyAttack(r.roller.Float())
}

// Land applies a pending blow to the defender. When dodge is true a second
// d20 reduces the damage. A drain heals the attacker whatever the dodge outcome.
func (r *Resolver) Land(kind AttackKind, pending int, dodge bool, attacker, defender Combatant) HitResult {
	result := HitResult{Dodged: dodge, Damage: pending}
	if dodge {
		result.Roll = r.roller.D20()
		result.Damage = DodgeDamage(pending, result.Roll)
	}

	defender.TakeDamage(result.Damage)

	if kind == AttackDrain {
		result.Drained = attacker.Heal(DrainHeal)
	}

	result.Fatal = !defender.IsAlive()
	return result
}

// RollLoot rolls the number of potions a defeated lord drops.
func (r *Resolver) RollLoot() int {
	return LootPotions(r.roller.Float())
}
