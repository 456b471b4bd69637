package combat

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// DieSides is the size of every die rolled in battle.
const DieSides = 20

// Roller is the single source of randomness for battle resolution.
type Roller interface {
	// D20 returns a uniform roll in [1, 20].
	D20() int
	// Float returns a uniform value in [0, 1).
	Float() float64
}

// RandRoller rolls with a seeded math/rand source.
type RandRoller struct {
	rng *rand.Rand
}

// NewRandRoller creates a roller from a seed. The same seed yields the same
// sequence of rolls.
func NewRandRoller(seed int64) *RandRoller {
	return &RandRoller{rng: rand.New(rand.NewSource(seed))}
}

// D20 rolls a twenty-sided die.
func (r *RandRoller) D20() int { return r.rng.Intn(DieSides) + 1 }

// Float returns a uniform value in [0, 1).
func (r *RandRoller) Float() float64 { return r.rng.Float64() }

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ScriptedRoller replays fixed rolls in order. When a script runs out it
// keeps returning its last value (20 and 0 when empty).
type ScriptedRoller struct {
	Dice   []int
	Floats []float64
}

// D20 returns the next scripted die roll.
func (r *ScriptedRoller) D20() int {
	if len(r.Dice) == 0 {
		return DieSides
	}
	v := r.Dice[0]
	if len(r.Dice) > 1 {
		r.Dice = r.Dice[1:]
	}
	return v
}

// Float returns the next scripted uniform value.
func (r *ScriptedRoller) Float() float64 {
	if len(r.Floats) == 0 {
		return 0
	}
	v := r.Floats[0]
	if len(r.Floats) > 1 {
		r.Floats = r.Floats[1:]
	}
	return v
}

var (
	_ Roller = (*RandRoller)(nil)
	_ Roller = (*ScriptedRoller)(nil)
)
