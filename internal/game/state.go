// Package game holds the game-state machine: the state of one play session
// and the engine that advances it one text command at a time.
package game

import (
	"github.com/samdwyer/cincodedos/internal/combat"
	"github.com/samdwyer/cincodedos/internal/command"
	"github.com/samdwyer/cincodedos/internal/entity"
	"github.com/samdwyer/cincodedos/internal/world"
)

// Mode represents whether the player is exploring or fighting.
type Mode int

const (
	// ModeExplore is the default mode: travelling, talking, checking status.
	ModeExplore Mode = iota
	// ModeBattle is a duel against the current region's lord.
	ModeBattle
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeBattle:
		return "battle"
	default:
		return "unknown"
	}
}

// BattlePhase represents the current phase of a battle.
type BattlePhase int

const (
	// PhasePlayerTurn - waiting for attack, potion or flee
	PhasePlayerTurn BattlePhase = iota
	// PhaseAwaitingDodge - an enemy blow is pending the dodge decision
	PhaseAwaitingDodge
)

// String returns a human-readable phase name.
func (p BattlePhase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseAwaitingDodge:
		return "awaiting_dodge"
	default:
		return "unknown"
	}
}

// GameState is everything one play session knows. Engine.Submit never
// mutates the value it is given; it returns the next state instead.
type GameState struct {
	SessionID string
	Player    *entity.Character
	World     *world.Map
	Inventory entity.Inventory

	Location int // Current region id, 0 is the hub
	Mode     Mode
	Phase    BattlePhase

	// Set only while Phase is PhaseAwaitingDodge
	PendingDamage int
	PendingAttack combat.AttackKind

	GameOver     bool
	FinalVictory bool

	Commands int // Commands processed so far
}

// Clone returns a deep copy that shares nothing mutable with s.
func (s GameState) Clone() GameState {
	cp := s
	cp.Player = s.Player.Clone()
	if s.World != nil {
		cp.World = s.World.Clone()
	}
	return cp
}

// InBattle reports whether a battle is in progress.
func (s GameState) InBattle() bool { return s.Mode == ModeBattle }

// Region returns the region the player is in, or nil if the location is unknown.
func (s GameState) Region() *world.Region {
	if s.World == nil {
		return nil
	}
	r, ok := s.World.GetRegion(s.Location)
	if !ok {
		return nil
	}
	return r
}

// Context returns the parser context for the current state.
func (s GameState) Context() command.Context {
	switch {
	case s.InBattle() && s.Phase == PhaseAwaitingDodge:
		return command.ContextDodge
	case s.InBattle():
		return command.ContextBattle
	case s.Location == 0:
		return command.ContextHub
	default:
		return command.ContextRegion
	}
}

// Over reports whether the session has reached a terminal state.
func (s GameState) Over() bool { return s.GameOver || s.FinalVictory }

// endBattle leaves battle mode and clears any pending blow.
func (s *GameState) endBattle() {
	s.Mode = ModeExplore
	s.Phase = PhasePlayerTurn
	s.clearPending()
}

func (s *GameState) clearPending() {
	s.PendingDamage = 0
	s.PendingAttack = combat.AttackNone
}
