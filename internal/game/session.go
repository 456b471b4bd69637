package game

import "context"

// Session threads one GameState value through successive Submit calls.
// It is not safe for concurrent use.
type Session struct {
	engine *Engine
	state  GameState
}

// NewSession starts a session from an initial state.
func NewSession(engine *Engine, state GameState) *Session {
	return &Session{engine: engine, state: state}
}

// Submit sends one line of input and keeps the resulting state.
func (s *Session) Submit(ctx context.Context, input string) string {
	out, next := s.engine.Submit(ctx, s.state, input)
	s.state = next
	return out
}

// State returns the current state.
func (s *Session) State() GameState { return s.state }

// HUD returns the heads-up display for the current state.
func (s *Session) HUD() HUD { return s.state.HUD() }

// Intro returns the opening narrative.
func (s *Session) Intro() string { return s.state.Intro() }

// Over reports whether the game has been won or lost.
func (s *Session) Over() bool { return s.state.Over() }
