package game

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/cincodedos/internal/combat"
	"github.com/samdwyer/cincodedos/internal/command"
	"github.com/samdwyer/cincodedos/internal/logger"
	"github.com/samdwyer/cincodedos/internal/telemetry"
)

// Engine advances a GameState one command at a time.
type Engine struct {
	cfg      Config
	resolver *combat.Resolver
	tracer   trace.Tracer
	log      logrus.FieldLogger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRoller replaces the seeded dice, e.g. with a combat.ScriptedRoller.
func WithRoller(r combat.Roller) Option {
	return func(e *Engine) { e.resolver = combat.NewResolver(r) }
}

// WithTracer sets the tracer used for command spans.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithLogger sets the logger used for command logs.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an engine. Without WithRoller the dice are seeded from
// cfg.Seed, or from crypto/rand when the seed is 0.
func New(cfg Config, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:    cfg,
		tracer: telemetry.Tracer("game"),
		log:    logger.Log,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.resolver == nil {
		if e.cfg.Seed == 0 {
			seed, err := combat.NewSeed()
			if err != nil {
				return nil, err
			}
			e.cfg.Seed = seed
		}
		e.resolver = combat.NewResolver(combat.NewRandRoller(e.cfg.Seed))
	}
	return e, nil
}

// Seed returns the seed the dice were created with.
func (e *Engine) Seed() int64 { return e.cfg.Seed }

// Submit interprets one line of player input against st and returns the
// narrative reply and the next state. st itself is left untouched. Invalid
// or disallowed commands never fail: they return a message, the unchanged
// state and the current menu. Once the game is won or lost every command
// returns a fixed message.
func (e *Engine) Submit(ctx context.Context, st GameState, raw string) (string, GameState) {
	ctx, span := e.tracer.Start(ctx, "game.command")
	defer span.End()

	span.SetAttributes(
		attribute.String("session.id", st.SessionID),
		attribute.Int("location", st.Location),
		attribute.String("mode", st.Mode.String()),
	)

	switch {
	case st.GameOver:
		span.SetAttributes(attribute.Bool("terminal", true))
		return MsgAlreadyDefeated, st
	case st.FinalVictory:
		span.SetAttributes(attribute.Bool("terminal", true))
		return MsgAlreadyWon, st
	case st.Player == nil || st.World == nil:
		return "Nenhum personagem em jogo.", st
	}

	next := st.Clone()
	if next.Region() == nil {
		// Unknown location: fall back to the hub.
		next.Location = 0
		next.endBattle()
	}
	if r := next.Region(); next.InBattle() && (r.Enemy == nil || r.Liberated) {
		// No lord left to fight here.
		next.endBattle()
	}

	ctxKind := next.Context()
	cmd := command.Parse(ctxKind, raw)
	span.SetAttributes(
		attribute.String("context", ctxKind.String()),
		attribute.String("intent", cmd.Intent.String()),
	)

	var out string
	switch ctxKind {
	case command.ContextDodge:
		out = e.handleDodge(ctx, &next, cmd)
	case command.ContextBattle:
		out = e.handleBattle(ctx, &next, cmd)
	case command.ContextHub:
		out = e.handleHub(&next, cmd)
	default:
		out = e.handleRegion(ctx, &next, cmd)
	}
	next.Commands++

	e.log.WithFields(logrus.Fields{
		"session":  next.SessionID,
		"context":  ctxKind.String(),
		"intent":   cmd.Intent.String(),
		"input":    cmd.Input,
		"location": next.Location,
		"mode":     next.Mode.String(),
		"phase":    next.Phase.String(),
		"hp":       next.Player.HP,
		"potions":  next.Inventory.Potions,
	}).Debug("Command processed.")

	return out, next
}
