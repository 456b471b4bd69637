package main

import (
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cincodedos/internal/entity"
	"github.com/samdwyer/cincodedos/internal/game"
	"github.com/samdwyer/cincodedos/internal/telemetry"
)

func TestRunAttributesCarryGeneratedSeed(t *testing.T) {
	engine, err := game.New(game.Config{}, game.WithTracer(telemetry.NoopTracer()))
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}

	got := make(map[attribute.Key]attribute.Value)
	for _, kv := range runAttributes(engine, entity.ClassElf) {
		got[kv.Key] = kv.Value
	}

	seed := got["game.seed"].AsInt64()
	if seed == 0 || seed != engine.Seed() {
		t.Errorf("game.seed = %d, want engine seed %d", seed, engine.Seed())
	}
	if v := got["game.class"].AsString(); v != "elf" {
		t.Errorf("game.class = %q, want %q", v, "elf")
	}
}
