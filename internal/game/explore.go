package game

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cincodedos/internal/command"
)

// handleHub resolves commands given at the castle.
func (e *Engine) handleHub(st *GameState, cmd command.Command) string {
	switch cmd.Intent {
	case command.IntentHelp:
		return st.Menu()
	case command.IntentStatus:
		return st.statusSheet() + st.Menu()
	case command.IntentTravel:
		return e.travel(st, cmd.Target)
	default:
		return "Comando inválido. Digite o número do destino (ex: 1)." + st.Menu()
	}
}

func (e *Engine) travel(st *GameState, id int) string {
	region, ok := st.World.GetRegion(id)
	if !ok || region.IsHub() {
		return "Destino inválido." + st.Menu()
	}
	if !st.World.CanEnter(region) {
		return fmt.Sprintf("O Portão do Castelo Demoníaco está selado! Liberte as %d cidades primeiro.",
			len(st.World.Cities())) + st.Menu()
	}

	st.Location = region.ID()
	st.endBattle()

	e.log.WithFields(logrus.Fields{
		"session": st.SessionID,
		"region":  region.Name(),
	}).Debug("Travelled.")

	if region.IsFinal() {
		st.Player.SetAttack(st.World.FinalAttack())
		return fmt.Sprintf("Você entra no CASTELO DEMONÍACO. A atmosfera é pesada.\nSeu poder aumentou para enfrentar o mal final (Ataque Base: %d).\n\n\"%s\"\n",
			st.Player.Attack, region.Description()) + st.Menu()
	}
	return fmt.Sprintf("Você viajou para %s.\n\"%s\"\n", region.Name(), region.Description()) + st.Menu()
}

// handleRegion resolves commands given in a city or the final castle.
func (e *Engine) handleRegion(ctx context.Context, st *GameState, cmd command.Command) string {
	region := st.Region()

	switch cmd.Intent {
	case command.IntentHelp:
		return st.Menu()
	case command.IntentStatus:
		return st.shortStatus() + st.Menu()
	case command.IntentTalk:
		return fmt.Sprintf("[%s diz]:\n\"%s\"", region.Def.NPCName, region.Def.NPCLine) + st.Menu()
	case command.IntentConfront:
		if region.Liberated || region.Enemy == nil {
			return "Esta região já está salva. O povo te adora." + st.Menu()
		}
		return e.startBattle(ctx, st)
	case command.IntentReturn:
		st.Location = 0
		st.endBattle()
		return "Você retorna ao Castelo Real para descansar e planejar." + st.Menu()
	default:
		return "Comando inválido." + st.Menu()
	}
}

// startBattle puts the player in front of the region's lord. The lord keeps
// whatever HP it had when the player last fled.
func (e *Engine) startBattle(ctx context.Context, st *GameState) string {
	enemy := st.Region().Enemy

	_, span := e.tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("enemy", enemy.Name),
		attribute.Int("enemy_hp", enemy.HP),
		attribute.Int("hero_hp", st.Player.HP),
		attribute.Int("region", st.Location),
	)
	span.End()

	st.Mode = ModeBattle
	st.Phase = PhasePlayerTurn
	st.clearPending()

	return fmt.Sprintf("⚔️ BATALHA INICIADA ⚔️\nLorde %s aparece!\nHP Inimigo: %d\n", enemy.Name, enemy.HP) + st.Menu()
}
