package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cincodedos/internal/combat"
	"github.com/samdwyer/cincodedos/internal/command"
	"github.com/samdwyer/cincodedos/internal/world"
)

// handleBattle resolves the player's turn: attack, potion, flee or help.
func (e *Engine) handleBattle(ctx context.Context, st *GameState, cmd command.Command) string {
	switch cmd.Intent {
	case command.IntentHelp:
		return st.Menu()
	case command.IntentAttack:
		return e.attack(ctx, st)
	case command.IntentPotion:
		return drinkPotion(st)
	case command.IntentFlee:
		e.endCombat(ctx, st, "flee")
		st.endBattle()
		return "Você fugiu covardemente para a entrada da cidade." + st.Menu()
	default:
		return "Comando inválido em batalha. Use 1, 2 ou 3." + st.Menu()
	}
}

// attack rolls the player's strike and, if the lord survives, winds up its blow.
func (e *Engine) attack(ctx context.Context, st *GameState) string {
	region := st.Region()
	enemy := region.Enemy

	_, span := e.tracer.Start(ctx, "combat.attack")
	defer span.End()

	result := e.resolver.Attack(st.Player.Attack, enemy)
	span.SetAttributes(
		attribute.String("actor", st.Player.Name),
		attribute.String("target", enemy.Name),
		attribute.Int("roll", result.Roll),
		attribute.Int("damage", result.Damage),
	)

	out := fmt.Sprintf("Você atacou! Dado: %d/20.\nDano causado: %d.\nHP do %s: %d/%d",
		result.Roll, result.Damage, enemy.Name, enemy.HP, enemy.MaxHP)

	if result.Defeated {
		return e.winBattle(ctx, st, region, out)
	}

	kind := e.resolver.EnemyWindUp()
	st.Phase = PhaseAwaitingDodge
	st.PendingAttack = kind
	st.PendingDamage = kind.Damage()
	span.SetAttributes(attribute.String("enemy_attack", kind.ID()))

	out += fmt.Sprintf("\n\n⚠️ TURNO DE %s!\nEle prepara um %s (%d dano).",
		strings.ToUpper(enemy.Name), kind, st.PendingDamage)
	return out + st.Menu()
}

// winBattle liberates the region, rolls loot and leaves battle mode.
func (e *Engine) winBattle(ctx context.Context, st *GameState, region *world.Region, out string) string {
	region.Liberated = true
	potions := e.resolver.RollLoot()
	st.Inventory.AddPotions(potions)
	e.endCombat(ctx, st, "victory")
	st.endBattle()

	e.log.WithFields(logrus.Fields{
		"session": st.SessionID,
		"region":  region.Name(),
		"loot":    potions,
	}).Info("Region liberated.")

	if region.IsFinal() {
		st.FinalVictory = true
		return fmt.Sprintf("\nVOCÊ DESTRUIU O QUINTO DEDO!\n%s cai gritando.\nO mundo foi purificado.\n\nFIM DE JOGO.",
			region.Enemy.Name)
	}

	var drop string
	switch potions {
	case 0:
		drop = "Nenhuma poção encontrada."
	case 1:
		drop = "Drop: 1 Poção."
	default:
		drop = fmt.Sprintf("Drop: %d Poções!", potions)
	}

	return fmt.Sprintf("%s\n\n🏆 VITÓRIA!\nVocê libertou %s!\n%s\n(Digite '3' para voltar ao Castelo)",
		out, region.Name(), drop) + st.Menu()
}

// drinkPotion heals the hero without ending the turn.
func drinkPotion(st *GameState) string {
	if !st.Inventory.UsePotion() {
		return "Você não tem poções!" + st.Menu()
	}
	st.Player.Heal(combat.PotionHeal)
	return fmt.Sprintf("Você bebeu uma poção. HP: %d.\n(Ainda é seu turno de atacar)", st.Player.HP) + st.Menu()
}

// handleDodge lands the pending blow, with or without a dodge roll.
func (e *Engine) handleDodge(ctx context.Context, st *GameState, cmd command.Command) string {
	if cmd.Intent == command.IntentHelp {
		return st.Menu()
	}

	region := st.Region()
	enemy := region.Enemy
	kind := st.PendingAttack
	dodge := cmd.Intent == command.IntentDodge

	_, span := e.tracer.Start(ctx, "combat.dodge")
	hit := e.resolver.Land(kind, st.PendingDamage, dodge, enemy, st.Player)
	span.SetAttributes(
		attribute.String("enemy_attack", kind.ID()),
		attribute.Bool("dodged", dodge),
		attribute.Int("roll", hit.Roll),
		attribute.Int("damage", hit.Damage),
		attribute.Int("drained", hit.Drained),
	)
	span.End()
	st.clearPending()

	var msg string
	if dodge {
		msg = fmt.Sprintf("Você tentou esquivar! Dado: %d/20.\nDano reduzido para: %d.", hit.Roll, hit.Damage)
	} else {
		msg = "Você aceitou o golpe de peito aberto!"
	}

	var drain string
	if kind == combat.AttackDrain {
		drain = fmt.Sprintf("\nO demônio drenou sua vida e curou %d HP!", combat.DrainHeal)
	}

	if hit.Fatal {
		st.GameOver = true
		e.endCombat(ctx, st, "defeat")
		e.log.WithFields(logrus.Fields{
			"session": st.SessionID,
			"region":  region.Name(),
			"enemy":   enemy.Name,
		}).Info("Hero defeated.")
		return fmt.Sprintf("%s\n%s\nVocê sofreu dano fatal.\n\n💀 GAME OVER", msg, drain)
	}

	st.Phase = PhasePlayerTurn
	return fmt.Sprintf("%s\n%s\nVocê tem %d HP.\n\nSua vez! O que fará?", msg, drain, st.Player.HP) + st.Menu()
}

// endCombat records how a battle ended.
func (e *Engine) endCombat(ctx context.Context, st *GameState, outcome string) {
	_, span := e.tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("hero_hp_remaining", st.Player.HP),
		attribute.Int("region", st.Location),
	)
	if r := st.Region(); r != nil && r.Enemy != nil {
		span.SetAttributes(attribute.Int("enemy_hp_remaining", r.Enemy.HP))
	}
	span.End()
}
