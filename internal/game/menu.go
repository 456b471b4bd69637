package game

import (
	"fmt"
	"strings"
)

// Fixed replies once the session is over.
const (
	MsgAlreadyDefeated = "Você caiu em combate. Inicie uma nova jornada para tentar de novo."
	MsgAlreadyWon      = "O mundo está salvo! Você é uma lenda."
)

// Menu renders the options available in the current state.
func (s GameState) Menu() string {
	var b strings.Builder
	b.WriteString("\n\nOpções:\n")

	if s.InBattle() {
		if s.Phase == PhaseAwaitingDodge {
			b.WriteString("⚠️ O INIMIGO ATACA! Tentar esquivar? (s/n)\n")
			return b.String()
		}
		b.WriteString("1) Atacar (d20)\n2) Usar Poção\n3) Tentar Fugir\n")
		return b.String()
	}

	if s.Location == 0 {
		b.WriteString("viajar [número] - Escolha um destino:\n")
		for _, r := range s.World.Regions() {
			if !s.World.CanEnter(r) {
				continue
			}
			status := "[DOMINADA]"
			if r.Liberated {
				status = "[LIBERTADA]"
			}
			fmt.Fprintf(&b, "   %d. %s %s\n", r.ID(), r.Name(), status)
		}
		b.WriteString("status - Ver ficha\n")
		b.WriteString("ajuda / ajudar - listar comandos\n")
		return b.String()
	}

	region := s.Region()
	if region == nil {
		return b.String()
	}

	b.WriteString("1) Conversar com Aldeão\n")
	if !region.Liberated && region.Enemy != nil {
		fmt.Fprintf(&b, "2) ENFRENTAR LORDE %s\n", strings.ToUpper(region.Enemy.Name))
	}
	b.WriteString("3) Voltar ao Castelo\n")
	b.WriteString("status - Ver ficha\n")
	b.WriteString("ajuda / ajudar - listar comandos\n")
	return b.String()
}

// Intro is the opening narrative shown when a session starts.
func (s GameState) Intro() string {
	name := "Viajante"
	if s.Player != nil && s.Player.Name != "" {
		name = s.Player.Name
	}
	cities := 0
	if s.World != nil {
		cities = len(s.World.Cities())
	}

	return fmt.Sprintf(`========================================
      AS CRÔNICAS DOS CINCO DEDOS
========================================
Bem-vindo, %s.
O mundo caiu. Cinco Lordes Demoníacos governam as terras.
Você está no Castelo Real, o único lugar seguro.

Sua missão: Viajar para as %d cidades, derrotar os Lordes e liberar o caminho para o Castelo Demoníaco.`,
		name, cities) + s.Menu()
}

// statusSheet renders the character sheet shown at the hub.
func (s GameState) statusSheet() string {
	p := s.Player
	return fmt.Sprintf("[STATUS]\nNome: %s\nClasse: %s\nHP: %d/%d\nAtaque: %d\nPoções: %d\nCidades Libertadas: %d/%d",
		p.Name, p.Class, p.HP, p.MaxHP, p.Attack, s.Inventory.Potions,
		s.World.LiberatedCities(), len(s.World.Cities()))
}

// shortStatus renders the status line shown away from the hub.
func (s GameState) shortStatus() string {
	return fmt.Sprintf("[STATUS]\nHP: %d/%d\nPoções: %d", s.Player.HP, s.Player.MaxHP, s.Inventory.Potions)
}

// HUD holds the values a front-end keeps on screen between commands.
type HUD struct {
	Name          string
	Class         string
	HP, MaxHP     int
	Attack        int
	Potions       int
	Location      string
	LocationColor string // Hex colour of the current region
	InBattle      bool
	EnemyName     string // Set while in battle
	EnemyHP       int
	EnemyMaxHP    int
	Liberated     int
	Cities        int
}

// HUD computes the heads-up display for the current state.
func (s GameState) HUD() HUD {
	var h HUD
	if s.Player != nil {
		h.Name = s.Player.Name
		h.Class = s.Player.Class.String()
		h.HP = s.Player.HP
		h.MaxHP = s.Player.MaxHP
		h.Attack = s.Player.Attack
	}
	h.Potions = s.Inventory.Potions
	h.InBattle = s.InBattle()

	if r := s.Region(); r != nil {
		h.Location = r.Name()
		h.LocationColor = r.Def.Color
		if h.InBattle && r.Enemy != nil {
			h.EnemyName = r.Enemy.Name
			h.EnemyHP = r.Enemy.HP
			h.EnemyMaxHP = r.Enemy.MaxHP
		}
	}
	if s.World != nil {
		h.Liberated = s.World.LiberatedCities()
		h.Cities = len(s.World.Cities())
	}
	return h
}
