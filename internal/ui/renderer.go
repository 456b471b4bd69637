package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cincodedos/internal/game"
	"github.com/samdwyer/cincodedos/internal/gamedata"
)

// Prompt precedes the line being typed.
const Prompt = "> "

// Renderer handles drawing the console to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the HUD on top, the narrative log in the middle and the
// input line at the bottom. The log scrolls so its last rows stay visible.
func (r *Renderer) Render(hud game.HUD, log []string, input string) {
	r.screen.Clear()
	width, height := r.screen.Size()

	top := r.renderHUD(hud, width)

	bottom := height - 1
	rows := make([]string, 0, len(log))
	for _, entry := range log {
		rows = append(rows, Wrap(entry, width)...)
	}
	visible := bottom - top
	if visible < 0 {
		visible = 0
	}
	if len(rows) > visible {
		rows = rows[len(rows)-visible:]
	}

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, row := range rows {
		r.screen.DrawText(0, top+i, row, textStyle)
	}

	r.RenderInput(input, bottom)
	r.screen.Show()
}

// renderHUD draws the status rows and returns the first free row.
func (r *Renderer) renderHUD(hud game.HUD, width int) int {
	label := tcell.StyleDefault.Foreground(tcell.ColorGray)
	value := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	x := r.screen.DrawText(0, 0, fmt.Sprintf("%s (%s)", hud.Name, hud.Class), value)
	x = r.screen.DrawText(x, 0, "  HP ", label)
	x = r.screen.DrawText(x, 0, fmt.Sprintf("%d/%d", hud.HP, hud.MaxHP), hpStyle(hud.HP, hud.MaxHP))
	x = r.screen.DrawText(x, 0, "  Poções ", label)
	x = r.screen.DrawText(x, 0, fmt.Sprint(hud.Potions), value)
	x = r.screen.DrawText(x, 0, "  Ataque ", label)
	r.screen.DrawText(x, 0, fmt.Sprint(hud.Attack), value)

	color, err := gamedata.ParseHexColor(hud.LocationColor)
	if err != nil {
		color = tcell.ColorWhite
	}
	x = r.screen.DrawText(0, 1, hud.Location, tcell.StyleDefault.Foreground(color).Bold(true))
	x = r.screen.DrawText(x, 1, "  Cidades ", label)
	r.screen.DrawText(x, 1, fmt.Sprintf("%d/%d", hud.Liberated, hud.Cities), value)

	row := 2
	if hud.InBattle {
		x = r.screen.DrawText(0, row, "Inimigo ", label)
		x = r.screen.DrawText(x, row, hud.EnemyName, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		r.screen.DrawText(x, row, fmt.Sprintf("  HP %d/%d", hud.EnemyHP, hud.EnemyMaxHP), hpStyle(hud.EnemyHP, hud.EnemyMaxHP))
		row++
	}

	sep := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for i := 0; i < width; i++ {
		r.screen.SetContent(i, row, '─', sep)
	}
	return row + 1
}

// hpStyle colours a health value by how much is left.
func hpStyle(hp, maxHP int) tcell.Style {
	style := tcell.StyleDefault.Bold(true)
	switch {
	case maxHP <= 0 || hp*4 <= maxHP:
		return style.Foreground(tcell.ColorRed)
	case hp*2 <= maxHP:
		return style.Foreground(tcell.ColorYellow)
	default:
		return style.Foreground(tcell.ColorGreen)
	}
}

// RenderInput draws the prompt and the current input line at row y.
func (r *Renderer) RenderInput(input string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	x := r.screen.DrawText(0, y, Prompt, style)
	x = r.screen.DrawText(x, y, input, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.ShowCursor(x, y)
}
