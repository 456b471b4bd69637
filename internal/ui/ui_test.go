package ui

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/cincodedos/internal/combat"
	"github.com/samdwyer/cincodedos/internal/entity"
	"github.com/samdwyer/cincodedos/internal/game"
	"github.com/samdwyer/cincodedos/internal/gamedata"
	"github.com/samdwyer/cincodedos/internal/telemetry"
	"github.com/samdwyer/cincodedos/internal/world"
)

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(screen.Close)
	return sim, screen
}

func newTestSession(t *testing.T) *game.Session {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	engine, err := game.New(game.Config{Seed: 1},
		game.WithRoller(&combat.ScriptedRoller{Dice: []int{20}}),
		game.WithTracer(telemetry.NoopTracer()),
		game.WithLogger(log),
	)
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}
	st, err := game.NewGameFrom(gamedata.MustLoadClassRegistry(), world.Default(context.Background()), "Arthur", entity.ClassKnight)
	if err != nil {
		t.Fatalf("NewGameFrom() error = %v", err)
	}
	return game.NewSession(engine, st)
}

// rowText reads back one screen row.
func rowText(sim tcell.SimulationScreen, y int) string {
	width, _ := sim.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, comb, _, w := sim.GetContent(x, y)
		b.WriteRune(r)
		for _, c := range comb {
			b.WriteRune(c)
		}
		if w > 1 {
			x += w - 1
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"curto", 10, []string{"curto"}},
		{"aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"aaa bbb", 5, []string{"aaa", "bbb"}},
		{"abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"um\ndois", 10, []string{"um", "dois"}},
		{"poção poção", 5, []string{"poção", "poção"}},
		{"x", 0, nil},
	}

	for _, tt := range tests {
		got := Wrap(tt.text, tt.width)
		if len(got) != len(tt.want) {
			t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Wrap(%q, %d)[%d] = %q, want %q", tt.text, tt.width, i, got[i], tt.want[i])
			}
		}
	}
}

func TestRendererDrawsHUDAndLog(t *testing.T) {
	sim, screen := newSimScreen(t)
	r := NewRenderer(screen)

	hud := game.HUD{
		Name: "Arthur", Class: "Cavaleiro", HP: 90, MaxHP: 120, Attack: 30, Potions: 2,
		Location: "Porto Brumal", LocationColor: "#87CEEB",
		InBattle: true, EnemyName: "Nerith", EnemyHP: 60, EnemyMaxHP: 120,
		Liberated: 1, Cities: 4,
	}
	r.Render(hud, []string{"primeira linha", "segunda\nterceira"}, "atac")

	if got := rowText(sim, 0); !strings.Contains(got, "Arthur (Cavaleiro)") || !strings.Contains(got, "HP 90/120") {
		t.Errorf("row 0 = %q", got)
	}
	if got := rowText(sim, 1); !strings.HasPrefix(got, "Porto Brumal") || !strings.Contains(got, "Cidades 1/4") {
		t.Errorf("row 1 = %q", got)
	}
	if got := rowText(sim, 2); !strings.Contains(got, "Inimigo Nerith") || !strings.Contains(got, "HP 60/120") {
		t.Errorf("row 2 = %q", got)
	}

	_, _, style, _ := sim.GetContent(0, 1)
	fg, _, _ := style.Decompose()
	if fg != tcell.NewHexColor(0x87CEEB) {
		t.Errorf("location colour = %v, want #87CEEB", fg)
	}

	if got := rowText(sim, 4); got != "primeira linha" {
		t.Errorf("row 4 = %q, want first log entry", got)
	}
	if got := rowText(sim, 6); got != "terceira" {
		t.Errorf("row 6 = %q, want wrapped log entry", got)
	}
	if got := rowText(sim, 23); got != "> atac" {
		t.Errorf("input row = %q, want %q", got, "> atac")
	}
}

func TestRendererScrollsLog(t *testing.T) {
	sim, screen := newSimScreen(t)
	r := NewRenderer(screen)

	var log []string
	for i := 0; i < 50; i++ {
		log = append(log, strings.Repeat("x", i%5+1))
	}
	log = append(log, "ultima")
	r.Render(game.HUD{Name: "A"}, log, "")

	if got := rowText(sim, 22); got != "ultima" {
		t.Errorf("row above input = %q, want last log entry", got)
	}
}

func TestConsoleSubmitsLines(t *testing.T) {
	sim, screen := newSimScreen(t)
	session := newTestSession(t)
	c := NewConsole(screen, session)

	sim.InjectKey(tcell.KeyRune, '1', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := session.State().Location; got != 1 {
		t.Errorf("Location = %d, want 1", got)
	}
	log := c.Log()
	if len(log) != 3 {
		t.Fatalf("log has %d entries, want intro, echo and reply", len(log))
	}
	if log[1] != "> 1" {
		t.Errorf("echo = %q, want %q", log[1], "> 1")
	}
	if !strings.HasPrefix(log[2], "Você viajou para Vila Lúminia.") {
		t.Errorf("reply = %q", log[2])
	}
}
