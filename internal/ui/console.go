package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cincodedos/internal/game"
)

// maxLog bounds how many narrative entries the console keeps.
const maxLog = 200

// Console is the interactive front-end: it reads a line of input, hands it
// to the session and shows the reply with the updated HUD.
type Console struct {
	screen   *Screen
	renderer *Renderer
	session  *game.Session
	input    []rune
	log      []string
	running  bool
}

// NewConsole creates a console for a session on the given screen.
func NewConsole(screen *Screen, session *game.Session) *Console {
	return &Console{
		screen:   screen,
		renderer: NewRenderer(screen),
		session:  session,
		running:  true,
	}
}

// Run executes the input loop until the player quits with Esc or Ctrl+C.
// The screen is left open; the caller closes it.
func (c *Console) Run(ctx context.Context) error {
	c.appendLog(c.session.Intro())

	for c.running {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.renderer.Render(c.session.HUD(), c.log, string(c.input))
		c.handleInput(ctx)
	}
	return nil
}

// Log returns the narrative shown so far.
func (c *Console) Log() []string { return c.log }

// handleInput processes a single input event.
func (c *Console) handleInput(ctx context.Context) {
	ev := c.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		c.screen.Sync()
	case nil:
		// Screen finalized.
		c.running = false
	}
}

// handleKeyEvent edits the input line or submits it.
func (c *Console) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.running = false
	case tcell.KeyEnter:
		c.submit(ctx)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(c.input); n > 0 {
			c.input = c.input[:n-1]
		}
	case tcell.KeyCtrlU:
		c.input = c.input[:0]
	case tcell.KeyRune:
		c.input = append(c.input, ev.Rune())
	}
}

func (c *Console) submit(ctx context.Context) {
	line := string(c.input)
	c.input = c.input[:0]

	c.appendLog(Prompt + line)
	c.appendLog(c.session.Submit(ctx, line))
	if c.session.Over() {
		c.appendLog("(Esc para sair)")
	}
}

func (c *Console) appendLog(entry string) {
	c.log = append(c.log, entry)
	if len(c.log) > maxLog {
		c.log = c.log[len(c.log)-maxLog:]
	}
}
