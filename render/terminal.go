package render

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Screen is the subset of tcell.Screen the terminal sink draws on.
// Callers own Init and Fini.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
	PollEvent() tcell.Event
}

// TerminalOption configures a Terminal.
type TerminalOption func(*terminalConfig)

type terminalConfig struct {
	delay     time.Duration // pause after each visit
	cellWidth int           // screen columns per cell
}

// WithDelay pauses for d after every visit so the search can be watched.
func WithDelay(d time.Duration) TerminalOption {
	return func(c *terminalConfig) {
		if d > 0 {
			c.delay = d
		}
	}
}

// WithCellWidth sets the number of screen columns per grid cell (default 2,
// which makes cells roughly square). Panics if n < 1.
func WithCellWidth(n int) TerminalOption {
	if n < 1 {
		panic("render: WithCellWidth requires n >= 1")
	}
	return func(c *terminalConfig) {
		c.cellWidth = n
	}
}

// Terminal paints a Canvas on a tcell screen and repaints the cells the
// canvas changes.
type Terminal struct {
	screen Screen
	canvas *Canvas
	cfg    terminalConfig
	styles [len(paintColors)]tcell.Style
}

// NewTerminal binds canvas to screen. From now on every canvas change is
// drawn on the screen; call Draw for the initial frame.
func NewTerminal(screen Screen, canvas *Canvas, opts ...TerminalOption) *Terminal {
	cfg := terminalConfig{cellWidth: 2}
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &Terminal{screen: screen, canvas: canvas, cfg: cfg}
	for p := range t.styles {
		t.styles[p] = StyleOf(Paint(p))
	}
	canvas.onChange = t.put
	return t
}

// StyleOf returns the screen style used for paint.
func StyleOf(paint Paint) tcell.Style {
	c := paint.RGBA()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// OnVisit has the search visit-callback signature: it advances the canvas,
// shows the frame and sleeps for the configured delay.
func (t *Terminal) OnVisit(p gridmap.Point) {
	t.canvas.Visit(p)
	t.screen.Show()
	if t.cfg.delay > 0 {
		time.Sleep(t.cfg.delay)
	}
}

// Draw repaints the whole canvas and shows it.
func (t *Terminal) Draw() {
	for y := 0; y < t.canvas.height; y++ {
		for x := 0; x < t.canvas.width; x++ {
			p := gridmap.Point{X: x, Y: y}
			t.put(p, t.canvas.At(p))
		}
	}
	t.screen.Show()
}

// Wait blocks until the user quits with Escape, Ctrl-C or 'q', or the
// screen is finalized. Resize events repaint the canvas.
func (t *Terminal) Wait() {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if IsQuit(ev) {
				return
			}
		case *tcell.EventResize:
			t.Draw()
		}
	}
}

// IsQuit reports whether ev is one of the quit keys.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (t *Terminal) put(p gridmap.Point, paint Paint) {
	style := t.styles[Unvisited]
	if int(paint) < len(t.styles) {
		style = t.styles[paint]
	}
	x0 := p.X * t.cfg.cellWidth
	for dx := 0; dx < t.cfg.cellWidth; dx++ {
		t.screen.SetContent(x0+dx, p.Y, ' ', nil, style)
	}
}
