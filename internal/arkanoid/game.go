package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// KeyNudge is how far one Left/Right action moves the pointer, in cells.
const KeyNudge = 2.0

// Game adapts a Round to the terminal: it maps screen input into arena
// space, handles pause, and draws the arena centered on the screen.
type Game struct {
	cfg     config.ArkanoidConfig
	runtime core.RuntimeConfig
	round   *Round

	pointerX float64 // Arena space
	paused   bool
	last     Report

	// Layout (computed from screen size)
	offsetX, offsetY int // Screen cell of arena (0, 0)
	screenTooSmall   bool
}

// New creates a game with the given configuration. Call Reset before use.
func New(cfg config.ArkanoidConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "arkanoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tiny Arkanoid"
}

// Reset builds a fresh round controller awaiting its first start.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.round = NewRound(SettingsFromConfig(g.cfg), runtime.Seed)
	g.pointerX = float64(g.round.Width()) / 2
	g.paused = false
	g.last = g.round.report()
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize recomputes the layout for a new screen size.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h

	minW, minH := g.MinSize()
	g.screenTooSmall = w < minW || h < minH

	// Row 0 is the HUD, row 1 the top wall. The bottom stays open.
	g.offsetX = (w-minW)/2 + 1
	g.offsetY = 2
}

// MinSize returns the smallest screen that fits the arena and its walls.
func (g *Game) MinSize() (w, h int) {
	return g.round.Width() + 2, g.round.Height() + 2
}

// ScreenTooSmall reports whether the arena does not fit the screen.
func (g *Game) ScreenTooSmall() bool {
	return g.screenTooSmall
}

// Start begins a new round.
func (g *Game) Start() error {
	if err := g.round.Start(); err != nil {
		return err
	}
	g.paused = false
	g.last = g.round.report()
	return nil
}

// Step applies one frame of input and advances the round.
func (g *Game) Step(in core.InputFrame) Report {
	if g.screenTooSmall {
		return g.last
	}

	if in.Has(core.ActionPause) && g.round.Phase() == PhasePlaying {
		g.paused = !g.paused
	}

	g.updatePointer(in)

	if g.paused {
		return g.last
	}

	g.last = g.round.Step(g.pointerX)
	return g.last
}

// updatePointer moves the arena pointer from mouse motion or key nudges.
func (g *Game) updatePointer(in core.InputFrame) {
	if g.paused {
		return
	}
	if in.HasPointer {
		g.pointerX = g.ScreenToArena(in.PointerX)
	}
	if in.Has(core.ActionLeft) {
		g.pointerX -= KeyNudge
	}
	if in.Has(core.ActionRight) {
		g.pointerX += KeyNudge
	}
	g.pointerX = core.ClampF(g.pointerX, 0, float64(g.round.Width()))
}

// ScreenToArena converts a screen column to an arena x-coordinate at the
// center of that column.
func (g *Game) ScreenToArena(screenX float64) float64 {
	if math.IsNaN(screenX) {
		return g.pointerX
	}
	return screenX - float64(g.offsetX) + 0.5
}

// Paused reports whether the simulation is suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// Last returns the most recent frame report.
func (g *Game) Last() Report {
	return g.last
}

// Round returns the round controller.
func (g *Game) Round() *Round {
	return g.round
}

// Snapshot captures the round state.
func (g *Game) Snapshot() Snapshot {
	return g.round.Snapshot()
}
