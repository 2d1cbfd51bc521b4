package arkanoid

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultArkanoidConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
	return g
}

func TestGameIdentity(t *testing.T) {
	g := newTestGame(t)
	if g.ID() != "arkanoid" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "arkanoid")
	}
	if g.Title() != "Tiny Arkanoid" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Tiny Arkanoid")
	}
}

func TestGameLayout(t *testing.T) {
	g := newTestGame(t)

	w, h := g.MinSize()
	if w != 66 || h != 24 {
		t.Errorf("MinSize() = %dx%d, expected 66x24", w, h)
	}
	if g.ScreenTooSmall() {
		t.Error("80x24 should fit the default arena")
	}

	tests := []struct {
		screenX  float64
		expected float64
	}{
		{8, 0.5},
		{9, 1.5},
		{71, 63.5},
	}
	for _, tt := range tests {
		if got := g.ScreenToArena(tt.screenX); got != tt.expected {
			t.Errorf("ScreenToArena(%v) = %v, expected %v", tt.screenX, got, tt.expected)
		}
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New(config.DefaultArkanoidConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})

	if !g.ScreenTooSmall() {
		t.Fatal("40x10 should be too small")
	}
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	rep := g.Step(core.NewInputFrame())
	if rep.Frame != 0 {
		t.Errorf("Frame = %d, expected the simulation to hold", rep.Frame)
	}

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small message")
	}

	g.Resize(80, 24)
	if g.ScreenTooSmall() {
		t.Error("80x24 should fit after resize")
	}
}

func TestGamePointerMovesPaddle(t *testing.T) {
	g := newTestGame(t)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	in := core.NewInputFrame()
	in.SetPointer(18)
	g.Step(in)

	if got := g.Round().Paddle().X(); got != 10.5 {
		t.Errorf("paddle X = %v, expected 10.5", got)
	}

	// Without new pointer input the paddle stays put.
	g.Step(core.NewInputFrame())
	if got := g.Round().Paddle().X(); got != 10.5 {
		t.Errorf("paddle X = %v, expected 10.5", got)
	}
}

func TestGameKeyNudge(t *testing.T) {
	g := newTestGame(t)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	g.Step(left)
	if got := g.Round().Paddle().X(); got != 30 {
		t.Errorf("paddle X = %v, expected 30", got)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	g.Step(right)
	g.Step(right)
	if got := g.Round().Paddle().X(); got != 34 {
		t.Errorf("paddle X = %v, expected 34", got)
	}

	for range 100 {
		g.Step(left)
		if g.Round().Phase() != PhasePlaying {
			break
		}
	}
	if got := g.Round().Paddle().X(); got != 4.5 {
		t.Errorf("paddle X = %v, expected clamped 4.5", got)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.Paused() {
		t.Fatal("expected paused")
	}

	rep := g.Step(core.NewInputFrame())
	if rep.Frame != 0 {
		t.Errorf("Frame = %d while paused, expected 0", rep.Frame)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("expected pause overlay")
	}

	rep = g.Step(pause)
	if g.Paused() {
		t.Fatal("expected resumed")
	}
	if rep.Frame != 1 {
		t.Errorf("Frame = %d after resume, expected 1", rep.Frame)
	}
}

func TestGamePauseIgnoredWhileAwaitingStart(t *testing.T) {
	g := newTestGame(t)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if g.Paused() {
		t.Error("pause should only apply during play")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{
		"Score: 0",
		"TINY ARKANOID",
		fmt.Sprintf("Left: %d", g.Round().Remaining()),
	} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	if got := screen.Get(7, 1); got != '┌' {
		t.Errorf("top-left wall = %q, expected '┌'", got)
	}
	if got := screen.Get(72, 1); got != '┐' {
		t.Errorf("top-right wall = %q, expected '┐'", got)
	}

	// The paddle sits on the bottom row of the arena.
	if !strings.ContainsRune(screen.Row(23), PaddleChar) {
		t.Errorf("bottom row %q missing paddle", screen.Row(23))
	}

	x, y := g.Round().Ball().Position()
	if got := screen.Get(8+int(x), 2+int(y)); got != BallChar {
		t.Errorf("ball cell = %q, expected %q", got, BallChar)
	}

	bricks := 0
	for row := 2; row < 2+6; row++ {
		for col := 8; col < 8+64; col++ {
			cell := screen.GetCell(col, row)
			if cell.Rune == BrickChar {
				bricks++
				if cell.Color == core.ColorDefault {
					t.Fatalf("brick at (%d, %d) has no color", col, row)
				}
			}
		}
	}
	if want := g.Round().Remaining() * 3; bricks != want {
		t.Errorf("brick cells = %d, expected %d", bricks, want)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%7 < 3:
			inputs[i].Set(core.ActionRight)
		case i%11 == 0:
			inputs[i].SetPointer(float64(10 + i%50))
		default:
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t)
		if err := g.Start(); err != nil {
			t.Fatal(err)
		}
		for _, in := range inputs {
			if rep := g.Step(in); rep.Phase == PhaseRoundEnd {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}
