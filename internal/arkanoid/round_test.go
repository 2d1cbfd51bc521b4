package arkanoid

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

func TestRoundAwaitsStart(t *testing.T) {
	r := NewRound(testSettings(), 1)

	if r.Phase() != PhaseAwaitingStart {
		t.Fatalf("Phase() = %v, expected %v", r.Phase(), PhaseAwaitingStart)
	}

	rep := r.Step(20)
	if rep.Phase != PhaseAwaitingStart || rep.Frame != 0 {
		t.Errorf("Step before Start = %+v, expected idle report", rep)
	}
}

func TestRoundStart(t *testing.T) {
	r := NewRound(testSettings(), 1)
	if err := r.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if r.Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected %v", r.Phase(), PhasePlaying)
	}
	if r.InitialBricks() != 50 || r.Remaining() != 50 {
		t.Errorf("InitialBricks = %d, Remaining = %d, expected 50", r.InitialBricks(), r.Remaining())
	}
	if r.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", r.Score())
	}

	x, y := r.Ball().Position()
	if x != 20 || y != 6 {
		t.Errorf("ball position = (%v, %v), expected (20, 6)", x, y)
	}
	vx, vy := r.Ball().Velocity()
	if vx != 0.4 || vy != -0.25 {
		t.Errorf("ball velocity = (%v, %v), expected (0.4, -0.25)", vx, vy)
	}
}

func TestRoundStartWhilePlaying(t *testing.T) {
	r := NewRound(testSettings(), 1)
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	if err := r.Start(); !errors.Is(err, ErrRoundInProgress) {
		t.Errorf("second Start error = %v, expected ErrRoundInProgress", err)
	}
}

func TestRoundNoBricksWinsImmediately(t *testing.T) {
	s := testSettings()
	s.FillProbability = 0
	r := NewRound(s, 1)
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}

	rep := r.Step(20)
	if rep.Phase != PhaseRoundEnd {
		t.Fatalf("Phase = %v, expected %v", rep.Phase, PhaseRoundEnd)
	}
	if rep.Outcome != OutcomeWin {
		t.Errorf("Outcome = %v, expected %v", rep.Outcome, OutcomeWin)
	}
	if rep.Frame != 1 {
		t.Errorf("Frame = %d, expected 1", rep.Frame)
	}
	if r.Phase() != PhaseAwaitingStart {
		t.Errorf("Phase() after round end = %v, expected %v", r.Phase(), PhaseAwaitingStart)
	}
}

func TestRoundLoss(t *testing.T) {
	r := NewRound(testSettings(), 1)
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	scoreBefore := r.Score()

	// Ball below the arena, far from the paddle.
	r.ball.Initialize(2, 20.4, 0, 0.25)
	rep := r.Step(36)

	if rep.Phase != PhaseRoundEnd || rep.Outcome != OutcomeLoss {
		t.Fatalf("report = %+v, expected round end with loss", rep)
	}
	if rep.Score != scoreBefore {
		t.Errorf("Score = %d, expected %d", rep.Score, scoreBefore)
	}
	if rep.Remaining != 50 {
		t.Errorf("Remaining = %d, expected 50", rep.Remaining)
	}
	if r.LastOutcome() != OutcomeLoss {
		t.Errorf("LastOutcome() = %v, expected %v", r.LastOutcome(), OutcomeLoss)
	}

	// Idle frames report the last outcome without advancing.
	idle := r.Step(36)
	if idle.Phase != PhaseAwaitingStart || idle.Outcome != OutcomeLoss || idle.Frame != rep.Frame {
		t.Errorf("idle report = %+v, expected awaiting start with loss at frame %d", idle, rep.Frame)
	}

	if err := r.Start(); err != nil {
		t.Errorf("Start after round end failed: %v", err)
	}
}

func TestRoundFirstBrickHit(t *testing.T) {
	r := NewRound(testSettings(), 1)
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}

	// Launched from (20, 6), the ball reaches the bottom brick row on frame 3.
	var rep Report
	for range 3 {
		rep = r.Step(20)
	}

	if rep.Score != 1 || rep.Remaining != 49 {
		t.Errorf("Score = %d, Remaining = %d, expected 1 and 49", rep.Score, rep.Remaining)
	}
	if occupied, _ := r.Grid().Occupied(5, 4); occupied {
		t.Error("brick (5, 4) should be destroyed")
	}
	if _, vy := r.Ball().Velocity(); vy != 0.25 {
		t.Errorf("vy = %v, expected 0.25", vy)
	}
	if rep.Phase != PhasePlaying {
		t.Errorf("Phase = %v, expected %v", rep.Phase, PhasePlaying)
	}
}

func TestRoundWinOnLastBrick(t *testing.T) {
	s := testSettings()
	s.Cols, s.Rows = 1, 1
	r := NewRound(s, 1)
	if err := r.Start(); err != nil {
		t.Fatal(err)
	}

	var rep Report
	for range 2 {
		rep = r.Step(2)
		if rep.Phase != PhasePlaying {
			t.Fatalf("round ended early: %+v", rep)
		}
	}

	rep = r.Step(2)
	if rep.Phase != PhaseRoundEnd || rep.Outcome != OutcomeWin {
		t.Fatalf("report = %+v, expected round end with win", rep)
	}
	if rep.Score != 1 || rep.Remaining != 0 {
		t.Errorf("Score = %d, Remaining = %d, expected 1 and 0", rep.Score, rep.Remaining)
	}
}

func TestRoundInvariantsOverManyFrames(t *testing.T) {
	cfg := config.DefaultArkanoidConfig()
	r := NewRound(SettingsFromConfig(cfg), 2024)
	pointer := NewSimpleRNG(7)
	width := float64(r.Width())

	if err := r.Start(); err != nil {
		t.Fatal(err)
	}
	speed := r.Ball().Speed()
	prevScore := 0
	rounds := 0

	for frame := range 20000 {
		rep := r.Step(pointer.Float64()*(width+10) - 5)

		if rep.Score < prevScore {
			t.Fatalf("frame %d: score decreased from %d to %d", frame, prevScore, rep.Score)
		}
		if rep.Score > rep.InitialBricks {
			t.Fatalf("frame %d: score %d exceeds initial bricks %d", frame, rep.Score, rep.InitialBricks)
		}
		if rep.Score+rep.Remaining != rep.InitialBricks {
			t.Fatalf("frame %d: score %d + remaining %d != initial %d", frame, rep.Score, rep.Remaining, rep.InitialBricks)
		}
		if got := r.Ball().Speed(); got != speed {
			t.Fatalf("frame %d: speed = %v, expected %v", frame, got, speed)
		}

		p := r.Paddle().Bounds()
		if p.X < 0 || p.Right() > width {
			t.Fatalf("frame %d: paddle [%v, %v] outside arena", frame, p.X, p.Right())
		}

		switch rep.Phase {
		case PhasePlaying:
			x, _ := r.Ball().Position()
			radius := r.Ball().Radius()
			if x < radius || x > width-radius {
				t.Fatalf("frame %d: ball x = %v outside walls", frame, x)
			}
			prevScore = rep.Score
		case PhaseRoundEnd:
			if (rep.Outcome == OutcomeWin) != (rep.Score == rep.InitialBricks) {
				t.Fatalf("frame %d: outcome %v with score %d of %d", frame, rep.Outcome, rep.Score, rep.InitialBricks)
			}
			rounds++
			if err := r.Start(); err != nil {
				t.Fatal(err)
			}
			prevScore = 0
		default:
			t.Fatalf("frame %d: unexpected phase %v", frame, rep.Phase)
		}
	}

	if rounds == 0 {
		t.Error("expected at least one round to finish with a random pointer")
	}
}

func TestRoundPaddlePersistsAcrossRounds(t *testing.T) {
	tests := []struct {
		name     string
		center   bool
		expected float64
	}{
		{"persist", false, 4},
		{"center", true, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSettings()
			s.CenterPaddle = tt.center
			r := NewRound(s, 1)
			if err := r.Start(); err != nil {
				t.Fatal(err)
			}

			r.ball.Initialize(30, 25, 0, 0.25)
			if rep := r.Step(0); rep.Outcome != OutcomeLoss {
				t.Fatalf("expected loss, got %+v", rep)
			}

			if err := r.Start(); err != nil {
				t.Fatal(err)
			}
			if got := r.Paddle().X(); got != tt.expected {
				t.Errorf("paddle X = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRoundDeterminism(t *testing.T) {
	run := func() Snapshot {
		r := NewRound(SettingsFromConfig(config.DefaultArkanoidConfig()), 12345)
		if err := r.Start(); err != nil {
			t.Fatal(err)
		}
		for i := range 500 {
			rep := r.Step(float64(i % 64))
			if rep.Phase == PhaseRoundEnd {
				if err := r.Start(); err != nil {
					t.Fatal(err)
				}
			}
		}
		return r.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.DefaultArkanoidConfig()
	cfg.Round.PaddleReset = config.PaddleResetCenter
	s := SettingsFromConfig(cfg)

	if s.Cols != cfg.Playfield.Cols || s.Rows != cfg.Playfield.Rows || s.Height != cfg.Playfield.Height {
		t.Errorf("grid = %dx%d height %d, expected %dx%d height %d",
			s.Cols, s.Rows, s.Height, cfg.Playfield.Cols, cfg.Playfield.Rows, cfg.Playfield.Height)
	}
	if s.Brick.W != cfg.Playfield.BrickWidth || s.Brick.H != cfg.Playfield.BrickHeight {
		t.Errorf("Brick = %+v, expected %dx%d", s.Brick, cfg.Playfield.BrickWidth, cfg.Playfield.BrickHeight)
	}
	if !s.CenterPaddle {
		t.Error("CenterPaddle should be set for the center policy")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseAwaitingStart, "awaiting_start"},
		{PhasePlaying, "playing"},
		{PhaseRoundEnd, "round_end"},
		{Phase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, expected %q", tt.phase, got, tt.expected)
		}
	}
}
