package arkanoid

import (
	"errors"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

// ErrRoundInProgress is returned by Start while a round is being played.
var ErrRoundInProgress = errors.New("arkanoid: round already in progress")

// Phase is the round controller state.
type Phase int

const (
	PhaseAwaitingStart Phase = iota // Menu visible, no simulation
	PhasePlaying                    // Simulation running
	PhaseRoundEnd                   // Reported for the frame that ended a round only
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingStart:
		return "awaiting_start"
	case PhasePlaying:
		return "playing"
	case PhaseRoundEnd:
		return "round_end"
	default:
		return "unknown"
	}
}

// Outcome is how a round finished.
type Outcome int

const (
	OutcomeNone Outcome = iota // No round finished yet
	OutcomeWin
	OutcomeLoss
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "none"
	}
}

// Settings are the fixed parameters of every round.
type Settings struct {
	Cols, Rows      int
	Height          int
	Brick           BrickShape
	FillProbability float64

	BallSize float64
	BallVX   float64
	BallVY   float64

	PaddleWidth  float64
	PaddleHeight float64
	CenterPaddle bool // Re-center the paddle when a round starts
}

// SettingsFromConfig converts a game configuration into round settings.
func SettingsFromConfig(cfg config.ArkanoidConfig) Settings {
	return Settings{
		Cols:            cfg.Playfield.Cols,
		Rows:            cfg.Playfield.Rows,
		Height:          cfg.Playfield.Height,
		Brick:           BrickShape{W: cfg.Playfield.BrickWidth, H: cfg.Playfield.BrickHeight},
		FillProbability: cfg.Playfield.FillProbability,
		BallSize:        cfg.Ball.Size,
		BallVX:          cfg.Ball.VX,
		BallVY:          cfg.Ball.VY,
		PaddleWidth:     cfg.Paddle.Width,
		PaddleHeight:    cfg.Paddle.Height,
		CenterPaddle:    cfg.Round.PaddleReset == config.PaddleResetCenter,
	}
}

// Report is the per-frame status handed to the presentation layer.
type Report struct {
	Phase         Phase
	Outcome       Outcome // Set when Phase is PhaseRoundEnd
	Score         int
	InitialBricks int
	Remaining     int
	Frame         uint64
}

// Round is the round controller. It exclusively owns the playfield, ball,
// paddle and score, and advances them one fixed step per frame.
type Round struct {
	settings Settings
	rng      *SimpleRNG
	field    *Playfield
	ball     Ball
	paddle   Paddle

	phase         Phase
	outcome       Outcome // Outcome of the last finished round
	score         int
	initialBricks int
	frame         uint64
}

// NewRound creates a controller awaiting its first start signal.
func NewRound(s Settings, seed int64) *Round {
	rng := NewSimpleRNG(seed)
	field := NewPlayfield(s.Cols, s.Rows, s.Height, s.Brick, rng)
	return &Round{
		settings: s,
		rng:      rng,
		field:    field,
		ball:     NewBall(s.BallSize),
		paddle:   NewPaddle(s.PaddleWidth, s.PaddleHeight, float64(field.Width()), float64(field.Height())),
		phase:    PhaseAwaitingStart,
	}
}

// Start begins a new round: random brick fill, ball at its launch state,
// score reset, initial brick count snapshotted.
func (r *Round) Start() error {
	if r.phase == PhasePlaying {
		return ErrRoundInProgress
	}

	r.initialBricks = r.field.Reset(r.settings.FillProbability)
	r.score = 0
	r.frame = 0

	// Launch from the horizontal center, one ball below the brick area.
	startX := float64(r.field.Width()) / 2
	startY := float64(r.field.Rows()*r.field.Brick().H) + r.settings.BallSize
	r.ball.Initialize(startX, startY, r.settings.BallVX, r.settings.BallVY)

	if r.settings.CenterPaddle {
		r.paddle.Center()
	}

	r.phase = PhasePlaying
	return nil
}

// Step runs one frame: paddle move, ball advance, collisions (walls, paddle,
// bricks), then end-of-round checks. Outside PhasePlaying it only reports.
// The frame that ends a round reports PhaseRoundEnd; the controller itself
// is back in PhaseAwaitingStart when Step returns.
func (r *Round) Step(pointerX float64) Report {
	if r.phase != PhasePlaying {
		return r.report()
	}

	r.frame++
	r.paddle.MoveTo(pointerX)
	r.ball.Advance()

	var f bounced
	r.resolveWalls(&f)
	r.resolvePaddle(&f)
	r.resolveBricks(&f)

	switch {
	case r.score == r.initialBricks:
		r.outcome = OutcomeWin
	case r.ball.HasFallenBelow(float64(r.field.Height())):
		r.outcome = OutcomeLoss
	default:
		return r.report()
	}

	r.phase = PhaseAwaitingStart
	rep := r.report()
	rep.Phase = PhaseRoundEnd
	return rep
}

func (r *Round) report() Report {
	rep := Report{
		Phase:         r.phase,
		Score:         r.score,
		InitialBricks: r.initialBricks,
		Remaining:     r.field.Remaining(),
		Frame:         r.frame,
	}
	if r.phase != PhasePlaying {
		rep.Outcome = r.outcome
	}
	return rep
}

// Phase returns the controller state.
func (r *Round) Phase() Phase { return r.phase }

// LastOutcome returns the outcome of the most recently finished round.
func (r *Round) LastOutcome() Outcome { return r.outcome }

// Score returns the number of bricks destroyed this round.
func (r *Round) Score() int { return r.score }

// InitialBricks returns the brick count at round start.
func (r *Round) InitialBricks() int { return r.initialBricks }

// Remaining returns the live brick count.
func (r *Round) Remaining() int { return r.field.Remaining() }

// Ball returns a copy of the ball state.
func (r *Round) Ball() Ball { return r.ball }

// Paddle returns a copy of the paddle state.
func (r *Round) Paddle() Paddle { return r.paddle }

// Grid returns a read-only view of the bricks.
func (r *Round) Grid() Grid { return r.field }

// Width returns the arena width in cells.
func (r *Round) Width() int { return r.field.Width() }

// Height returns the arena height in cells.
func (r *Round) Height() int { return r.field.Height() }
