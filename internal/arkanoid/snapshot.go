package arkanoid

import "math"

// Snapshot is the complete simulation state of a round, used for
// determinism checks and debugging.
type Snapshot struct {
	Frame         uint64
	Phase         Phase
	Outcome       Outcome
	Score         int
	InitialBricks int
	Remaining     int

	BallX, BallY   float64
	BallVX, BallVY float64
	PaddleX        float64

	Bricks   []bool // Row-major occupancy
	RNGState uint64
}

// Snapshot captures the current round state.
func (r *Round) Snapshot() Snapshot {
	bricks := make([]bool, len(r.field.cells))
	copy(bricks, r.field.cells)

	return Snapshot{
		Frame:         r.frame,
		Phase:         r.phase,
		Outcome:       r.outcome,
		Score:         r.score,
		InitialBricks: r.initialBricks,
		Remaining:     r.field.Remaining(),
		BallX:         r.ball.x,
		BallY:         r.ball.y,
		BallVX:        r.ball.vx,
		BallVY:        r.ball.vy,
		PaddleX:       r.paddle.x,
		Bricks:        bricks,
		RNGState:      r.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Phase)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.InitialBricks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining)     //#nosec G115 -- hash computation

	for _, v := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX} {
		h = h*31 + math.Float64bits(v)
	}

	for _, alive := range snap.Bricks {
		h *= 31
		if alive {
			h++
		}
	}

	h = h*31 + snap.RNGState

	return h
}
