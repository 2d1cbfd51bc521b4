package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate reports every problem with the configuration.
// A valid config guarantees the ball cannot skip over a brick or the paddle
// in a single tick and that the launch position lies between bricks and paddle.
func (c ArkanoidConfig) Validate() error {
	var errs []error
	p := c.Playfield

	if p.Cols <= 0 || p.Rows <= 0 {
		errs = append(errs, fmt.Errorf("config: grid must be at least 1x1, got %dx%d", p.Cols, p.Rows))
	}
	if p.BrickWidth <= 0 || p.BrickHeight <= 0 {
		errs = append(errs, fmt.Errorf("config: brick size must be positive, got %dx%d", p.BrickWidth, p.BrickHeight))
	}
	if p.FillProbability < 0 || p.FillProbability > 1 || math.IsNaN(p.FillProbability) {
		errs = append(errs, fmt.Errorf("config: fill_probability must be in [0, 1], got %v", p.FillProbability))
	}
	if c.Ball.Size <= 0 {
		errs = append(errs, fmt.Errorf("config: ball size must be positive, got %v", c.Ball.Size))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > float64(p.Width()) {
		errs = append(errs, fmt.Errorf("config: paddle width %v exceeds playfield width %d", c.Paddle.Width, p.Width()))
	}
	if c.Ball.VX == 0 || c.Ball.VY == 0 {
		errs = append(errs, fmt.Errorf("config: ball velocity components must be non-zero, got (%v, %v)", c.Ball.VX, c.Ball.VY))
	}

	maxVY := min(c.Ball.Size, float64(p.BrickHeight), c.Paddle.Height)
	if math.Abs(c.Ball.VX) > c.Ball.Size || math.Abs(c.Ball.VY) > maxVY {
		errs = append(errs, fmt.Errorf("config: ball velocity (%v, %v) too fast for its size", c.Ball.VX, c.Ball.VY))
	}

	minHeight := float64(p.Rows*p.BrickHeight) + 2*c.Ball.Size + c.Paddle.Height
	if float64(p.Height) < minHeight {
		errs = append(errs, fmt.Errorf("config: playfield height %d too small, need at least %v", p.Height, minHeight))
	}

	switch c.Round.PaddleReset {
	case "", PaddleResetPersist, PaddleResetCenter:
	default:
		errs = append(errs, fmt.Errorf("config: unknown paddle_reset %q", c.Round.PaddleReset))
	}

	return errors.Join(errs...)
}
