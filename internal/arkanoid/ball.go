package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// FixedStep is the simulation step per frame. Velocities are in cells per tick.
const FixedStep = 1.0

// Ball is a square sprite moving with constant speed.
// Its velocity only changes by sign flips, so the speed never drifts.
type Ball struct {
	x, y   float64 // Center
	vx, vy float64
	radius float64
}

// NewBall creates a ball whose radius is half its sprite size.
func NewBall(size float64) Ball {
	return Ball{radius: size / 2}
}

// Initialize places the ball at its start state.
func (b *Ball) Initialize(x, y, vx, vy float64) {
	b.x, b.y = x, y
	b.vx, b.vy = vx, vy
}

// Advance integrates one fixed step.
func (b *Ball) Advance() {
	b.x += b.vx * FixedStep
	b.y += b.vy * FixedStep
}

// HasFallenBelow reports whether the ball's top edge is past the bottom boundary.
func (b Ball) HasFallenBelow(height float64) bool {
	return b.y-b.radius > height
}

// Position returns the ball center.
func (b Ball) Position() (x, y float64) { return b.x, b.y }

// Velocity returns the velocity in cells per tick.
func (b Ball) Velocity() (vx, vy float64) { return b.vx, b.vy }

// Radius returns half the sprite size.
func (b Ball) Radius() float64 { return b.radius }

// Speed returns the velocity magnitude.
func (b Ball) Speed() float64 {
	return math.Hypot(b.vx, b.vy)
}

// Bounds returns the ball's bounding box.
func (b Ball) Bounds() core.RectF {
	return core.RectF{
		X: b.x - b.radius,
		Y: b.y - b.radius,
		W: 2 * b.radius,
		H: 2 * b.radius,
	}
}

func (b *Ball) reflectX() { b.vx = -b.vx }

func (b *Ball) reflectY() { b.vy = -b.vy }
