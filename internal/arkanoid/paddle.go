package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Paddle is the player's bat. Its vertical position is the bottom of the arena.
type Paddle struct {
	x             float64 // Center
	width, height float64
	fieldW        float64
	fieldH        float64
}

// NewPaddle creates a paddle centered in an arena of the given size.
func NewPaddle(width, height, fieldW, fieldH float64) Paddle {
	p := Paddle{width: width, height: height, fieldW: fieldW, fieldH: fieldH}
	p.Center()
	return p
}

// MoveTo centers the paddle on pointerX, clamped so the full width stays
// inside the arena. NaN input is ignored.
func (p *Paddle) MoveTo(pointerX float64) {
	if math.IsNaN(pointerX) {
		return
	}
	lo, hi := p.width/2, p.fieldW-p.width/2
	if lo > hi {
		p.x = p.fieldW / 2
		return
	}
	p.x = core.ClampF(pointerX, lo, hi)
}

// Center moves the paddle to the middle of the arena.
func (p *Paddle) Center() {
	p.x = p.fieldW / 2
}

// X returns the paddle center.
func (p Paddle) X() float64 { return p.x }

// Width returns the paddle width.
func (p Paddle) Width() float64 { return p.width }

// Height returns the paddle height.
func (p Paddle) Height() float64 { return p.height }

// Top returns the y-coordinate of the paddle's upper edge.
func (p Paddle) Top() float64 { return p.fieldH - p.height }

// Bounds returns the paddle's box.
func (p Paddle) Bounds() core.RectF {
	return core.RectF{
		X: p.x - p.width/2,
		Y: p.Top(),
		W: p.width,
		H: p.height,
	}
}
