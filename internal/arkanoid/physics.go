package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// CollisionSide indicates which side of the ball made contact.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// ApplyCollisionBounce reflects the velocity component of the contact axis.
func ApplyCollisionBounce(ball *Ball, side CollisionSide) {
	switch side {
	case CollisionTop, CollisionBottom:
		ball.reflectY()
	case CollisionLeft, CollisionRight:
		ball.reflectX()
	}
}

// bounced records which velocity components were already reflected this frame.
// A second reflection on the same axis would cancel the first.
type bounced struct {
	x, y bool
}

func (f *bounced) apply(ball *Ball, side CollisionSide) {
	ApplyCollisionBounce(ball, side)
	switch side {
	case CollisionTop, CollisionBottom:
		f.y = true
	case CollisionLeft, CollisionRight:
		f.x = true
	}
}

func (f *bounced) done(side CollisionSide) bool {
	switch side {
	case CollisionTop, CollisionBottom:
		return f.y
	case CollisionLeft, CollisionRight:
		return f.x
	}
	return false
}

// resolveWalls bounces the ball off the left, right and top edges and
// clamps it back inside the arena.
func (r *Round) resolveWalls(f *bounced) {
	b := &r.ball
	w := float64(r.field.Width())

	switch {
	case b.x-b.radius < 0:
		b.x = b.radius
		f.apply(b, CollisionLeft)
	case b.x+b.radius > w:
		b.x = w - b.radius
		f.apply(b, CollisionRight)
	}

	if b.y-b.radius < 0 {
		b.y = b.radius
		f.apply(b, CollisionTop)
	}
}

// resolvePaddle reflects a descending ball that overlaps the paddle and
// lifts it onto the paddle's top edge. The reflection is flat: the hit
// position does not change the angle.
func (r *Round) resolvePaddle(f *bounced) {
	b := &r.ball
	if f.y || b.vy <= 0 {
		return
	}
	if !b.Bounds().Intersects(r.paddle.Bounds()) {
		return
	}
	b.y = r.paddle.Top() - b.radius
	f.apply(b, CollisionBottom)
}

// resolveBricks destroys at most one brick per frame. Cells overlapped by the
// ball are scanned in row-major order and the first occupied one wins. The
// contact axis is the one with the smaller penetration.
func (r *Round) resolveBricks(f *bounced) {
	col0, row0, col1, row1, ok := r.overlappedCells()
	if !ok {
		return
	}
	bb := r.ball.Bounds()

	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			occupied, err := r.field.Occupied(col, row)
			if err != nil {
				panic(err) // overlappedCells clamps to the grid
			}
			if !occupied {
				continue
			}

			side := contactSide(bb, r.field.CellRect(col, row), &r.ball)
			if f.done(side) {
				return
			}
			if err := r.field.Clear(col, row); err != nil {
				panic(err)
			}
			r.score++
			f.apply(&r.ball, side)
			return
		}
	}
}

// overlappedCells returns the inclusive cell range covered by the ball's
// bounding box, clamped to the grid.
func (r *Round) overlappedCells() (col0, row0, col1, row1 int, ok bool) {
	brick := r.field.Brick()
	if brick.W <= 0 || brick.H <= 0 {
		return 0, 0, 0, 0, false
	}
	bb := r.ball.Bounds()
	bw, bh := float64(brick.W), float64(brick.H)

	col0 = max(int(math.Floor(bb.X/bw)), 0)
	row0 = max(int(math.Floor(bb.Y/bh)), 0)
	col1 = min(int(math.Ceil(bb.Right()/bw))-1, r.field.Cols()-1)
	row1 = min(int(math.Ceil(bb.Bottom()/bh))-1, r.field.Rows()-1)

	return col0, row0, col1, row1, col0 <= col1 && row0 <= row1
}

// contactSide picks the ball side touching the cell. Ties go to the vertical axis.
func contactSide(ballBox, cell core.RectF, ball *Ball) CollisionSide {
	dx, dy := ballBox.Overlap(cell)
	if dx < dy {
		if ball.vx > 0 {
			return CollisionRight
		}
		return CollisionLeft
	}
	if ball.vy > 0 {
		return CollisionBottom
	}
	return CollisionTop
}
