package arkanoid

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '═'
	BallChar   = '●'
	BrickChar  = '█'
)

// Render draws the HUD and the arena to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		minW, minH := g.MinSize()
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	g.renderHUD(dst)
	g.renderWalls(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	if g.round.Phase() == PhasePlaying {
		g.renderBall(dst)
	}
	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws the score, title, and bricks left.
func (g *Game) renderHUD(dst *core.Screen) {
	left := g.offsetX - 1
	right := left + g.round.Width() + 2

	dst.DrawText(left, 0, fmt.Sprintf("Score: %d", g.round.Score()))
	dst.DrawTextCentered(0, "TINY ARKANOID")

	remaining := fmt.Sprintf("Left: %d", g.round.Remaining())
	dst.DrawText(right-len(remaining), 0, remaining)
}

// renderWalls draws the left, top and right walls. The bottom is open.
func (g *Game) renderWalls(dst *core.Screen) {
	left := g.offsetX - 1
	right := g.offsetX + g.round.Width()
	top := g.offsetY - 1

	dst.Set(left, top, '┌')
	dst.Set(right, top, '┐')
	dst.DrawHLine(left+1, top, g.round.Width(), '─')
	for y := g.offsetY; y < g.offsetY+g.round.Height(); y++ {
		dst.Set(left, y, '│')
		dst.Set(right, y, '│')
	}
}

// renderBricks draws every live brick, leaving a one-cell gap on the right
// of wide bricks so neighbours stay distinguishable.
func (g *Game) renderBricks(dst *core.Screen) {
	grid := g.round.Grid()
	brick := grid.Brick()
	drawW := brick.W
	if drawW > 1 {
		drawW--
	}

	for row := range grid.Rows() {
		color := core.BrickPalette[row%len(core.BrickPalette)]
		for col := range grid.Cols() {
			occupied, err := grid.Occupied(col, row)
			if err != nil || !occupied {
				continue
			}
			x := g.offsetX + col*brick.W
			y := g.offsetY + row*brick.H
			for dy := range brick.H {
				for dx := range drawW {
					dst.SetColored(x+dx, y+dy, BrickChar, color)
				}
			}
		}
	}
}

// renderPaddle draws the paddle across the cells it covers.
func (g *Game) renderPaddle(dst *core.Screen) {
	b := g.round.Paddle().Bounds()
	x0, x1 := int(math.Floor(b.X)), int(math.Ceil(b.Right()))
	y0, y1 := int(math.Floor(b.Y)), int(math.Ceil(b.Bottom()))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(g.offsetX+x, g.offsetY+y, PaddleChar, core.ColorWhite)
		}
	}
}

// renderBall draws the ball while it is inside the arena.
func (g *Game) renderBall(dst *core.Screen) {
	x, y := g.round.Ball().Position()
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	if cx < 0 || cx >= g.round.Width() || cy < 0 || cy >= g.round.Height() {
		return
	}
	dst.SetColored(g.offsetX+cx, g.offsetY+cy, BallChar, core.ColorWhite)
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
