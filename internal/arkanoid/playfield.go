// Package arkanoid implements the brick-breaking game core: the brick grid,
// ball and paddle physics, and the round state machine.
package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// BrickShape is the size shared by every brick in the grid.
type BrickShape struct {
	W, H int
}

// OutOfRangeError reports a grid access outside [0,Cols)x[0,Rows).
// Callers convert positions to cells and must clamp first, so this signals a geometry bug.
type OutOfRangeError struct {
	Col, Row   int
	Cols, Rows int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("arkanoid: cell (%d, %d) outside %dx%d grid", e.Col, e.Row, e.Cols, e.Rows)
}

// Grid is a read-only view of the brick grid for rendering.
type Grid interface {
	Cols() int
	Rows() int
	Brick() BrickShape
	Occupied(col, row int) (bool, error)
}

// Playfield owns the brick grid and the arena dimensions.
// Bricks fill the top of the arena; the paddle sits on its bottom edge.
type Playfield struct {
	cols, rows int
	height     int
	brick      BrickShape
	cells      []bool // row-major
	remaining  int
	rng        *SimpleRNG
}

// NewPlayfield creates an empty playfield. Negative sizes are treated as zero.
func NewPlayfield(cols, rows, height int, brick BrickShape, rng *SimpleRNG) *Playfield {
	cols, rows = max(cols, 0), max(rows, 0)
	if rng == nil {
		rng = NewSimpleRNG(1)
	}
	return &Playfield{
		cols:   cols,
		rows:   rows,
		height: max(height, rows*brick.H),
		brick:  brick,
		cells:  make([]bool, cols*rows),
		rng:    rng,
	}
}

// Cols returns the number of brick columns.
func (p *Playfield) Cols() int { return p.cols }

// Rows returns the number of brick rows.
func (p *Playfield) Rows() int { return p.rows }

// Brick returns the shared brick shape.
func (p *Playfield) Brick() BrickShape { return p.brick }

// Width returns the arena width in cells.
func (p *Playfield) Width() int { return p.cols * p.brick.W }

// Height returns the arena height in cells.
func (p *Playfield) Height() int { return p.height }

// Reset clears the grid, then marks each cell occupied independently with
// the given probability. It returns the new brick count.
func (p *Playfield) Reset(fillProbability float64) int {
	fillProbability = core.ClampF(fillProbability, 0, 1)
	p.remaining = 0
	for i := range p.cells {
		p.cells[i] = fillProbability > 0 && p.rng.Float64() < fillProbability
		if p.cells[i] {
			p.remaining++
		}
	}
	return p.remaining
}

// Occupied reports whether the cell holds a brick.
func (p *Playfield) Occupied(col, row int) (bool, error) {
	i, err := p.index(col, row)
	if err != nil {
		return false, err
	}
	return p.cells[i], nil
}

// Clear removes the brick at the cell, if any.
func (p *Playfield) Clear(col, row int) error {
	i, err := p.index(col, row)
	if err != nil {
		return err
	}
	if p.cells[i] {
		p.cells[i] = false
		p.remaining--
	}
	return nil
}

// Remaining returns the live brick count.
func (p *Playfield) Remaining() int {
	return p.remaining
}

// CellRect returns the arena-space box of a cell.
func (p *Playfield) CellRect(col, row int) core.RectF {
	return core.RectF{
		X: float64(col * p.brick.W),
		Y: float64(row * p.brick.H),
		W: float64(p.brick.W),
		H: float64(p.brick.H),
	}
}

func (p *Playfield) index(col, row int) (int, error) {
	if col < 0 || col >= p.cols || row < 0 || row >= p.rows {
		return 0, &OutOfRangeError{Col: col, Row: row, Cols: p.cols, Rows: p.rows}
	}
	return row*p.cols + col, nil
}
