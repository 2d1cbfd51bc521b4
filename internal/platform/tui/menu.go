package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// MenuItem is an entry of the start menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuExit
)

// String returns the label shown in the menu.
func (i MenuItem) String() string {
	switch i {
	case MenuStart:
		return "Start"
	case MenuExit:
		return "Exit"
	default:
		return "?"
	}
}

// Menu is shown whenever no round is being played. It lists Start and Exit
// and the result of the previous round, if any.
type Menu struct {
	items  []MenuItem
	cursor int
	footer string

	outcome arkanoid.Outcome
	score   int
	total   int
}

// menu box rows, relative to the top border
const (
	menuTitleRow  = 1
	menuResultRow = 2
	menuItemsRow  = 4
)

// NewMenu creates a menu with the cursor on Start.
func NewMenu(footer string) *Menu {
	return &Menu{
		items:  []MenuItem{MenuStart, MenuExit},
		footer: footer,
	}
}

// Up moves the cursor to the previous item.
func (m *Menu) Up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// Down moves the cursor to the next item.
func (m *Menu) Down() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

// Selected returns the item under the cursor.
func (m *Menu) Selected() MenuItem {
	return m.items[m.cursor]
}

// SetResult records a finished round and puts the cursor back on Start.
func (m *Menu) SetResult(rep arkanoid.Report) {
	m.outcome = rep.Outcome
	m.score = rep.Score
	m.total = rep.InitialBricks
	m.cursor = 0
}

// resultLine describes the previous round.
func (m *Menu) resultLine() (string, core.Color) {
	switch m.outcome {
	case arkanoid.OutcomeWin:
		return fmt.Sprintf("YOU WIN!  %d/%d bricks", m.score, m.total), core.ColorGreen
	case arkanoid.OutcomeLoss:
		return fmt.Sprintf("GAME OVER  %d/%d bricks", m.score, m.total), core.ColorRed
	default:
		return "Clear every brick to win", core.ColorGray
	}
}

// layout returns the menu box centered on a w x h screen.
func (m *Menu) layout(w, h int) core.Rect {
	result, _ := m.resultLine()
	inner := max(len([]rune(result)), len([]rune(m.footer)), len("TINY ARKANOID"))
	boxW := inner + 4
	boxH := menuItemsRow + len(m.items) + 3
	return core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)
}

// ItemAt returns the item drawn at screen cell (x, y), if any.
func (m *Menu) ItemAt(x, y, w, h int) (MenuItem, bool) {
	box := m.layout(w, h)
	if x <= box.X || x >= box.Right()-1 {
		return 0, false
	}
	i := y - box.Y - menuItemsRow
	if i < 0 || i >= len(m.items) {
		return 0, false
	}
	return m.items[i], true
}

// Render draws the menu box over the screen.
func (m *Menu) Render(dst *core.Screen) {
	box := m.layout(dst.Width(), dst.Height())
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	center := func(row int, text string, c core.Color) {
		x := box.X + (box.W-len([]rune(text)))/2
		dst.DrawTextColored(x, box.Y+row, text, c)
	}

	center(menuTitleRow, "TINY ARKANOID", core.ColorCyan)
	result, color := m.resultLine()
	center(menuResultRow, result, color)

	for i, item := range m.items {
		label := "  " + item.String() + "  "
		color := core.ColorDefault
		if i == m.cursor {
			label = "> " + item.String() + " <"
			color = core.ColorYellow
		}
		center(menuItemsRow+i, label, color)
	}

	center(box.H-2, m.footer, core.ColorGray)
}
