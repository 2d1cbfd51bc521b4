package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Model is the Bubble Tea model for one game session: the arena, the start
// menu over it between rounds, and the input sampled for the next tick.
type Model struct {
	game       *arkanoid.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	menu       *Menu
	inputFrame core.InputFrame
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a model for the game and resets it to await the first start.
// A nil logger discards output.
func NewModel(game *arkanoid.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       keys,
		menu:       NewMenu(helpLine(keys)),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// helpLine renders the short help as plain text so it can be drawn into the screen buffer.
func helpLine(keys KeyMap) string {
	h := help.New()
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	return h.ShortHelpView(keys.ShortHelp())
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// inMenu reports whether the start menu is shown.
func (m Model) inMenu() bool {
	return m.game.Round().Phase() != arkanoid.PhasePlaying
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.inMenu() {
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			return m.quit()
		}
		return m, nil
	}

	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m.quit()
	case MenuActionUp:
		m.menu.Up()
	case MenuActionDown:
		m.menu.Down()
	case MenuActionSelect:
		return m.activate(m.menu.Selected())
	}
	return m, nil
}

// handleMouse samples the pointer column and handles clicks on the menu.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.SetPointer(float64(msg.X))

	if !m.inMenu() || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if item, ok := m.menu.ItemAt(msg.X, msg.Y, m.screen.Width(), m.screen.Height()); ok {
		return m.activate(item)
	}
	return m, nil
}

// activate runs a menu item.
func (m Model) activate(item MenuItem) (tea.Model, tea.Cmd) {
	switch item {
	case MenuExit:
		return m.quit()
	case MenuStart:
		if err := m.game.Start(); err != nil {
			m.logger.Warn("could not start round", "error", err)
			return m, nil
		}
		m.logger.Debug("round started", "bricks", m.game.Round().InitialBricks())
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// handleResize processes window resize events. The round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	rep := m.game.Step(m.inputFrame)
	if rep.Phase == arkanoid.PhaseRoundEnd {
		m.menu.SetResult(rep)
		m.logger.Debug("round ended",
			"outcome", rep.Outcome,
			"score", rep.Score,
			"bricks", rep.InitialBricks,
			"frames", rep.Frame,
		)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.inMenu() && !m.game.ScreenTooSmall() {
		m.menu.Render(m.screen)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the game in the local terminal.
func Run(game *arkanoid.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer position without a pressed button
	)

	_, err := p.Run()
	return err
}
