package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Mouse          - Move the paddle / click a menu item
  Left/Right     - Move the paddle (also h/l, a/d)
  Enter/Space    - Select menu item
  P/Esc          - Pause
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Fewer bricks, slower ball, wider paddle
  normal - Configured values
  hard   - Dense wall, faster ball, narrower paddle

Examples:
  arkanoid play
  arkanoid play --difficulty easy
  arkanoid play --config ./my-arkanoid.toml
  arkanoid play --log-level debug --log-file arkanoid.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Nothing useful to do on close failure

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Debug("starting local game",
		"screen", fmt.Sprintf("%dx%d", width, height),
		"fps", flagFPS,
		"seed", flagSeed,
	)

	if err := tui.Run(arkanoid.New(gameCfg), cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
