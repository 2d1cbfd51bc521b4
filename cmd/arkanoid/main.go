// arkanoid is a tiny brick breaker for the terminal.
//
// Usage:
//
//	arkanoid play     - Play in the local terminal
//	arkanoid serve    - Start SSH server for remote play
//	arkanoid config   - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for a reproducible brick layout
//	--config <path>       - Custom game config (YAML or TOML)
//	--difficulty <name>   - Preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error (default: warn)
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Tiny Arkanoid - break bricks in your terminal",
	Long: `Tiny Arkanoid is a single-screen brick breaker. Steer the paddle with
the mouse (or the arrow keys), keep the ball in play, and clear every brick.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  arkanoid play
  arkanoid play --difficulty hard --seed 42
  arkanoid serve --ssh :2222
  arkanoid config > ~/.arcade/configs/arkanoid.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger from the global flags.
// The returned closer releases the log file, if any.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.WriteCloser = nopCloser{os.Stderr}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "arkanoid",
	})
	return logger, out, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// loadGameConfig resolves the game configuration from --config and --difficulty.
func loadGameConfig() (config.ArkanoidConfig, error) {
	cfg, err := config.LoadArkanoid(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid game config:\n%w", err)
	}
	return cfg, nil
}
