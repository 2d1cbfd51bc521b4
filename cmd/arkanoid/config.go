package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML after the config search,
--config and --difficulty have been applied.

Search order:
  1. --config <path>
  2. ~/.arcade/configs/arkanoid.{yaml,yml,toml}
  3. ./configs/arkanoid.{yaml,yml,toml}
  4. Built-in defaults

Examples:
  arkanoid config
  arkanoid config --difficulty hard
  arkanoid config > ~/.arcade/configs/arkanoid.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
	return err
}
