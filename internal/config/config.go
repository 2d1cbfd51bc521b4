// Package config provides YAML/TOML game configuration loading and
// difficulty presets for the arkanoid game.
package config

// ArkanoidConfig contains all configuration for the game.
type ArkanoidConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield" toml:"playfield"`
	Ball      BallConfig      `yaml:"ball" toml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle" toml:"paddle"`
	Round     RoundConfig     `yaml:"round" toml:"round"`
}

// PlayfieldConfig defines the brick grid and arena size, in terminal cells.
type PlayfieldConfig struct {
	Cols            int     `yaml:"cols" toml:"cols"`
	Rows            int     `yaml:"rows" toml:"rows"`
	Height          int     `yaml:"height" toml:"height"` // Arena height including the brick area
	BrickWidth      int     `yaml:"brick_width" toml:"brick_width"`
	BrickHeight     int     `yaml:"brick_height" toml:"brick_height"`
	FillProbability float64 `yaml:"fill_probability" toml:"fill_probability"`
}

// BallConfig defines the ball sprite and its launch velocity (cells per tick).
type BallConfig struct {
	Size float64 `yaml:"size" toml:"size"`
	VX   float64 `yaml:"vx" toml:"vx"`
	VY   float64 `yaml:"vy" toml:"vy"`
}

// PaddleConfig defines the paddle size in cells.
type PaddleConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// RoundConfig defines behavior between rounds.
type RoundConfig struct {
	PaddleReset string `yaml:"paddle_reset" toml:"paddle_reset"` // "persist" or "center"
}

// Paddle reset policies.
const (
	PaddleResetPersist = "persist"
	PaddleResetCenter  = "center"
)

// Width returns the arena width in cells.
func (c PlayfieldConfig) Width() int {
	return c.Cols * c.BrickWidth
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset.
// Unknown or empty values map to the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset adjusts fill density, ball speed and paddle width for a preset.
// Velocity signs are preserved; only the magnitude is scaled.
func ApplyPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Playfield.FillProbability = 0.4
		cfg.Paddle.Width += 4
		scaleVelocity(&cfg.Ball, 0.75)
	case DifficultyHard:
		cfg.Playfield.FillProbability = 0.85
		cfg.Paddle.Width = max(cfg.Paddle.Width-2, 3)
		scaleVelocity(&cfg.Ball, 1.3)
	}
}

func scaleVelocity(b *BallConfig, k float64) {
	b.VX *= k
	b.VY *= k
}
