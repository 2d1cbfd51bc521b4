package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the hardcoded default configuration.
// It mirrors defaults/arkanoid.yaml and is used if the embedded file cannot be parsed.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Playfield: PlayfieldConfig{
			Cols:            16,
			Rows:            6,
			Height:          22,
			BrickWidth:      4,
			BrickHeight:     1,
			FillProbability: 0.6,
		},
		Ball: BallConfig{
			Size: 1,
			VX:   0.4,
			VY:   -0.25,
		},
		Paddle: PaddleConfig{
			Width:  9,
			Height: 1,
		},
		Round: RoundConfig{
			PaddleReset: PaddleResetPersist,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
