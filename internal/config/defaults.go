package config

import (
	_ "embed"
)

//go:embed defaults/airhockey.yaml
var defaultAirHockeyYAML []byte

// DefaultConfig returns the classic table configuration.
func DefaultConfig() AirHockeyConfig {
	return AirHockeyConfig{
		Arena: ArenaConfig{
			Width:     800,
			Height:    600,
			GoalWidth: 200,
		},
		Puck: PuckConfig{
			Radius:   20,
			Mass:     5,
			Friction: 0.998,
			MaxSpeed: 15,
		},
		Paddles: PaddlesConfig{
			Radius:      30,
			Mass:        10,
			Speed:       7,
			StartOffset: 100,
			Kick:        2,
		},
		Match: MatchConfig{
			WinningScore:    7,
			SubstepsPerTick: 5,
		},
	}
}
