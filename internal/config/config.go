// Package config provides YAML-based table configuration and rule presets
// for air hockey matches.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-airhockey/internal/match"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// AirHockeyConfig contains all configuration for an air hockey match.
type AirHockeyConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Puck    PuckConfig    `yaml:"puck"`
	Paddles PaddlesConfig `yaml:"paddles"`
	Match   MatchConfig   `yaml:"match"`
}

// ArenaConfig defines the rink dimensions in arena units.
type ArenaConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	GoalWidth float64 `yaml:"goal_width"`
}

// PuckConfig defines the puck body and its motion limits.
type PuckConfig struct {
	Radius   float64 `yaml:"radius"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`  // velocity multiplier applied once per tick
	MaxSpeed float64 `yaml:"max_speed"` // units per tick
}

// PaddlesConfig defines both paddles. They are always identical.
type PaddlesConfig struct {
	Radius      float64 `yaml:"radius"`
	Mass        float64 `yaml:"mass"`
	Speed       float64 `yaml:"speed"`        // units per tick per axis
	StartOffset float64 `yaml:"start_offset"` // distance from each end wall
	Kick        float64 `yaml:"kick"`         // speed added on contact
}

// MatchConfig defines scoring and simulation rate.
type MatchConfig struct {
	WinningScore    int `yaml:"winning_score"`
	SubstepsPerTick int `yaml:"substeps_per_tick"`
}

// Constants converts the configuration into match constants.
func (c AirHockeyConfig) Constants() match.Constants {
	return match.Constants{
		ArenaWidth:        c.Arena.Width,
		ArenaHeight:       c.Arena.Height,
		GoalWidth:         c.Arena.GoalWidth,
		WinningScore:      c.Match.WinningScore,
		SubstepsPerTick:   c.Match.SubstepsPerTick,
		PuckFriction:      c.Puck.Friction,
		PuckMaxSpeed:      c.Puck.MaxSpeed,
		PaddleSpeed:       c.Paddles.Speed,
		PaddleRadius:      c.Paddles.Radius,
		PuckRadius:        c.Puck.Radius,
		KickImpulse:       c.Paddles.Kick,
		PaddleStartOffset: c.Paddles.StartOffset,
		PaddleMass:        c.Paddles.Mass,
		PuckMass:          c.Puck.Mass,
	}
}

// Validate checks that the configuration describes a playable table.
func (c AirHockeyConfig) Validate() error {
	if err := c.Constants().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
