package config

import (
	"fmt"
	"sort"
)

// RulesPreset represents a named set of match rules.
type RulesPreset string

const (
	RulesQuick    RulesPreset = "quick"
	RulesClassic  RulesPreset = "classic"
	RulesMarathon RulesPreset = "marathon"
	RulesTurbo    RulesPreset = "turbo"
)

var presetDescriptions = map[RulesPreset]string{
	RulesQuick:    "first to 3",
	RulesClassic:  "first to 7",
	RulesMarathon: "first to 11",
	RulesTurbo:    "first to 7, faster puck and paddles, harder kicks",
}

// Presets returns the known preset names in sorted order.
func Presets() []RulesPreset {
	out := make([]RulesPreset, 0, len(presetDescriptions))
	for p := range presetDescriptions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Description returns a short human-readable summary of the preset.
func (p RulesPreset) Description() string {
	return presetDescriptions[p]
}

// ParseRules validates a preset name. An empty name means no preset.
func ParseRules(name string) (RulesPreset, error) {
	if name == "" {
		return "", nil
	}
	p := RulesPreset(name)
	if _, ok := presetDescriptions[p]; !ok {
		return "", fmt.Errorf("%w: unknown rules %q", ErrInvalidConfig, name)
	}
	return p, nil
}

// ApplyRules modifies the config based on a rules preset.
// The empty preset leaves the config untouched.
func ApplyRules(cfg *AirHockeyConfig, preset RulesPreset) {
	switch preset {
	case RulesQuick:
		cfg.Match.WinningScore = 3
	case RulesClassic:
		cfg.Match.WinningScore = 7
	case RulesMarathon:
		cfg.Match.WinningScore = 11
	case RulesTurbo:
		cfg.Match.WinningScore = 7
		cfg.Puck.MaxSpeed *= 1.5
		cfg.Paddles.Speed *= 1.5
		cfg.Paddles.Kick *= 2
	}
}
