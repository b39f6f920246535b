package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-airhockey/internal/match"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigMatchesMatchDefaults(t *testing.T) {
	if got := DefaultConfig().Constants(); got != match.DefaultConstants() {
		t.Errorf("DefaultConfig().Constants() = %+v\nexpected %+v", got, match.DefaultConstants())
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg AirHockeyConfig
	if err := yaml.Unmarshal(defaultAirHockeyYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v\nexpected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	data := []byte("arena:\n  goal_width: 250\nmatch:\n  winning_score: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Arena.GoalWidth != 250 || cfg.Match.WinningScore != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Keys the file leaves out keep their defaults.
	if cfg.Arena.Width != 800 || cfg.Puck.Friction != 0.998 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("unparsable custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("arena:\n  goal_width: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, match.ErrInvalidConstants) {
		t.Errorf("invalid custom config error = %v, expected ErrInvalidConfig wrapping ErrInvalidConstants", err)
	}
}

func TestLoadSearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("with no files Load() = %+v, expected defaults", cfg)
	}

	if err := os.MkdirAll("configs", 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", configFile), []byte("match:\n  winning_score: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Match.WinningScore != 4 {
		t.Errorf("local config not used: winning score %d", cfg.Match.WinningScore)
	}

	userDir := filepath.Join(home, ".airhockey", "configs")
	if err := os.MkdirAll(userDir, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, configFile), []byte("match:\n  winning_score: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Match.WinningScore != 9 {
		t.Errorf("user config should win over local: winning score %d", cfg.Match.WinningScore)
	}
}

func TestApplyRules(t *testing.T) {
	tests := []struct {
		preset  RulesPreset
		winning int
		speed   float64
	}{
		{"", 7, 15},
		{RulesQuick, 3, 15},
		{RulesClassic, 7, 15},
		{RulesMarathon, 11, 15},
		{RulesTurbo, 7, 22.5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyRules(&cfg, tt.preset)
			if cfg.Match.WinningScore != tt.winning {
				t.Errorf("winning score = %d, expected %d", cfg.Match.WinningScore, tt.winning)
			}
			if cfg.Puck.MaxSpeed != tt.speed {
				t.Errorf("max speed = %g, expected %g", cfg.Puck.MaxSpeed, tt.speed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParseRules(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParseRules(string(p))
		if err != nil || got != p {
			t.Errorf("ParseRules(%q) = %q, %v", p, got, err)
		}
		if p.Description() == "" {
			t.Errorf("preset %q has no description", p)
		}
	}

	if _, err := ParseRules("sudden-death"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown preset error = %v, expected ErrInvalidConfig", err)
	}
	if p, err := ParseRules(""); err != nil || p != "" {
		t.Errorf("empty preset = %q, %v", p, err)
	}
}
