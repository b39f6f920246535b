// airhockey is a two-player air hockey table for the terminal.
//
// Usage:
//
//	airhockey play               - Play a local two-player match
//	airhockey serve              - Start SSH server for remote play
//	airhockey history            - Show recorded matches
//	airhockey rules              - List rule presets
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.airhockey/history.db)
//	--config <path>   - Use a custom table config YAML
//	--rules <preset>  - Apply a rules preset (quick, classic, marathon, turbo)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-airhockey/internal/config"
	"github.com/vovakirdan/tui-airhockey/internal/match"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
	flagRules  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "airhockey",
	Short: "Air Hockey - two players, one keyboard, in your terminal",
	Long: `Air Hockey is a terminal two-player air hockey table.
Player 1 plays the left paddle with WASD, Player 2 the right paddle with
the arrow keys. First to the winning score takes the match.

Available commands:
  play     - Play a local match
  serve    - Start SSH server for remote play
  history  - View recorded matches
  rules    - List rule presets

Examples:
  airhockey play
  airhockey play --rules quick
  airhockey serve --ssh :2222
  airhockey history --browse`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.airhockey/history.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom table config YAML")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "Rules preset: quick, classic, marathon, turbo")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(rulesCmd)
}

// loadTable resolves the table from the config search path and the rules
// preset flag.
func loadTable(configPath, rules string) (match.Constants, error) {
	preset, err := config.ParseRules(rules)
	if err != nil {
		return match.Constants{}, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return match.Constants{}, err
	}
	config.ApplyRules(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return match.Constants{}, err
	}
	return cfg.Constants(), nil
}
