package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-airhockey/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List rule presets",
	Long:  `Shows the rule presets accepted by --rules.`,
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func runRules(_ *cobra.Command, _ []string) {
	presets := config.Presets()

	fmt.Println("Rule presets:")
	fmt.Println()

	// Calculate column widths
	maxLen := 6 // "Preset" header
	for _, p := range presets {
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Preset", "Rules")
	fmt.Printf("  %-*s  %s\n", maxLen, "------", "-----")
	for _, p := range presets {
		fmt.Printf("  %-*s  %s\n", maxLen, p, p.Description())
	}

	fmt.Println()
	fmt.Println("Run 'airhockey play --rules <preset>' to use one.")
}
