package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-airhockey/internal/platform/tui"
	"github.com/vovakirdan/tui-airhockey/internal/storage"
)

var (
	flagBrowse bool
	flagLimit  int
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded matches",
	Long: `Display recently finished matches and win totals.

Examples:
  airhockey history
  airhockey history --limit 50
  airhockey history --browse
  airhockey history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive history browser")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to list")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")

	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		if err := printHistory(os.Stdout, store, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
			os.Exit(1)
		}
	}
}

// historySource is the part of the store the text listing reads.
type historySource interface {
	RecentMatches(limit int) ([]storage.MatchRecord, error)
	Standings() (*storage.Standings, error)
}

func printHistory(w io.Writer, src historySource, limit int) error {
	matches, err := src.RecentMatches(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Match History")
	fmt.Fprintln(w)

	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'airhockey play' and finish a match to record one!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-16s  %-7s  %-6s  %-8s  %s\n", "Date", "Score", "Winner", "First to", "Rules")
	fmt.Fprintf(w, "  %-16s  %-7s  %-6s  %-8s  %s\n", "----", "-----", "------", "--------", "-----")

	for _, m := range matches {
		rules := m.Rules
		if rules == "" {
			rules = "-"
		}
		fmt.Fprintf(w, "  %-16s  %-7s  %-6s  %-8d  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d-%d", m.LeftScore, m.RightScore),
			m.Winner,
			m.WinningScore,
			rules,
		)
	}

	st, err := src.Standings()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Standings: left %d - %d right over %d matches\n", st.LeftWins, st.RightWins, st.Matches)
	return nil
}
