package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-airhockey/internal/core"
	"github.com/vovakirdan/tui-airhockey/internal/games/airhockey"
	"github.com/vovakirdan/tui-airhockey/internal/platform/tui"
	"github.com/vovakirdan/tui-airhockey/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local two-player match",
	Long: `Start a two-player match on this terminal.

Controls:
  W/A/S/D      - Player 1 (left paddle)
  Arrow keys   - Player 2 (right paddle)
  P/Esc        - Pause
  Space/R      - Restart (after a match is won)
  Q/Ctrl+C     - Quit

Examples:
  airhockey play
  airhockey play --rules marathon
  airhockey play --config ./my-table.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	constants, err := loadTable(flagConfig, flagRules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := airhockey.New(constants)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	opts := tui.Options{Rules: flagRules, Source: "local"}

	// The alt screen owns stdout, so logs only go to an explicit file.
	var logFile io.Closer
	if flagLogFile != "" {
		logger, f, logErr := openLogFile(flagLogFile)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", logErr)
			os.Exit(1)
		}
		logFile = f
		opts.Logger = logger
	}

	// Open match history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage - game still works
	} else {
		opts.Recorder = store
	}

	runErr := tui.Run(game, cfg, opts)

	// os.Exit skips deferred calls, so close before it.
	if store != nil {
		store.Close()
	}
	if logFile != nil {
		logFile.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogFile opens path for appending and returns a debug logger writing
// to it. The caller closes the file.
func openLogFile(path string) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "airhockey"})
	logger.SetLevel(log.DebugLevel)
	return logger, f, nil
}
