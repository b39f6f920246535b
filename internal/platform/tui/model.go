package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-airhockey/internal/core"
	"github.com/vovakirdan/tui-airhockey/internal/games/airhockey"
	"github.com/vovakirdan/tui-airhockey/internal/storage"
)

// MatchRecorder persists completed matches. *storage.Store implements it.
type MatchRecorder interface {
	SaveMatch(rec storage.MatchRecord) (string, error)
}

// Options configures a play session.
type Options struct {
	Recorder MatchRecorder // nil disables history
	Logger   *log.Logger   // nil discards logs
	Rules    string        // rules preset name, recorded with each match
	Source   string        // "local" or "ssh"
	Hold     int           // key hold window in ticks, 0 for HoldWindow at the tick rate
}

// Model is the Bubble Tea model for running an air hockey match.
type Model struct {
	game      *airhockey.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	keys      *KeyMapper
	latch     *KeyLatch
	gameState core.GameState
	quitting  bool
	saved     int // matches recorded this session
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *airhockey.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Source == "" {
		opts.Source = "local"
	}
	if opts.Hold <= 0 {
		opts.Hold = HoldTicksFor(cfg.TickRate)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		keys:   NewKeyMapper(),
		latch:  NewKeyLatch(opts.Hold),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	player, action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.latch.Press(player, action)

	return m, nil
}

// handleResize processes window resize events.
// The rink is drawn in arena units, so a resize never touches the match.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.latch.Sample())
	m.gameState = result.State

	if result.MatchEnded {
		m.recordMatch()
		// Keys held through the winning goal must not leak into the next match.
		m.latch.Release()
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordMatch saves the finished match. Failures are logged only.
func (m *Model) recordMatch() {
	snap := m.game.Snapshot()
	c := m.game.Constants()

	m.opts.Logger.Info("match over",
		"winner", snap.Winner,
		"left", snap.Score.Left,
		"right", snap.Score.Right,
		"ticks", snap.Tick,
	)

	if m.opts.Recorder == nil {
		return
	}
	id, err := m.opts.Recorder.SaveMatch(storage.MatchRecord{
		LeftScore:    snap.Score.Left,
		RightScore:   snap.Score.Right,
		Winner:       snap.Winner.String(),
		WinningScore: c.WinningScore,
		Ticks:        int64(snap.Tick), //#nosec G115 -- tick counts stay far below MaxInt64
		Rules:        m.opts.Rules,
		Source:       m.opts.Source,
	})
	if err != nil {
		m.opts.Logger.Error("cannot save match", "err", err)
		return
	}
	m.saved++
	m.opts.Logger.Debug("match saved", "id", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".airhockey", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	filename := fmt.Sprintf("airhockey_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Saved returns how many matches this model has recorded.
func (m Model) Saved() int {
	return m.saved
}

// Run starts the Bubble Tea program with the given game.
func Run(game *airhockey.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
