package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// bellSeq is the terminal bell control character.
const bellSeq = "\a"

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures the host loop beyond the runtime config.
type Options struct {
	Logger *log.Logger // nil discards logs
	Bell   bool        // ring the terminal bell on wrong guesses
	// BellOut receives the bell character. Defaults to stderr so it
	// does not interleave with the rendered frame on stdout.
	BellOut io.Writer
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	bell       bool
	bellOut    io.Writer
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bellOut := opts.BellOut
	if bellOut == nil {
		bellOut = os.Stderr
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		bell:       opts.Bell,
		bellOut:    bellOut,
	}
}

// gameHeight is the terminal height left to the game under the help bar.
func gameHeight(h int) int {
	return max(h-helpHeight, 0)
}

// Init initializes the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	gameCfg := m.config
	gameCfg.ScreenH = gameHeight(m.config.ScreenH)
	m.game.Reset(gameCfg)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed,
		"fps", m.config.TickRate, "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("session ended", "game", m.game.ID(), "rounds", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state;
// it lays itself out again on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, result.State)
	m.logEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	if cmd := m.cueCmd(result.Cues); cmd != nil {
		return m, tea.Batch(tickCmd(m.config.TickRate), cmd)
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransition(prev, cur core.GameState) {
	switch {
	case !prev.Started && cur.Started:
		m.logger.Info("game started", "state", m.game)
	case prev.GameOver && !cur.GameOver:
		m.logger.Info("game restarted", "state", m.game)
	case !prev.GameOver && cur.GameOver:
		m.logger.Info("game over", "rounds", cur.Score, "state", m.game)
	}
}

var eventMessages = map[core.Event]string{
	core.EventLevelUp:   "round cleared",
	core.EventGridGrown: "grid grown",
	core.EventSkipped:   "round skipped",
	core.EventTimeUp:    "time ran out",
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		msg, ok := eventMessages[e]
		if !ok {
			msg = string(e)
		}
		m.logger.Info(msg, "event", e, "rounds", m.gameState.Score, "state", m.game)
	}
}

// cueCmd logs cues and returns a command ringing the bell when one of
// them was a wrong guess. Returns nil when there is nothing to do.
func (m Model) cueCmd(cues []core.Cue) tea.Cmd {
	ring := false
	for _, c := range cues {
		m.logger.Debug("cue", "cue", c)
		if c == core.CueWrong {
			ring = true
		}
	}
	if !ring || !m.bell {
		return nil
	}

	out := m.bellOut
	return func() tea.Msg {
		//nolint:errcheck // Bell is best-effort feedback
		io.WriteString(out, bellSeq)
		return nil
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses select cells
	)

	_, err := p.Run()
	return err
}
