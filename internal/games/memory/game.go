package memory

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// GameID is the registry identifier of the memory game.
const GameID = "memory"

// Game adapts a Session and its Controller to the platform's registry.Game.
type Game struct {
	rules      Rules
	session    *Session
	controller *Controller
	layout     Layout
	tickRate   int
	source     string // where Configure found the rules
}

// New creates a memory game with the default rules.
func New() *Game {
	return &Game{rules: DefaultRules(), source: config.SourceBuiltin}
}

// NewWithRules creates a memory game with custom rules.
func NewWithRules(rules Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Game{rules: rules, source: config.SourceCustom}, nil
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

var _ registry.Configurable = (*Game)(nil)

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory Grid"
}

// Configure loads rules from a config file (or the default search path)
// and applies a difficulty preset on top.
func (g *Game) Configure(configPath, difficulty string) error {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return err
	}
	cfg, source, err := config.LoadMemory(configPath)
	if err != nil {
		return err
	}
	config.ApplyMemoryPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.rules = RulesFromConfig(cfg)
	g.source = source
	return nil
}

// ConfigSource reports where the active rules were loaded from.
func (g *Game) ConfigSource() string {
	return g.source
}

// Reset builds a fresh session on the title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gen := NewGenerator(rand.New(rand.NewSource(cfg.Seed)))
	s, err := NewSession(g.rules, gen)
	if err != nil {
		// rules are validated by New, NewWithRules and Configure
		panic(fmt.Sprintf("memory: %v", err))
	}

	g.session = s
	g.controller = NewController(s)
	g.tickRate = cfg.TickRate
	g.layout = ComputeLayout(cfg.ScreenW, cfg.ScreenH, s.GridSize(), g.rules.BoardPixelSize)
}

// Step advances the game by one tick.
// While the window is too small the game is frozen.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.layout.TooSmall {
		return core.StepResult{State: g.State()}
	}

	var click *core.Pointer
	if in.Click != nil {
		if px, py, ok := g.layout.ToBoardPixels(in.Click.X, in.Click.Y); ok {
			click = &core.Pointer{X: px, Y: py}
		}
	}

	g.controller.Step(in, click)

	return core.StepResult{
		State:  g.State(),
		Cues:   g.session.DrainCues(),
		Events: g.session.DrainEvents(),
	}
}

// Render draws the game and remembers the layout for mapping later clicks.
func (g *Game) Render(dst *core.Screen) {
	snap := g.session.Snapshot()
	g.layout = ComputeLayout(dst.Width(), dst.Height(), snap.GridSize, g.rules.BoardPixelSize)
	Render(dst, snap, g.layout, g.tickRate)
}

// State returns the coarse game state. Score is rounds cleared.
func (g *Game) State() core.GameState {
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Level() - 1,
		GameOver: phase == PhaseGameOver,
		Started:  phase != PhaseNotStarted,
	}
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Rules returns the active rules.
func (g *Game) Rules() Rules {
	return g.rules
}

// String summarises the running session for logs.
func (g *Game) String() string {
	if g.session == nil {
		return "memory: not reset"
	}
	return g.session.String()
}
