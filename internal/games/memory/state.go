package memory

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Phase is the stage of the game a session is in.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseShowingSample
	PhaseAwaitingInput
	// PhaseCleared is held only while a solved round is being replaced;
	// callers never observe it between operations.
	PhaseCleared
	PhaseGameOver
)

// String returns the phase name used in logs and snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseShowingSample:
		return "showing_sample"
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseCleared:
		return "cleared"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// HighlightTag selects the feedback color of a clicked cell.
type HighlightTag string

const (
	HighlightSuccess HighlightTag = "success"
	HighlightError   HighlightTag = "error"
)

// Highlight marks the most recently clicked cell for a few ticks.
type Highlight struct {
	X, Y           int
	Tag            HighlightTag
	TicksRemaining int
}

// Outcome describes what a click did.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // wrong phase or out of bounds
	OutcomeCorrect                 // on cell revealed, round continues
	OutcomeWrong                   // off cell, mistake counted
	OutcomeCleared                 // pattern complete, next round started
	OutcomeGameOver                // mistake budget exhausted
)

// Session owns all game data and is its only mutator.
// Operations called outside their valid phase are silent no-ops.
type Session struct {
	rules Rules
	gen   *Generator

	phase    Phase
	level    int
	gridSize int
	sample   Grid
	user     Grid

	elapsed   int // ticks in the current phase
	errors    int // mistakes in the current round
	timeLimit int
	skips     int

	highlight *Highlight
	cues      []core.Cue
	events    []core.Event
	ticks     uint64
}

// NewSession creates a session on the title screen.
// Invalid rules are rejected here so the running game never has to check them.
func NewSession(rules Rules, gen *Generator) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, errors.New("memory: nil pattern generator")
	}

	return &Session{
		rules:     rules,
		gen:       gen,
		phase:     PhaseNotStarted,
		level:     1,
		gridSize:  rules.InitialGridSize,
		sample:    NewGrid(rules.InitialGridSize),
		user:      NewGrid(rules.InitialGridSize),
		timeLimit: rules.TimeLimitTicks,
		skips:     rules.Skips,
	}, nil
}

// Start leaves the title screen and reveals the first pattern.
func (s *Session) Start() bool {
	if s.phase != PhaseNotStarted {
		return false
	}
	s.newGame()
	return true
}

// Reset begins a new game after game over, skipping the title screen.
func (s *Session) Reset() bool {
	if s.phase != PhaseGameOver {
		return false
	}
	s.newGame()
	return true
}

func (s *Session) newGame() {
	s.level = 1
	s.gridSize = s.rules.InitialGridSize
	s.timeLimit = s.rules.TimeLimitTicks
	s.skips = s.rules.Skips
	s.highlight = nil
	s.startNextRound()
}

// startNextRound replaces the round wholesale at the current grid size.
// Mistakes do not carry over between rounds.
func (s *Session) startNextRound() {
	s.sample = s.gen.Generate(s.gridSize)
	s.user = NewGrid(s.gridSize)
	s.phase = PhaseShowingSample
	s.elapsed = 0
	s.errors = 0
}

// Tick advances timers by one simulation step.
func (s *Session) Tick() {
	if s.phase != PhaseShowingSample && s.phase != PhaseAwaitingInput {
		return
	}
	s.ticks++
	s.tickHighlight()

	s.elapsed++
	switch s.phase {
	case PhaseShowingSample:
		if s.elapsed > s.rules.RevealTicks {
			s.phase = PhaseAwaitingInput
			s.elapsed = 0
		}
	case PhaseAwaitingInput:
		if s.elapsed > s.timeLimit {
			s.phase = PhaseGameOver
			s.record(core.EventTimeUp)
		}
	}
}

func (s *Session) tickHighlight() {
	if s.highlight == nil {
		return
	}
	// visible through the tick that counts it down to zero
	s.highlight.TicksRemaining--
	if s.highlight.TicksRemaining < 0 {
		s.highlight = nil
	}
}

// Click resolves a guess at cell (x, y).
func (s *Session) Click(x, y int) Outcome {
	if s.phase != PhaseAwaitingInput {
		return OutcomeIgnored
	}
	if x < 0 || y < 0 || x >= s.gridSize || y >= s.gridSize {
		return OutcomeIgnored
	}

	if !s.sample[y][x] {
		s.errors++
		s.emit(core.CueWrong)
		s.setHighlight(x, y, HighlightError)
		if s.errors >= s.rules.MaxErrors {
			s.phase = PhaseGameOver
			return OutcomeGameOver
		}
		return OutcomeWrong
	}

	s.user[y][x] = true
	s.emit(core.CueCorrect)
	s.setHighlight(x, y, HighlightSuccess)

	if !s.user.Equal(s.sample) {
		return OutcomeCorrect
	}

	s.phase = PhaseCleared
	s.level++
	s.record(core.EventLevelUp)
	if s.rules.AdvanceLevel > 0 && s.level >= s.rules.AdvanceLevel && s.gridSize != s.rules.AdvancedGridSize {
		s.gridSize = s.rules.AdvancedGridSize
		s.record(core.EventGridGrown)
		// old coordinates mean nothing on the new grid
		s.highlight = nil
	}
	s.startNextRound()
	return OutcomeCleared
}

// Skip abandons the current round for a new pattern at the same level.
func (s *Session) Skip() bool {
	if s.phase != PhaseShowingSample && s.phase != PhaseAwaitingInput {
		return false
	}
	if s.skips <= 0 {
		return false
	}
	s.skips--
	s.record(core.EventSkipped)
	s.startNextRound()
	return true
}

func (s *Session) setHighlight(x, y int, tag HighlightTag) {
	if s.rules.HighlightTicks == 0 {
		return
	}
	s.highlight = &Highlight{X: x, Y: y, Tag: tag, TicksRemaining: s.rules.HighlightTicks}
}

func (s *Session) emit(c core.Cue) {
	s.cues = append(s.cues, c)
}

func (s *Session) record(e core.Event) {
	s.events = append(s.events, e)
}

// DrainEvents returns the events raised since the last call, oldest first.
func (s *Session) DrainEvents() []core.Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

// DrainCues returns the cues raised since the last call, oldest first.
func (s *Session) DrainCues() []core.Cue {
	if len(s.cues) == 0 {
		return nil
	}
	out := s.cues
	s.cues = nil
	return out
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// GridSize returns the side length of the current grid.
func (s *Session) GridSize() int { return s.gridSize }

// SkipsRemaining returns the skips left for this game.
func (s *Session) SkipsRemaining() int { return s.skips }

// ErrorCount returns mistakes made in the current round.
func (s *Session) ErrorCount() int { return s.errors }

// ElapsedTicks returns ticks spent in the current phase.
func (s *Session) ElapsedTicks() int { return s.elapsed }

// Rules returns the rules the session was built with.
func (s *Session) Rules() Rules { return s.rules }

// CellPixelSize is the board pixel width of one cell at the current grid size.
func (s *Session) CellPixelSize() int {
	return s.rules.BoardPixelSize / s.gridSize
}

// String summarises the session for logs.
func (s *Session) String() string {
	return fmt.Sprintf("phase=%s level=%d grid=%d errors=%d/%d skips=%d",
		s.phase, s.level, s.gridSize, s.errors, s.rules.MaxErrors, s.skips)
}
