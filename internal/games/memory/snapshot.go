package memory

// Snapshot is a read-only copy of a session for rendering and tests.
// Mutating it never affects the session.
type Snapshot struct {
	Tick           uint64
	Phase          Phase
	GridSize       int
	CellPixelSize  int
	Sample         Grid
	User           Grid
	ShowSample     bool
	ErrorCount     int
	MaxErrors      int
	Level          int
	RoundsCleared  int
	SkipsRemaining int
	RevealTicks    int
	TimeLimitTicks int
	ElapsedTicks   int
	Highlight      *Highlight
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:           s.ticks,
		Phase:          s.phase,
		GridSize:       s.gridSize,
		CellPixelSize:  s.CellPixelSize(),
		Sample:         s.sample.Clone(),
		User:           s.user.Clone(),
		ShowSample:     s.phase == PhaseShowingSample,
		ErrorCount:     s.errors,
		MaxErrors:      s.rules.MaxErrors,
		Level:          s.level,
		RoundsCleared:  s.level - 1,
		SkipsRemaining: s.skips,
		RevealTicks:    s.rules.RevealTicks,
		TimeLimitTicks: s.timeLimit,
		ElapsedTicks:   s.elapsed,
	}
	if s.highlight != nil {
		h := *s.highlight
		snap.Highlight = &h
	}
	return snap
}

// TicksLeft returns ticks until the current phase times out, or 0 when
// the phase has no timer.
func (s Snapshot) TicksLeft() int {
	switch s.Phase {
	case PhaseShowingSample:
		return max(s.RevealTicks-s.ElapsedTicks, 0)
	case PhaseAwaitingInput:
		return max(s.TimeLimitTicks-s.ElapsedTicks, 0)
	default:
		return 0
	}
}

// ErrorsLeft returns how many more mistakes the round tolerates.
func (s Snapshot) ErrorsLeft() int {
	return max(s.MaxErrors-s.ErrorCount, 0)
}
