package memory

import (
	"testing"

	"github.com/vovakirdan/tui-memory/internal/core"
)

func newTestController(t *testing.T, src RandSource) *Controller {
	t.Helper()
	return NewController(newTestSession(t, src))
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestControllerStartConsumesTick(t *testing.T) {
	c := newTestController(t, constSource(1))

	c.Step(frameWith(), nil)
	if c.Session().Phase() != PhaseNotStarted {
		t.Fatal("an empty frame must not start the game")
	}

	// Start and skip in the same frame: only the start happens.
	c.Step(frameWith(core.ActionStart, core.ActionSkip), nil)
	s := c.Session()
	if s.Phase() != PhaseShowingSample {
		t.Fatalf("phase = %s, want showing_sample", s.Phase())
	}
	if s.ElapsedTicks() != 0 || s.SkipsRemaining() != 2 {
		t.Errorf("start tick should do nothing else: elapsed=%d skips=%d", s.ElapsedTicks(), s.SkipsRemaining())
	}

	c.Step(frameWith(), nil)
	if s.ElapsedTicks() != 1 {
		t.Errorf("elapsed = %d after one playing tick, want 1", s.ElapsedTicks())
	}
}

func TestControllerRestartOnlyFromGameOver(t *testing.T) {
	c := newTestController(t, constSource(0))
	s := c.Session()

	c.Step(frameWith(core.ActionRestart), nil)
	if s.Phase() != PhaseNotStarted {
		t.Fatal("restart must not start the game from the title screen")
	}

	startAwaiting(t, s)
	for i := 0; i < 3; i++ {
		s.Click(0, 0)
	}
	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, want game_over", s.Phase())
	}

	c.Step(frameWith(core.ActionStart), nil)
	if s.Phase() != PhaseGameOver {
		t.Error("start key must not leave game over")
	}

	c.Step(frameWith(core.ActionRestart), nil)
	if s.Phase() != PhaseShowingSample || s.Level() != 1 {
		t.Errorf("restart should begin a new game, phase=%s level=%d", s.Phase(), s.Level())
	}
}

func TestControllerSkipAfterClick(t *testing.T) {
	c := newTestController(t, constSource(0))
	s := c.Session()
	startAwaiting(t, s)

	// Click first (counts an error), then skip resets the round.
	c.Step(frameWith(core.ActionSkip), &core.Pointer{X: 0, Y: 0})
	if s.SkipsRemaining() != 1 {
		t.Errorf("skips = %d, want 1", s.SkipsRemaining())
	}
	if s.ErrorCount() != 0 || s.Phase() != PhaseShowingSample {
		t.Errorf("skip should start a fresh round, errors=%d phase=%s", s.ErrorCount(), s.Phase())
	}
	if cues := s.DrainCues(); len(cues) != 1 || cues[0] != core.CueWrong {
		t.Errorf("cues = %v, want the click to be resolved before the skip", cues)
	}
}

func TestControllerTickBeforeClick(t *testing.T) {
	c := newTestController(t, constSource(1))
	s := c.Session()
	s.Start()
	for i := 0; i < s.Rules().RevealTicks; i++ {
		s.Tick()
	}

	// The reveal ends on this step's tick, so the click in the same frame lands.
	got := c.Step(frameWith(), &core.Pointer{X: 0, Y: 0})
	if got != OutcomeCorrect {
		t.Errorf("outcome = %d, want correct", got)
	}
}

func TestHandlePointer(t *testing.T) {
	tests := []struct {
		name   string
		px, py int
		want   Outcome
		cellX  int
		cellY  int
	}{
		{"origin", 0, 0, OutcomeCorrect, 0, 0},
		{"last pixel of first cell", 31, 31, OutcomeCorrect, 0, 0},
		{"first pixel of second cell", 32, 0, OutcomeCorrect, 1, 0},
		{"bottom right", 127, 127, OutcomeCorrect, 3, 3},
		{"negative x", -1, 5, OutcomeIgnored, -1, -1},
		{"negative y", 5, -20, OutcomeIgnored, -1, -1},
		{"past right edge", 128, 0, OutcomeIgnored, -1, -1},
		{"past bottom edge", 0, 200, OutcomeIgnored, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t, constSource(1))
			s := c.Session()
			startAwaiting(t, s)

			if got := c.HandlePointer(tt.px, tt.py); got != tt.want {
				t.Fatalf("HandlePointer(%d, %d) = %d, want %d", tt.px, tt.py, got, tt.want)
			}
			user := s.Snapshot().User
			if tt.cellX < 0 {
				if user.Count() != 0 {
					t.Error("ignored pointer revealed a cell")
				}
				return
			}
			if !user[tt.cellY][tt.cellX] {
				t.Errorf("cell (%d, %d) not revealed", tt.cellX, tt.cellY)
			}
		})
	}
}

func TestHandlePointerOnLargeGrid(t *testing.T) {
	c := newTestController(t, constSource(1))
	s := c.Session()
	startAwaiting(t, s)
	for s.GridSize() != 8 {
		clearRound(t, s)
		finishReveal(t, s)
	}

	c.HandlePointer(16, 127)
	if !s.Snapshot().User[7][1] {
		t.Error("pixel (16, 127) should map to cell (1, 7) on an 8×8 grid")
	}
}

func TestHandlePointerIgnoredDuringReveal(t *testing.T) {
	c := newTestController(t, constSource(1))
	c.Session().Start()

	if got := c.HandlePointer(10, 10); got != OutcomeIgnored {
		t.Errorf("outcome = %d, want ignored during reveal", got)
	}
}
