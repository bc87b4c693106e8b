package memory

import "github.com/vovakirdan/tui-memory/internal/core"

// Controller translates raw input and scheduler ticks into Session calls.
// It holds no game state of its own.
type Controller struct {
	session *Session
}

// NewController creates a controller driving s.
func NewController(s *Session) *Controller {
	return &Controller{session: s}
}

// Session returns the driven session.
func (c *Controller) Session() *Session {
	return c.session
}

// Step handles one scheduler tick with the input collected during it.
// click is in board pixel coordinates, nil when there was no press.
//
// On the title and game over screens only the start/restart key is
// considered. Otherwise timers advance first, then the click, then skip.
func (c *Controller) Step(in core.InputFrame, click *core.Pointer) Outcome {
	switch c.session.Phase() {
	case PhaseNotStarted:
		if in.Has(core.ActionStart) {
			c.HandleKey(core.ActionStart)
		}
		return OutcomeIgnored
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			c.HandleKey(core.ActionRestart)
		}
		return OutcomeIgnored
	}

	c.session.Tick()

	outcome := OutcomeIgnored
	if click != nil {
		outcome = c.HandlePointer(click.X, click.Y)
	}
	if in.Has(core.ActionSkip) {
		c.HandleKey(core.ActionSkip)
	}
	return outcome
}

// HandleKey routes a named key action. It reports whether the session changed.
func (c *Controller) HandleKey(a core.Action) bool {
	switch a {
	case core.ActionStart:
		return c.session.Start()
	case core.ActionRestart:
		return c.session.Reset()
	case core.ActionSkip:
		return c.session.Skip()
	}
	return false
}

// HandlePointer resolves a click at board pixel (px, py) to a cell.
// Presses outside the board are ignored.
func (c *Controller) HandlePointer(px, py int) Outcome {
	if c.session.Phase() != PhaseAwaitingInput {
		return OutcomeIgnored
	}
	board := c.session.Rules().BoardPixelSize
	if px < 0 || py < 0 || px >= board || py >= board {
		return OutcomeIgnored
	}
	cell := c.session.CellPixelSize()
	return c.session.Click(px/cell, py/cell)
}
