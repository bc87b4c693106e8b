package core

// Event is a game transition worth recording that GameState alone does
// not show. The platform logs events; games never depend on that.
type Event string

const (
	EventLevelUp   Event = "level_up"   // round cleared, level advanced
	EventGridGrown Event = "grid_grown" // board switched to the advanced size
	EventSkipped   Event = "skipped"    // round abandoned with a skip
	EventTimeUp    Event = "time_up"    // time limit ended the game
)
