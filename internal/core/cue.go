package core

// Cue is a fire-and-forget feedback notification raised by game logic.
// The platform decides how (or whether) to present it.
type Cue string

const (
	CueCorrect Cue = "correct"
	CueWrong   Cue = "wrong"
)
