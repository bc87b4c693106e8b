package memory

import (
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/core"
)

const (
	blockRune = '█'
	emptyRune = '░'
)

// Render draws a snapshot onto dst using the given layout.
// tickRate converts remaining ticks to seconds for the HUD.
func Render(dst *core.Screen, snap Snapshot, lay Layout, tickRate int) {
	dst.Clear()

	switch {
	case lay.TooSmall:
		renderTooSmall(dst)
	case snap.Phase == PhaseNotStarted:
		renderTitle(dst)
	case snap.Phase == PhaseGameOver:
		renderGameOver(dst, snap)
	default:
		renderHUD(dst, snap, lay, tickRate)
		renderBoard(dst, snap, lay)
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

func renderTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "MEMORY GRID", core.ColorBrightYellow)
	dst.DrawTextCentered(mid, "Press Enter to start", core.ColorBrightWhite)
	dst.DrawTextCentered(mid+2, "Memorize the pattern, then click the cells back", core.ColorGray)
}

func renderGameOver(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(mid, fmt.Sprintf("Rounds Cleared: %d", snap.RoundsCleared), core.ColorBrightYellow)
	dst.DrawTextCentered(mid+2, "R to Restart", core.ColorBrightWhite)
}

func renderHUD(dst *core.Screen, snap Snapshot, lay Layout, tickRate int) {
	left := lay.Frame.X
	right := lay.Frame.Right()

	dst.DrawTextColored(left, 0, fmt.Sprintf("Level %d", snap.Level), core.ColorBrightWhite)

	var status string
	statusColor := core.ColorCyan
	secs := secondsLeft(snap.TicksLeft(), tickRate)
	if snap.ShowSample {
		status = fmt.Sprintf("Memorize %ds", secs)
	} else {
		status = fmt.Sprintf("Time %ds", secs)
		if secs <= 5 {
			statusColor = core.ColorBrightRed
		}
	}
	dst.DrawTextColored(right-len(status), 0, status, statusColor)

	errs := fmt.Sprintf("Errors Left: %d", snap.ErrorsLeft())
	skips := fmt.Sprintf("Skips left: %d", snap.SkipsRemaining)
	dst.DrawTextColored(left, 1, errs, core.ColorYellow)
	dst.DrawTextColored(right-len(skips), 1, skips, core.ColorYellow)
}

func renderBoard(dst *core.Screen, snap Snapshot, lay Layout) {
	dst.DrawBox(lay.Frame, core.ColorGray)

	for y := 0; y < snap.GridSize; y++ {
		for x := 0; x < snap.GridSize; x++ {
			r := lay.CellRect(x, y)
			// leave a one-character gutter between cells when there is room
			if r.W > 2 {
				r.W--
			}
			if r.H > 1 {
				r.H--
			}
			fill, color := cellLook(snap, x, y)
			dst.FillRect(r, fill, color)
		}
	}
}

func cellLook(snap Snapshot, x, y int) (rune, core.Color) {
	if h := snap.Highlight; h != nil && h.X == x && h.Y == y {
		if h.Tag == HighlightError {
			return blockRune, core.ColorRed
		}
		return blockRune, core.ColorBrightGreen
	}
	if snap.ShowSample && snap.Sample[y][x] {
		return blockRune, core.ColorBrightGreen
	}
	if snap.User[y][x] {
		return blockRune, core.ColorWhite
	}
	return emptyRune, core.ColorGray
}

// secondsLeft rounds up so the HUD shows 1s until the timer actually expires.
func secondsLeft(ticks, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return (ticks + tickRate - 1) / tickRate
}
