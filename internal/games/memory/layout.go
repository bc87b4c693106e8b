package memory

import "github.com/vovakirdan/tui-memory/internal/core"

const (
	// Terminal area the board aims for, in characters. Terminal cells are
	// roughly twice as tall as wide, so this reads as a square.
	boardCols = 32
	boardRows = 16

	hudHeight = 2
)

// Layout places the board on the terminal and maps terminal positions back
// to board pixels for the controller.
type Layout struct {
	Frame    core.Rect // box around the board
	Board    core.Rect // area covered by cells
	CellW    int
	CellH    int
	GridSize int
	Pixels   int // board size in pixels
	TooSmall bool
}

// ComputeLayout centers a gridSize×gridSize board on a screenW×screenH terminal.
func ComputeLayout(screenW, screenH, gridSize, boardPixels int) Layout {
	gridSize = max(gridSize, 1)
	cellW := max(boardCols/gridSize, 2)
	cellH := max(boardRows/gridSize, 1)

	boardW := cellW * gridSize
	boardH := cellH * gridSize
	frameW := boardW + 2
	frameH := boardH + 2

	frame := core.NewRect((screenW-frameW)/2, hudHeight, frameW, frameH)

	return Layout{
		Frame:    frame,
		Board:    frame.Inset(1),
		CellW:    cellW,
		CellH:    cellH,
		GridSize: gridSize,
		Pixels:   boardPixels,
		TooSmall: screenW < frameW || screenH < hudHeight+frameH,
	}
}

// CellRect returns the terminal area of cell (x, y).
func (l Layout) CellRect(x, y int) core.Rect {
	return core.NewRect(l.Board.X+x*l.CellW, l.Board.Y+y*l.CellH, l.CellW, l.CellH)
}

// ToBoardPixels converts a terminal position to board pixel coordinates.
// ok is false when the position is outside the board.
func (l Layout) ToBoardPixels(col, row int) (px, py int, ok bool) {
	if l.TooSmall || !l.Board.Contains(col, row) {
		return 0, 0, false
	}
	cellPixels := l.Pixels / l.GridSize
	return toPixels(col-l.Board.X, l.CellW, cellPixels), toPixels(row-l.Board.Y, l.CellH, cellPixels), true
}

// toPixels maps an offset in characters to pixels so that every character
// of cell k lands inside pixel range [k*cellPixels, (k+1)*cellPixels).
func toPixels(offset, cellChars, cellPixels int) int {
	cell := offset / cellChars
	within := offset % cellChars
	return cell*cellPixels + within*cellPixels/cellChars
}
