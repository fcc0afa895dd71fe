package render

import (
	"math"

	"github.com/lixenwraith/type-pong/vmath"
)

// Screen rows reserved around the board
const (
	headerRows = 1
	footerRows = 3
	minCellW   = 1
	maxCellW   = 3
)

// Layout maps board columns and normalized coordinates to screen cells
type Layout struct {
	ScreenW, ScreenH int

	// Board interior, walls excluded
	X, Y   int
	W, H   int
	CellW  int
	Cols   int
	Usable bool
}

// NewLayout fits a cols-wide board into a sw×sh screen, centered horizontally
func NewLayout(sw, sh, cols int) Layout {
	l := Layout{ScreenW: sw, ScreenH: sh, Cols: cols}
	if cols <= 0 {
		return l
	}

	l.CellW = vmath.ClampInt((sw-2)/cols, minCellW, maxCellW)
	l.W = cols * l.CellW
	l.H = sh - headerRows - footerRows
	l.X = (sw - l.W) / 2
	l.Y = headerRows
	l.Usable = l.W+2 <= sw && l.H >= 3
	return l
}

// ColumnLeft returns the screen x of a board column's first cell
func (l Layout) ColumnLeft(c int) int {
	return l.X + c*l.CellW
}

// CellX maps a normalized x to a screen column inside the board
func (l Layout) CellX(x float64) int {
	cx := int(math.Floor(x * float64(l.W)))
	return l.X + vmath.ClampInt(cx, 0, l.W-1)
}

// CellY maps a normalized y to a screen row inside the board
func (l Layout) CellY(y float64) int {
	cy := int(math.Round(y * float64(l.H-1)))
	return l.Y + vmath.ClampInt(cy, 0, l.H-1)
}

// PromptRow, StatusRow and HUDRow are the footer rows
func (l Layout) PromptRow() int { return l.Y + l.H }
func (l Layout) StatusRow() int { return l.Y + l.H + 1 }
func (l Layout) HUDRow() int { return l.Y + l.H + 2 }
