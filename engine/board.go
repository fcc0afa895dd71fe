package engine

import (
	"github.com/lixenwraith/type-pong/config"
	"github.com/lixenwraith/type-pong/physics"
)

// Board is the static geometry derived from a normalized config
type Board struct {
	Columns     int
	PaddleWidth int
	TopLine     float64
	BottomLine  float64
	BallRadius  float64
	Bounds      physics.Bounds

	MinTravelTime float64
}

// NewBoard derives the board model from cfg
func NewBoard(cfg config.Config) Board {
	return Board{
		Columns:       cfg.Columns,
		PaddleWidth:   cfg.PaddleWidth,
		TopLine:       cfg.TopLine,
		BottomLine:    cfg.BottomLine,
		BallRadius:    cfg.BallRadius,
		Bounds:        physics.NewBounds(cfg.TopLine, cfg.BottomLine, cfg.BallRadius),
		MinTravelTime: cfg.MinTravelTime,
	}
}

// Half returns the paddle half-width in columns
func (b Board) Half() int {
	return b.PaddleWidth / 2
}

// HomeColumn is the column paddles start and re-center on
func (b Board) HomeColumn() int {
	return b.Columns / 2
}

// ColumnOf returns the nearest column for a normalized x
func (b Board) ColumnOf(x float64) int {
	return physics.ColumnOf(x, b.Columns)
}

// ColumnX returns the normalized x of a column center
func (b Board) ColumnX(c int) float64 {
	return physics.ColumnX(c, b.Columns)
}

// ContactY is the ball-center y at which a side's paddle line is reached
func (b Board) ContactY(s Side) float64 {
	if s == SideTop {
		return b.Bounds.TopY
	}
	return b.Bounds.BottomY
}

// SideOf maps a paddle event to its side
func SideOf(kind physics.EventKind) Side {
	if kind == physics.EventPaddleTop {
		return SideTop
	}
	return SideBottom
}
