package physics

import (
	"math"

	"github.com/lixenwraith/type-pong/vmath"
)

// TimeToLine returns the time for pos moving at vel.Y to reach y
// Non-positive or non-finite results mean the line is never reached
func TimeToLine(pos, vel vmath.Vec2, y float64) float64 {
	if vel.Y == 0 {
		return 0
	}
	t := (y - pos.Y) / vel.Y
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	return t
}

// PredictX returns the ball-center x after t seconds of wall-bounce motion
// Folds the free-running coordinate over a period of twice the travel width
func PredictX(x0, vx, t float64, b Bounds) float64 {
	return vmath.Fold(x0+vx*t, b.MinX, b.MaxX)
}

// ColumnOf returns the nearest column index for a normalized x on an n-column board
func ColumnOf(x float64, n int) int {
	if n <= 0 {
		return 0
	}
	c := int(math.Round(x*float64(n) - 0.5))
	return vmath.ClampInt(c, 0, n-1)
}

// ColumnX returns the normalized x of a column center; c may lie off-board
func ColumnX(c, n int) float64 {
	if n <= 0 {
		return 0.5
	}
	return (float64(c) + 0.5) / float64(n)
}
