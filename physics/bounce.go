package physics

import (
	"math"

	"github.com/lixenwraith/type-pong/vmath"
)

// Bounce slopes (vertical:horizontal speed ratio after a paddle hit)
const (
	SlopeCenter  = 3.0
	SlopeNear    = 1.0
	SlopeShallow = 0.5
	SlopeServe   = 1.0
)

// RelativeColumns returns the rounded hit offset from the paddle center,
// clamped to the paddle half-width
func RelativeColumns(impact, center float64, half int) int {
	rel := int(math.Round(impact - center))
	return vmath.ClampInt(rel, -half, half)
}

// SlopeFor maps a hit offset in columns to the bounce slope
func SlopeFor(rel int) float64 {
	switch vmath.AbsInt(rel) {
	case 0:
		return SlopeCenter
	case 1:
		return SlopeNear
	default:
		return SlopeShallow
	}
}

// VerticalSpeed is the speed that crosses the vertical span in travelTime seconds
func VerticalSpeed(b Bounds, travelTime float64) float64 {
	if travelTime <= 0 {
		return 0
	}
	return b.Span() / travelTime
}

// Bounce computes the post-hit velocity
// away is the vertical direction leaving the paddle (+1 down, -1 up)
// A center hit keeps the previous horizontal sign, or takes coin() when it was zero;
// off-center hits follow the sign of rel
func Bounce(rel int, prev vmath.Vec2, away, vSpeed float64, coin func() bool) vmath.Vec2 {
	slope := SlopeFor(rel)
	hSpeed := vSpeed / slope

	var hSign float64
	if rel == 0 {
		hSign = vmath.Sign(prev.X)
		if hSign == 0 {
			hSign = 1
			if coin != nil && coin() {
				hSign = -1
			}
		}
	} else {
		hSign = float64(vmath.SignInt(rel))
	}

	return vmath.Vec2{
		X: hSign * hSpeed,
		Y: vmath.Sign(away) * vSpeed,
	}
}

// Serve computes the launch velocity: fixed serve slope, horizontal sign
// from coin, vertical sign toward the defender
func Serve(toward, vSpeed float64, coin func() bool) vmath.Vec2 {
	hSign := 1.0
	if coin != nil && coin() {
		hSign = -1
	}
	return vmath.Vec2{
		X: hSign * vSpeed / SlopeServe,
		Y: vmath.Sign(toward) * vSpeed,
	}
}
