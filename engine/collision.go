package engine

import (
	"github.com/lixenwraith/type-pong/physics"
	"github.com/lixenwraith/type-pong/vmath"
)

// resolveCollision settles a paddle-line event for side at the snapped point end
// Typed progress is read at this instant. On a miss the point is awarded here
// and scored is true; the caller must not replan
func (g *Game) resolveCollision(side Side, end, vel vmath.Vec2) (pos, next vmath.Vec2, scored bool) {
	half := g.board.Half()
	pos = end

	var hit bool
	var rel int
	if g.rally.HasPrediction() && g.rally.Defender == side {
		predicted := *g.rally.Predicted
		virtual := predicted + (g.tracker.Typed() - g.rally.Distance)
		hit = vmath.AbsInt(predicted-virtual) <= half
		rel = physics.RelativeColumns(float64(predicted), float64(virtual), half)
		pos.X = g.board.ColumnX(predicted)
	} else {
		paddle := g.paddles[side]
		col := g.board.ColumnOf(end.X)
		hit = paddle.Covers(col)
		rel = physics.RelativeColumns(float64(col), float64(paddle.Center), half)
	}

	if !hit {
		g.anim.Stop()
		g.ballPos = end
		g.ballVel = vmath.Vec2{}
		g.emit(Event{Type: EventMiss, Side: side})
		g.AwardPoint(side.Opposite())
		return end, vmath.Vec2{}, true
	}

	g.travelTime = max(g.travelTime-g.cfg.TravelTimeStep, g.board.MinTravelTime)
	vSpeed := physics.VerticalSpeed(g.board.Bounds, g.travelTime)
	next = physics.Bounce(rel, vel, side.Away(), vSpeed, g.coin)
	pos, next = physics.SettleX(pos, next, g.board.Bounds)

	g.emit(Event{Type: EventPaddleHit, Side: side, Rel: rel})
	g.beginLeg(pos, next, side)
	return pos, next, false
}
