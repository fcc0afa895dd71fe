package physics

import (
	"math"

	"github.com/lixenwraith/type-pong/vmath"
)

// EventKind tags the boundary a segment ends on
type EventKind uint8

const (
	EventNone EventKind = iota
	EventWallLeft
	EventWallRight
	EventPaddleTop
	EventPaddleBottom
)

var eventNames = [...]string{"none", "wall-left", "wall-right", "paddle-top", "paddle-bottom"}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// IsWall reports whether the event is a side wall crossing
func (k EventKind) IsWall() bool {
	return k == EventWallLeft || k == EventWallRight
}

// IsPaddle reports whether the event is a paddle line crossing
func (k EventKind) IsPaddle() bool {
	return k == EventPaddleTop || k == EventPaddleBottom
}

// Event is the next boundary crossing and the time to reach it in seconds
type Event struct {
	Kind EventKind
	Time float64
}

// Segment is one planned motion leg between two boundary events
// Immutable once planned; the animator replaces it at completion
type Segment struct {
	Start    vmath.Vec2
	End      vmath.Vec2
	Velocity vmath.Vec2
	Duration float64
	Event    Event
}

// IsDegenerate reports a zero-duration eventless segment that must not be animated
func (s Segment) IsDegenerate() bool {
	return s.Event.Kind == EventNone
}

// Bounds are the ball-center limits: walls inset by the ball radius and
// paddle contact lines offset by the radius toward the board interior
type Bounds struct {
	MinX, MaxX float64
	TopY       float64
	BottomY    float64
}

// NewBounds derives ball-center bounds from paddle line y's and ball radius
func NewBounds(topLine, bottomLine, radius float64) Bounds {
	return Bounds{
		MinX:    radius,
		MaxX:    1 - radius,
		TopY:    topLine + radius,
		BottomY: bottomLine - radius,
	}
}

// Width is the horizontal travel range of the ball center
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Span is the vertical distance between the two paddle contact lines
func (b Bounds) Span() float64 {
	return b.BottomY - b.TopY
}

// Plan computes the next boundary event from pos moving at vel
// Times at or below vmath.Epsilon are discarded so the event just resolved
// at pos does not re-trigger. Paddle events win exact ties with walls
func Plan(pos, vel vmath.Vec2, b Bounds) Segment {
	best := Event{Kind: EventNone, Time: math.Inf(1)}

	consider := func(kind EventKind, t float64, tieWins bool) {
		if t <= vmath.Epsilon || math.IsNaN(t) || math.IsInf(t, 0) {
			return
		}
		if t < best.Time || (tieWins && t == best.Time) {
			best = Event{Kind: kind, Time: t}
		}
	}

	switch {
	case vel.X > 0:
		consider(EventWallRight, (b.MaxX-pos.X)/vel.X, false)
	case vel.X < 0:
		consider(EventWallLeft, (b.MinX-pos.X)/vel.X, false)
	}

	switch {
	case vel.Y > 0:
		consider(EventPaddleBottom, (b.BottomY-pos.Y)/vel.Y, true)
	case vel.Y < 0:
		consider(EventPaddleTop, (b.TopY-pos.Y)/vel.Y, true)
	}

	if best.Kind == EventNone {
		return Segment{Start: pos, End: pos, Velocity: vel}
	}

	return Segment{
		Start:    pos,
		End:      pos.Add(vel.Scale(best.Time)),
		Velocity: vel,
		Duration: best.Time,
		Event:    best,
	}
}

// SnapToEvent removes floating overshoot from a segment endpoint by placing
// the crossed coordinate exactly on its boundary
func SnapToEvent(p vmath.Vec2, kind EventKind, b Bounds) vmath.Vec2 {
	switch kind {
	case EventWallLeft:
		p.X = b.MinX
	case EventWallRight:
		p.X = b.MaxX
	case EventPaddleTop:
		p.Y = b.TopY
	case EventPaddleBottom:
		p.Y = b.BottomY
	}
	return p
}

// ReflectWall flips the velocity component belonging to a wall event
func ReflectWall(vel vmath.Vec2, kind EventKind) vmath.Vec2 {
	if kind.IsWall() {
		return vel.ReflectX()
	}
	return vel
}

// SettleX keeps a repositioned ball inside the wall bounds and turns a
// velocity pointing out through a wall it already touches back inward
func SettleX(pos, vel vmath.Vec2, b Bounds) (vmath.Vec2, vmath.Vec2) {
	pos.X = vmath.Clamp(pos.X, b.MinX, b.MaxX)
	if pos.X >= b.MaxX-vmath.Epsilon && vel.X > 0 {
		vel.X = -vel.X
	}
	if pos.X <= b.MinX+vmath.Epsilon && vel.X < 0 {
		vel.X = -vel.X
	}
	return pos, vel
}
