package physics

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/type-pong/vmath"
)

var testBounds = NewBounds(0.05, 0.95, 0.01)

func TestPlan_RandomNonDegenerateHasOneEvent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		pos := vmath.V2(
			testBounds.MinX+rng.Float64()*testBounds.Width(),
			testBounds.TopY+rng.Float64()*testBounds.Span(),
		)
		vel := vmath.V2((rng.Float64()-0.5)*4, (rng.Float64()-0.5)*4)
		if vel.IsZero() {
			continue
		}

		seg := Plan(pos, vel, testBounds)
		if seg.Event.Kind == EventNone {
			// Only possible when sitting exactly on every boundary it moves toward
			t.Fatalf("pos=%v vel=%v: expected an event", pos, vel)
		}
		if seg.Event.Time <= 0 {
			t.Fatalf("pos=%v vel=%v: non-positive event time %v", pos, vel, seg.Event.Time)
		}
		if seg.Duration != seg.Event.Time {
			t.Fatalf("duration %v != event time %v", seg.Duration, seg.Event.Time)
		}
		want := pos.Add(vel.Scale(seg.Duration))
		if seg.End != want {
			t.Fatalf("end = %v, want %v", seg.End, want)
		}
	}
}

func TestPlan_ZeroVelocityIsDegenerate(t *testing.T) {
	seg := Plan(vmath.V2(0.5, 0.5), vmath.Vec2{}, testBounds)
	if !seg.IsDegenerate() {
		t.Errorf("zero velocity produced event %v", seg.Event.Kind)
	}
	if seg.Duration != 0 {
		t.Errorf("duration = %v, want 0", seg.Duration)
	}
}

func TestPlan_DiscardsJustResolvedBoundary(t *testing.T) {
	// Sitting on the right wall after reflection, moving left and down
	pos := vmath.V2(testBounds.MaxX, 0.5)
	vel := vmath.V2(-0.5, 0.1)
	seg := Plan(pos, vel, testBounds)
	if seg.Event.Kind == EventWallRight {
		t.Fatal("re-triggered the wall just resolved")
	}

	// Sitting on the right wall moving further right has nothing ahead but the paddle line
	seg = Plan(pos, vmath.V2(0.5, 0.1), testBounds)
	if seg.Event.Kind != EventPaddleBottom {
		t.Errorf("event = %v, want paddle-bottom", seg.Event.Kind)
	}
}

// Scenario: 20-column board, ball at x=0.5 aimed to cross the right wall before the defender line
func TestPlan_SelectsWallBeforePaddle(t *testing.T) {
	b := NewBounds(0.05, 0.95, 0.5/20/2)
	pos := vmath.V2(0.5, 0.5)
	vel := vmath.V2(1.0, 0.2)

	seg := Plan(pos, vel, b)
	if seg.Event.Kind != EventWallRight {
		t.Fatalf("event = %v, want wall-right", seg.Event.Kind)
	}

	end := SnapToEvent(seg.End, seg.Event.Kind, b)
	if end.X != b.MaxX {
		t.Errorf("snapped x = %v, want %v", end.X, b.MaxX)
	}

	reflected := ReflectWall(vel, seg.Event.Kind)
	if reflected.X != -vel.X || reflected.Y != vel.Y {
		t.Errorf("reflected = %v, want {%v %v}", reflected, -vel.X, vel.Y)
	}

	next := Plan(end, reflected, b)
	if next.Velocity.X >= 0 {
		t.Errorf("next segment vx = %v, want negative", next.Velocity.X)
	}
	if next.Velocity.Y != vel.Y {
		t.Errorf("next segment vy = %v, want %v", next.Velocity.Y, vel.Y)
	}
	if next.Start != end {
		t.Errorf("next segment starts at %v, want prior boundary point %v", next.Start, end)
	}
}

func TestPlan_PaddleWinsExactTie(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 1, TopY: 0, BottomY: 1}
	seg := Plan(vmath.V2(0.5, 0.5), vmath.V2(1, 1), b)
	if seg.Event.Kind != EventPaddleBottom {
		t.Errorf("event = %v, want paddle-bottom on tie", seg.Event.Kind)
	}
}

func TestSettleX(t *testing.T) {
	pos, vel := SettleX(vmath.V2(1.2, 0.1), vmath.V2(0.3, 0.4), testBounds)
	if pos.X != testBounds.MaxX {
		t.Errorf("x = %v, want %v", pos.X, testBounds.MaxX)
	}
	if vel.X >= 0 {
		t.Errorf("vx = %v, want reflected inward", vel.X)
	}

	pos, vel = SettleX(vmath.V2(0.5, 0.1), vmath.V2(0.3, 0.4), testBounds)
	if pos.X != 0.5 || vel.X != 0.3 {
		t.Errorf("interior ball changed: pos=%v vel=%v", pos, vel)
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventNone, "none"},
		{EventWallLeft, "wall-left"},
		{EventWallRight, "wall-right"},
		{EventPaddleTop, "paddle-top"},
		{EventPaddleBottom, "paddle-bottom"},
		{EventKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
