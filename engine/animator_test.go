package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/type-pong/physics"
	"github.com/lixenwraith/type-pong/vmath"
)

func TestAnimator_SampleAlongSegment(t *testing.T) {
	b := physics.NewBounds(0.1, 0.9, 0)
	seg := physics.Plan(vmath.V2(0.5, 0.5), vmath.V2(0, 0.2), b)
	if seg.Event.Kind != physics.EventPaddleBottom {
		t.Fatalf("Expected paddle-bottom event, got %s", seg.Event.Kind)
	}

	var a Animator
	if !a.Start(seg, testStart) {
		t.Fatal("Expected non-degenerate segment to go live")
	}

	// 0.4 units at 0.2/s
	if math.Abs(seg.Duration-2) > 1e-9 {
		t.Fatalf("Expected duration 2s, got %v", seg.Duration)
	}

	mid := a.Sample(testStart.Add(time.Second))
	if math.Abs(mid.Y-0.7) > 1e-9 || mid.X != 0.5 {
		t.Errorf("Expected midpoint (0.5, 0.7), got %v", mid)
	}

	if a.Due(testStart.Add(1999 * time.Millisecond)) {
		t.Error("Segment should not be due before its duration")
	}
	if !a.Due(testStart.Add(2001 * time.Millisecond)) {
		t.Error("Segment should be due once its duration has elapsed")
	}

	// Sampling past the end clamps to the endpoint
	past := a.Sample(testStart.Add(5 * time.Second))
	if math.Abs(past.Y-0.9) > 1e-9 {
		t.Errorf("Expected clamped y 0.9, got %v", past.Y)
	}

	if d := a.EndTime().Sub(testStart.Add(2 * time.Second)); d < -time.Microsecond || d > time.Microsecond {
		t.Errorf("Expected end time near %v, got %v", testStart.Add(2*time.Second), a.EndTime())
	}
}

func TestAnimator_DegenerateNotLive(t *testing.T) {
	b := physics.NewBounds(0.1, 0.9, 0)
	seg := physics.Plan(vmath.V2(0.5, 0.5), vmath.Vec2{}, b)

	var a Animator
	if a.Start(seg, testStart) {
		t.Error("Degenerate segment should not go live")
	}
	if a.Due(testStart.Add(time.Hour)) {
		t.Error("Non-live animator is never due")
	}
	if a.Progress(testStart) != 1 {
		t.Errorf("Zero-duration progress should be 1, got %v", a.Progress(testStart))
	}
}
