package engine

import (
	"time"

	"github.com/lixenwraith/type-pong/physics"
	"github.com/lixenwraith/type-pong/vmath"
)

// Animator holds the single live segment and interpolates along it
type Animator struct {
	seg     physics.Segment
	started time.Time
	live    bool
}

// Start replaces the live segment; degenerate segments are not animated
func (a *Animator) Start(seg physics.Segment, at time.Time) bool {
	a.seg = seg
	a.started = at
	a.live = !seg.IsDegenerate()
	return a.live
}

// Stop drops the live segment
func (a *Animator) Stop() {
	a.live = false
}

// Live reports whether a segment is being animated
func (a *Animator) Live() bool {
	return a.live
}

// Segment returns the current segment
func (a *Animator) Segment() physics.Segment {
	return a.seg
}

// Progress returns the clamped fraction of the segment elapsed at now
func (a *Animator) Progress(now time.Time) float64 {
	if a.seg.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(a.started).Seconds()
	return vmath.Clamp(elapsed/a.seg.Duration, 0, 1)
}

// Sample returns the interpolated position at now
func (a *Animator) Sample(now time.Time) vmath.Vec2 {
	return vmath.Lerp(a.seg.Start, a.seg.End, a.Progress(now))
}

// Due reports whether the live segment has reached its event
func (a *Animator) Due(now time.Time) bool {
	return a.live && now.Sub(a.started).Seconds() >= a.seg.Duration
}

// EndTime is the instant the segment's event occurs
func (a *Animator) EndTime() time.Time {
	return a.started.Add(time.Duration(a.seg.Duration * float64(time.Second)))
}
