package engine

import (
	"sort"
	"time"
)

// TimerID identifies a scheduled callback; zero is never issued
type TimerID uint64

type timer struct {
	id       TimerID
	deadline time.Time
	interval time.Duration
	fn       func(now time.Time)
}

// Scheduler is a cooperative single-threaded callback queue
// Only the owning goroutine calls Advance; callbacks run inside Advance and
// may schedule or cancel freely. At most one frame callback is outstanding
type Scheduler struct {
	now    time.Time
	nextID TimerID
	timers map[TimerID]*timer

	frame   func(now time.Time)
	frameID TimerID
}

// NewScheduler creates a scheduler whose clock starts at start
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{
		now:    start,
		timers: make(map[TimerID]*timer),
	}
}

// Now returns the time of the last Advance
func (s *Scheduler) Now() time.Time {
	return s.now
}

func (s *Scheduler) issue() TimerID {
	s.nextID++
	return s.nextID
}

// Every runs fn each interval until cancelled
func (s *Scheduler) Every(interval time.Duration, fn func(now time.Time)) TimerID {
	if interval <= 0 {
		return 0
	}
	id := s.issue()
	s.timers[id] = &timer{id: id, deadline: s.now.Add(interval), interval: interval, fn: fn}
	return id
}

// Cancel removes a timer, reports whether it was pending
func (s *Scheduler) Cancel(id TimerID) bool {
	if _, ok := s.timers[id]; ok {
		delete(s.timers, id)
		return true
	}
	return false
}

// RequestFrame arms fn for the next Advance, replacing any pending frame callback
func (s *Scheduler) RequestFrame(fn func(now time.Time)) TimerID {
	s.frame = fn
	s.frameID = s.issue()
	return s.frameID
}

// CancelFrame drops the pending frame callback, reports whether one was armed
func (s *Scheduler) CancelFrame() bool {
	armed := s.frame != nil
	s.frame = nil
	s.frameID = 0
	return armed
}

// FramePending reports whether a frame callback is armed
func (s *Scheduler) FramePending() bool {
	return s.frame != nil
}

// Pending returns the number of armed timers, excluding the frame callback
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance moves the clock to now, runs due timers in deadline order, then
// the frame callback armed before this call unless a timer cancelled or
// replaced it. Frames requested during this Advance run on the next one.
// A clock moving backwards is ignored
func (s *Scheduler) Advance(now time.Time) {
	if now.Before(s.now) {
		now = s.now
	}
	s.now = now

	armed, armedID := s.frame, s.frameID

	due := make([]*timer, 0, len(s.timers))
	for _, t := range s.timers {
		if !t.deadline.After(now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].id < due[j].id
		}
		return due[i].deadline.Before(due[j].deadline)
	})

	for _, t := range due {
		// Cancelled by an earlier callback in this batch
		if _, ok := s.timers[t.id]; !ok {
			continue
		}
		t.deadline = t.deadline.Add(t.interval)
		if !t.deadline.After(now) {
			t.deadline = now.Add(t.interval)
		}
		t.fn(now)
	}

	// A timer may have cancelled or replaced the armed frame
	if armed == nil || s.frameID != armedID {
		return
	}
	s.frame = nil
	s.frameID = 0
	armed(now)
}
