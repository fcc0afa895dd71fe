package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually stepped clock for deterministic tests
// Time only moves when Advance is called
type MockTimeProvider struct {
	base    time.Time
	elapsed atomic.Int64
}

// NewMockTimeProvider creates a clock reading start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: start}
}

// Now returns the stepped time
func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.elapsed.Load()))
}

// Advance moves the clock forward by d and returns the new time
// Negative steps are ignored; game time never rewinds
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	if d > 0 {
		m.elapsed.Add(int64(d))
	}
	return m.Now()
}
