package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 metric stored as IEEE bits; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
	set  atomic.Bool
}

// Set stores v
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
	g.set.Store(true)
}

// Get loads the current value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Lower stores v if the gauge is unset or v is below the current value
// Reports whether v was stored
func (g *Gauge) Lower(v float64) bool {
	for {
		old := g.bits.Load()
		if g.set.Load() && math.Float64frombits(old) <= v {
			return false
		}
		if g.bits.CompareAndSwap(old, math.Float64bits(v)) {
			g.set.Store(true)
			return true
		}
	}
}
