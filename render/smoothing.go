package render

import (
	"math"

	"github.com/lixenwraith/type-pong/constant"
)

// PaddleEaser smooths a rendered paddle center toward its authoritative column
// Display only; collision never reads it
type PaddleEaser struct {
	pos    float64
	rate   float64
	primed bool
}

// NewPaddleEaser creates an easer closing rate of the remaining gap per frame
// A rate outside (0,1] falls back to the default
func NewPaddleEaser(rate float64) *PaddleEaser {
	if rate <= 0 || rate > 1 {
		rate = constant.PaddleEaseRate
	}
	return &PaddleEaser{rate: rate}
}

// Step advances one frame toward target and returns the rendered center
func (e *PaddleEaser) Step(target int) float64 {
	t := float64(target)
	if !e.primed {
		e.pos = t
		e.primed = true
		return e.pos
	}
	e.pos += (t - e.pos) * e.rate
	// Snap once within a twentieth of a column
	if math.Abs(t-e.pos) < 0.05 {
		e.pos = t
	}
	return e.pos
}

// Snap jumps straight to target, used on reset and config changes
func (e *PaddleEaser) Snap(target int) {
	e.pos = float64(target)
	e.primed = true
}

// Position returns the current rendered center
func (e *PaddleEaser) Position() float64 {
	return e.pos
}
