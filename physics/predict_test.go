package physics

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/type-pong/vmath"
)

// simulateWalls advances x by bouncing between walls leg by leg
func simulateWalls(x, vx, total float64, b Bounds) float64 {
	remaining := total
	for remaining > 0 {
		var tw float64
		switch {
		case vx > 0:
			tw = (b.MaxX - x) / vx
		case vx < 0:
			tw = (b.MinX - x) / vx
		default:
			return x
		}
		if tw >= remaining {
			return x + vx*remaining
		}
		x += vx * tw
		remaining -= tw
		vx = -vx
	}
	return x
}

// simulateFixedStep advances x with a fixed dt, reflecting on overshoot
func simulateFixedStep(x, vx, total float64, b Bounds) float64 {
	const dt = 1e-5
	steps := int(total / dt)
	for i := 0; i < steps; i++ {
		x += vx * dt
		if x > b.MaxX {
			x = 2*b.MaxX - x
			vx = -vx
		} else if x < b.MinX {
			x = 2*b.MinX - x
			vx = -vx
		}
	}
	return x + vx*(total-float64(steps)*dt)
}

func TestPredictX_MatchesStepSimulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		x0 := testBounds.MinX + rng.Float64()*testBounds.Width()
		vx := (rng.Float64() - 0.5) * 6
		total := rng.Float64() * 10

		got := PredictX(x0, vx, total, testBounds)
		want := simulateWalls(x0, vx, total, testBounds)
		if !vmath.Approx(got, want, 1e-7) {
			t.Fatalf("x0=%v vx=%v T=%v: fold=%v sim=%v", x0, vx, total, got, want)
		}
	}
}

func TestPredictX_MatchesFixedStep(t *testing.T) {
	cases := []struct{ x0, vx, total float64 }{
		{0.5, 1.3, 2.0},
		{0.2, -0.7, 3.5},
		{0.9, 2.1, 1.1},
	}
	for _, c := range cases {
		got := PredictX(c.x0, c.vx, c.total, testBounds)
		want := simulateFixedStep(c.x0, c.vx, c.total, testBounds)
		if !vmath.Approx(got, want, 1e-3) {
			t.Errorf("%+v: fold=%v fixed-step=%v", c, got, want)
		}
	}
}

func TestTimeToLine(t *testing.T) {
	pos := vmath.V2(0.5, 0.5)
	if got := TimeToLine(pos, vmath.V2(0, 0.5), 0.9); !vmath.Approx(got, 0.8, 1e-12) {
		t.Errorf("TimeToLine = %v, want 0.8", got)
	}
	if got := TimeToLine(pos, vmath.V2(0, -0.5), 0.9); got > 0 {
		t.Errorf("moving away should be non-positive, got %v", got)
	}
	if got := TimeToLine(pos, vmath.V2(1, 0), 0.9); got != 0 {
		t.Errorf("horizontal motion should be 0, got %v", got)
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		x    float64
		n    int
		want int
	}{
		{0.0, 20, 0},
		{0.025, 20, 0},
		{0.049, 20, 0},
		{0.051, 20, 1},
		{0.5, 20, 10},
		{0.999, 20, 19},
		{1.5, 20, 19},
	}
	for _, tt := range tests {
		if got := ColumnOf(tt.x, tt.n); got != tt.want {
			t.Errorf("ColumnOf(%v, %d) = %d, want %d", tt.x, tt.n, got, tt.want)
		}
	}

	for c := 0; c < 20; c++ {
		if got := ColumnOf(ColumnX(c, 20), 20); got != c {
			t.Errorf("round trip column %d -> %d", c, got)
		}
	}
}
