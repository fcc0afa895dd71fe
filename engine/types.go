package engine

// Side identifies a paddle line
type Side uint8

const (
	SideTop Side = iota
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SideTop {
		return SideBottom
	}
	return SideTop
}

// Away is the vertical direction leaving this side's paddle (+1 down, -1 up)
func (s Side) Away() float64 {
	if s == SideTop {
		return 1
	}
	return -1
}

// Phase is the round state
type Phase uint8

const (
	PhasePreServe Phase = iota
	PhaseRally
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePreServe:
		return "PreServe"
	case PhaseRally:
		return "Rally"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Paddle is a side's column-discretized paddle
// Center may overhang the board edges; Width is odd
type Paddle struct {
	Center int
	Width  int
}

// Half returns the half-width in columns
func (p Paddle) Half() int {
	return p.Width / 2
}

// Covers reports whether column c lies within the paddle span
func (p Paddle) Covers(c int) bool {
	h := p.Half()
	return c >= p.Center-h && c <= p.Center+h
}

// Scoreboard persists across rallies until reset
type Scoreboard struct {
	Top    int
	Bottom int
}

// Of returns the score of side s
func (sb Scoreboard) Of(s Side) int {
	if s == SideTop {
		return sb.Top
	}
	return sb.Bottom
}

func (sb *Scoreboard) add(s Side) {
	if s == SideTop {
		sb.Top++
	} else {
		sb.Bottom++
	}
}

// Rally is the context of one rally leg, created at serve or bounce and
// discarded at the next bounce or point
type Rally struct {
	Attacker Side
	Defender Side

	// Predicted is the defender-line impact column, nil when the impact
	// could not be predicted
	Predicted *int

	// Distance is the paddle travel in columns encoded by the prompt
	Distance int

	// Origin is the defender's center column when the leg began
	Origin int

	// Direction is the column step per typed character (-1 or +1)
	Direction int
}

// HasPrediction reports whether collision authority uses the typed progress
func (r *Rally) HasPrediction() bool {
	return r != nil && r.Predicted != nil
}
