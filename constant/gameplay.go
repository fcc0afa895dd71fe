package constant

import "time"

// Board
const (
	// MinColumns is the smallest configurable board width in columns
	MinColumns = 8

	// MaxColumns is the largest configurable board width in columns
	MaxColumns = 50

	// DefaultColumns is the board width when unconfigured
	DefaultColumns = 20

	// DefaultPaddleWidth is the paddle width in columns, always odd
	DefaultPaddleWidth = 5

	// TopPaddleLine is the normalized y of the top paddle line
	TopPaddleLine = 0.08

	// BottomPaddleLine is the normalized y of the bottom paddle line
	BottomPaddleLine = 0.92

	// BallRadius is the normalized ball radius, kept below half a column on the widest board
	BallRadius = 0.005
)

// Speed
const (
	// MinStartTravelTime is the lower bound of the configurable starting travel time (seconds)
	MinStartTravelTime = 1.0

	// MaxStartTravelTime is the upper bound of the configurable starting travel time (seconds)
	MaxStartTravelTime = 10.0

	// DefaultTravelTime is the starting time for the ball to cross the vertical span (seconds)
	DefaultTravelTime = 4.0

	// DefaultMinTravelTime is the floor the rally speed-up stops at (seconds)
	DefaultMinTravelTime = 1.0

	// DefaultTravelTimeStep is subtracted from the travel time on every paddle hit (seconds)
	DefaultTravelTimeStep = 0.25
)

// Scoring
const (
	// MinMaxPoints and MaxMaxPoints bound a finite points target
	MinMaxPoints = 3
	MaxMaxPoints = 11

	// UnlimitedPoints disables game over
	UnlimitedPoints = 0

	// DefaultMaxPoints is the points target when unconfigured
	DefaultMaxPoints = 5
)

// Serve and Prompt
const (
	// DefaultServeCountdown auto-launches the serve after this much idle time
	DefaultServeCountdown = 30 * time.Second

	// FallbackPromptDistance is the prompt distance used when the impact cannot be predicted
	FallbackPromptDistance = 3

	// ServeWordMinLength and ServeWordMaxLength bound the serve word the attacker types
	ServeWordMinLength = 3
	ServeWordMaxLength = 6
)

// Rendering
const (
	// PaddleEaseRate is the fraction of the remaining distance a rendered paddle closes per frame
	PaddleEaseRate = 0.35
)
