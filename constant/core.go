package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering and simulation frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// CountdownTickInterval is the serve countdown display tick
	CountdownTickInterval = time.Second

	// EventChannelSize is the buffered capacity between the terminal poller and the game loop
	EventChannelSize = 256

	// GameEventQueueSize is the initial capacity of the per-frame game event queue
	GameEventQueueSize = 16
)

// Logging
const (
	// LogDir is the directory debug logs are written to
	LogDir = "logs"

	// LogFileName is the active debug log file
	LogFileName = "type-pong.log"

	// MaxLogSize triggers rotation of the active log file (10MB)
	MaxLogSize = 10 * 1024 * 1024
)
