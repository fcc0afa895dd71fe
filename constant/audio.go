package constant

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two cues of the same type
	MinSoundGap = 40 * time.Millisecond
)

// Serve Sound Timing
const (
	ServeSoundNote1Duration = 60 * time.Millisecond
	ServeSoundNote2Duration = 120 * time.Millisecond
	ServeSoundAttack        = 5 * time.Millisecond
	ServeSoundRelease       = 40 * time.Millisecond
)

// Wall Sound Timing
const (
	WallSoundDuration = 40 * time.Millisecond
	WallSoundAttack   = 2 * time.Millisecond
	WallSoundRelease  = 25 * time.Millisecond
)

// Paddle Sound Timing
const (
	PaddleSoundDuration = 90 * time.Millisecond
	PaddleSoundAttack   = 3 * time.Millisecond
	PaddleSoundRelease  = 60 * time.Millisecond
)

// Miss Sound Timing
const (
	MissSoundDuration = 250 * time.Millisecond
	MissSoundAttack   = 5 * time.Millisecond
	MissSoundRelease  = 120 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverNoteDuration = 160 * time.Millisecond
	GameOverAttack       = 5 * time.Millisecond
	GameOverRelease      = 90 * time.Millisecond
)
