package audio

import (
	"errors"

	"github.com/lixenwraith/type-pong/constant"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundServe    SoundType = iota // Ball launched
	SoundWall                      // Side wall bounce
	SoundPaddle                    // Paddle hit, pitch rises toward the edge
	SoundMiss                      // Defender missed
	SoundGameOver                  // Match decided
	soundTypeCount
)

var soundNames = [...]string{"serve", "wall", "paddle", "miss", "gameover"}

func (s SoundType) String() string {
	if s >= 0 && int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// AudioConfig holds output and per-effect volume settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundServe:    0.6,
			SoundWall:     0.4,
			SoundPaddle:   0.8,
			SoundMiss:     0.7,
			SoundGameOver: 0.8,
		},
		SampleRate: constant.AudioSampleRate,
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
)
