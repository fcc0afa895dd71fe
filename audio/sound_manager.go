package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/type-pong/constant"
	"github.com/lixenwraith/type-pong/engine"
)

// SoundManager plays game cues through the beep speaker
// It listens to drained game events and never touches game state
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [soundTypeCount]time.Time
	now         func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the speaker; safe to call more than once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close; an empty mixer leaves no artifacts
	sm.initialized = false
}

// SetMuted toggles output without releasing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues a cue; calls closer than MinSoundGap for the same type are dropped
func (sm *SoundManager) Play(st SoundType, rel int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || st < 0 || st >= soundTypeCount {
		return false
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < constant.MinSoundGap {
		return false
	}

	streamer := GetSoundEffect(st, rel, sm.cfg)
	if streamer == nil {
		return false
	}
	sm.lastPlayed[st] = now

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// OnGameEvent maps game events to cues
func (sm *SoundManager) OnGameEvent(ev engine.Event) {
	if st, ok := SoundFor(ev.Type); ok {
		sm.Play(st, ev.Rel)
	}
}

// SoundFor returns the cue for a game event type, false for silent events
func SoundFor(t engine.EventType) (SoundType, bool) {
	switch t {
	case engine.EventServe:
		return SoundServe, true
	case engine.EventWallBounce:
		return SoundWall, true
	case engine.EventPaddleHit:
		return SoundPaddle, true
	case engine.EventMiss:
		return SoundMiss, true
	case engine.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}
