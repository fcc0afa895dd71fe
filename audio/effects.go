package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/type-pong/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave, optionally gliding in pitch
type oscillator struct {
	freq     float64
	glide    float64 // Hz per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, 0, duration, wave, rate)
}

// NewGlide creates an oscillator whose frequency changes linearly by glide Hz/s
func NewGlide(freq, glide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		glide:    glide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := max(o.freq+o.glide*t, 0)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a beep volume effect; zero or less is silent
// since math.Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateServeSound generates a rising two-note square chirp
func CreateServeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5 then A5
	n1 := NewOscillator(659.25, constant.ServeSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constant.ServeSoundNote1Duration, constant.ServeSoundAttack, constant.ServeSoundRelease, rate)
	n2 := NewOscillator(880.0, constant.ServeSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constant.ServeSoundNote2Duration, constant.ServeSoundAttack, constant.ServeSoundRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundServe))
}

// CreateWallSound generates a short dull tick
func CreateWallSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(330.0, constant.WallSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constant.WallSoundDuration, constant.WallSoundAttack, constant.WallSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundWall))
}

// CreatePaddleSound generates the hit blip; rel is the hit offset in columns
// A centered hit is lowest, edge hits climb a fifth per column
func CreatePaddleSound(cfg *AudioConfig, rel int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	offset := math.Abs(float64(rel))
	freq := 523.25 * math.Pow(1.5, offset)

	fund := NewOscillator(freq, constant.PaddleSoundDuration, WaveSquare, rate)
	fundShaped := NewEnvelope(fund, constant.PaddleSoundDuration, constant.PaddleSoundAttack, constant.PaddleSoundRelease, rate)
	over := NewOscillator(freq*2, constant.PaddleSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constant.PaddleSoundDuration, constant.PaddleSoundAttack, constant.PaddleSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.6),
		newVolume(overShaped, 0.3),
	)
	return newVolume(beep.Take(rate.N(constant.PaddleSoundDuration), mixed), effectVolume(cfg, SoundPaddle))
}

// CreateMissSound generates a falling saw buzz
func CreateMissSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewGlide(220.0, -400.0, constant.MissSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constant.MissSoundDuration, constant.MissSoundAttack, constant.MissSoundRelease, rate)
	noise := NewOscillator(0, constant.MissSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constant.MissSoundDuration, constant.MissSoundAttack, constant.MissSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(shaped, 0.7),
		newVolume(noiseShaped, 0.15),
	)
	return newVolume(beep.Take(rate.N(constant.MissSoundDuration), mixed), effectVolume(cfg, SoundMiss))
}

// CreateGameOverSound generates a three-note descending arpeggio
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// C6, G5, C5
	freqs := []float64{1046.5, 783.99, 523.25}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		osc := NewOscillator(f, constant.GameOverNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, constant.GameOverNoteDuration, constant.GameOverAttack, constant.GameOverRelease, rate))
	}

	return newVolume(beep.Seq(notes...), effectVolume(cfg, SoundGameOver))
}

// GetSoundEffect returns the streamer for soundType; rel only affects paddle hits
func GetSoundEffect(soundType SoundType, rel int, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundServe:
		return CreateServeSound(cfg)
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundPaddle:
		return CreatePaddleSound(cfg, rel)
	case SoundMiss:
		return CreateMissSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
