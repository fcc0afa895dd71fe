package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/type-pong/audio"
	"github.com/lixenwraith/type-pong/config"
	"github.com/lixenwraith/type-pong/constant"
	"github.com/lixenwraith/type-pong/engine"
	"github.com/lixenwraith/type-pong/input"
	"github.com/lixenwraith/type-pong/render"
	"github.com/lixenwraith/type-pong/status"
)

// errQuit ends the game loop on a quit intent
var errQuit = errors.New("quit")

// app is the single owner of the game: every Game call happens on the loop goroutine
type app struct {
	screen    tcell.Screen
	game      *engine.Game
	clock     engine.TimeProvider
	machine   *input.Machine
	renderer  *render.Renderer
	sound     *audio.SoundManager
	collector *status.Collector

	// loadConfig re-reads settings for the reload intent, nil disables reload
	loadConfig func() (config.Config, error)

	events chan tcell.Event
}

// poll forwards terminal events until the screen is finalized
func (a *app) poll(ctx context.Context) error {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case a.events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// loop is the game loop: input intents between frames, one Tick per frame
func (a *app) loop(ctx context.Context) error {
	ticker := time.NewTicker(constant.FrameUpdateInterval)
	defer ticker.Stop()

	a.frame(a.clock.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-a.events:
			it, ok := a.machine.Process(ev)
			if !ok {
				continue
			}
			if !a.handle(it) {
				return errQuit
			}
		case <-ticker.C:
			a.frame(a.clock.Now())
		}
	}
}

// handle applies one intent; false means quit
func (a *app) handle(it input.Intent) bool {
	switch it.Type {
	case input.IntentQuit:
		return false
	case input.IntentReset:
		a.game.Reset()
		a.renderer.SnapPaddles(a.game)
	case input.IntentToggleMute:
		muted := !a.sound.Muted()
		a.sound.SetMuted(muted)
		a.renderer.SetMuted(muted)
	case input.IntentToggleHUD:
		a.renderer.ToggleHUD()
	case input.IntentReload:
		a.reload()
	case input.IntentResize:
		a.screen.Sync()
	case input.IntentMoveLeft:
		a.game.MoveAttacker(-1)
	case input.IntentMoveRight:
		a.game.MoveAttacker(1)
	case input.IntentConfirm:
		a.game.Confirm()
	case input.IntentChar:
		a.game.TypeRune(it.Char)
	}
	return true
}

// reload re-reads the config; a live rally keeps its settings until the next serve
func (a *app) reload() {
	if a.loadConfig == nil {
		return
	}
	cfg, err := a.loadConfig()
	if err != nil {
		log.Printf("Config reload failed: %v", err)
		return
	}
	a.game.ApplyConfig(cfg)
	log.Printf("Config reload accepted (phase %s)", a.game.Phase())
}

// frame advances the simulation to now, routes drained events and draws
func (a *app) frame(now time.Time) {
	a.game.Tick(now)
	engine.Dispatch(a.game.DrainEvents(), a.sound, a.collector)
	a.collector.SetTravelTime(a.game.TravelTime())

	a.renderer.SetHUD(a.collector.Summary())
	a.renderer.Draw(a.game, now)
}
