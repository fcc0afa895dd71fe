package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/type-pong/audio"
	"github.com/lixenwraith/type-pong/config"
	"github.com/lixenwraith/type-pong/constant"
	"github.com/lixenwraith/type-pong/content"
	"github.com/lixenwraith/type-pong/core"
	"github.com/lixenwraith/type-pong/engine"
	"github.com/lixenwraith/type-pong/input"
	"github.com/lixenwraith/type-pong/render"
	"github.com/lixenwraith/type-pong/status"
)

var (
	configFlag      = flag.String("config", "type-pong.toml", "Config file path (missing file uses defaults)")
	debugFlag       = flag.Bool("debug", false, "Write debug log to logs/type-pong.log")
	muteFlag        = flag.Bool("mute", false, "Start with sound muted")
	writeConfigFlag = flag.Bool("write-config", false, "Write the effective config to -config and exit")
	keymapFlag      = flag.String("keymap", "", "TOML key binding overrides")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "type-pong: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *writeConfigFlag {
		return config.Save(*configFlag, cfg)
	}

	keys := input.DefaultKeyTable()
	if *keymapFlag != "" {
		data, err := os.ReadFile(*keymapFlag)
		if err != nil {
			return fmt.Errorf("failed to read keymap: %w", err)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			return err
		}
		keys.Merge(override)
	}
	machine := input.NewMachine()
	machine.SetKeyTable(keys)

	words := content.NewManager(cfg.WordsDir)
	if err := words.DiscoverContentFiles(); err != nil {
		log.Printf("Word list discovery failed: %v", err)
	}
	bank := words.LoadBank()

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game runs silent
		log.Printf("Audio unavailable: %v", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(cfg.Mute || *muteFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.RegisterScreen(screen)
	defer core.RegisterScreen(nil)

	clock := engine.NewMonotonicTimeProvider()
	game := engine.NewGame(cfg, bank, engine.NewScheduler(clock.Now()), rand.New(rand.NewSource(clock.Now().UnixNano())))

	renderer := render.NewRenderer(screen)
	renderer.SetMuted(sound.Muted())

	a := &app{
		screen:     screen,
		game:       game,
		clock:      clock,
		machine:    machine,
		renderer:   renderer,
		sound:      sound,
		collector:  status.NewCollector(status.NewRegistry()),
		loadConfig: func() (config.Config, error) { return config.Load(*configFlag) },
		events:     make(chan tcell.Event, constant.EventChannelSize),
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(core.Guard(func() error { return a.poll(ctx) }))
	g.Go(core.Guard(func() error { return a.loop(ctx) }))
	g.Go(func() error {
		// Unblocks PollEvent once the loop ends
		<-ctx.Done()
		screen.Fini()
		return nil
	})

	err = g.Wait()
	log.Printf("Session metrics: %s", a.collector.Summary())
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
