package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/resonance-arena/audio"
	"github.com/lixenwraith/resonance-arena/config"
	"github.com/lixenwraith/resonance-arena/core"
	"github.com/lixenwraith/resonance-arena/engine"
	"github.com/lixenwraith/resonance-arena/geometry"
	"github.com/lixenwraith/resonance-arena/input"
	"github.com/lixenwraith/resonance-arena/network"
	"github.com/lixenwraith/resonance-arena/render"
	"github.com/lixenwraith/resonance-arena/summary"
	"github.com/lixenwraith/resonance-arena/system"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file, empty for defaults")
	debugFlag  = flag.Bool("debug", false, "Write the debug log to the configured file")
	seedFlag   = flag.Uint64("seed", 0, "Run seed, 0 uses the config seed or the clock")
)

const publishTimeout = 5 * time.Second

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	core.SetCrashHook(func() { render.EmergencyReset(os.Stdout) })
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	log, closeLog, err := newLogger(cfg.Log, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open debug log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	result, err := run(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Arena failed: %v\n", err)
		os.Exit(1)
	}
	if result != nil {
		if report, err := summary.Report(result); err == nil {
			fmt.Println(report)
		}
	}
}

// newLogger writes to the configured file when debug is on, otherwise discards
func newLogger(cfg config.LogConfig, enabled bool) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if !enabled {
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, err
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	log.SetOutput(f)
	log.SetLevel(level)
	return log, func() { f.Close() }, nil
}

// run plays one session; the returned summary is nil when the run never ended
func run(cfg *config.Config, log *logrus.Logger) (*summary.RunSummary, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	geo := geometry.NewArenas(cfg.Arena.Count, cfg.Arena.Radius, cfg.Arena.Corridor)
	world := engine.NewWorld(engine.WorldConfig{Seed: cfg.Seed, Geometry: geo, Log: log})
	system.RegisterAll(world)

	// Initialize audio, silent on failure
	player := audio.NewCuePlayer(&cfg.Audio, log)
	defer player.Close()
	cues := audio.NewCueHandler(player)
	world.AddHandler(cues)

	recorder := summary.NewRecorder(cfg.Seed)
	world.AddHandler(recorder)

	var publisher summary.Publisher
	if cfg.Summary.NatsURL != "" {
		pub, err := summary.NewNatsPublisher(cfg.Summary.NatsURL, cfg.Summary.Subject)
		if err != nil {
			log.WithError(err).Warn("summary publishing disabled")
		} else {
			defer pub.Close()
			publisher = pub
		}
	}

	finished := make(chan *summary.RunSummary, 1)
	stop := make(chan struct{})
	defer close(stop)
	core.Go(func() {
		select {
		case <-stop:
			return
		case s := <-recorder.Summaries():
			pctx, pcancel := context.WithTimeout(context.Background(), publishTimeout)
			err := summary.Submit(pctx, publisher, s)
			pcancel()
			if err != nil && !errors.Is(err, summary.ErrNoPublisher) {
				log.WithError(err).Warn("run summary not published")
			}
			finished <- s
		}
	})

	if cfg.Feed.Enabled {
		feedCfg := network.DefaultConfig()
		feedCfg.Addr = cfg.Feed.Addr
		feedCfg.Path = cfg.Feed.Path
		feedCfg.Rate = cfg.Feed.Rate
		feed := network.NewFeed(feedCfg, world, log)
		if err := feed.Start(); err != nil {
			return nil, fmt.Errorf("starting snapshot feed: %w", err)
		}
		defer func() {
			sctx, scancel := context.WithTimeout(context.Background(), time.Second)
			defer scancel()
			feed.Stop(sctx)
		}()
		core.Go(func() { feed.Run(ctx, world) })
		log.WithField("addr", feed.Addr()).Info("snapshot feed listening")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()
	screen.EnableFocus()

	renderer := render.NewTerminalRenderer(screen, geo)
	renderer.SetMuted(player.Muted())

	machine := input.NewMachine()
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			machine.Feed(ev, time.Now())
		}
	})

	scheduler := engine.NewScheduler(world, engine.NewPausableClock(nil))
	scheduler.SetIntentSource(func() input.Intent {
		return machine.SampleTick(time.Now())
	})
	scheduler.SetSettleHook(func(dt time.Duration) {
		world.RunSafe(func() {
			system.Settle(world, dt)
		})
	})

	paused := false
	handle := func(in input.Intent) {
		switch in.Type {
		case input.IntentQuit:
			cancel()
		case input.IntentPause:
			paused = !paused
			if paused {
				scheduler.Pause()
			} else {
				scheduler.Resume()
			}
			renderer.SetPaused(paused)
		case input.IntentToggleMute:
			renderer.SetMuted(cues.ToggleMute())
		case input.IntentChoose:
			var err error
			world.RunSafe(func() {
				err = system.ChooseLegendary(world, in.Choice)
			})
			if err != nil {
				log.WithError(err).Debug("legendary choice ignored")
				return
			}
			if !paused {
				scheduler.Resume()
			}
		case input.IntentResize:
			screen.Sync()
			renderer.Resize()
		case input.IntentFocusLost:
			// Background timer keeps the run alive while frames are not drawn
			scheduler.SetSource(engine.SourceBackground)
		case input.IntentFocusGained:
			scheduler.SetSource(engine.SourcePrimary)
			screen.Sync()
		}
	}

	log.WithField("seed", cfg.Seed).Info("run started")
	scheduler.Run(ctx, func() {
		for {
			in, ok := machine.NextSystem()
			if !ok {
				break
			}
			handle(in)
		}
		if scheduler.Source() == engine.SourcePrimary {
			renderer.RenderFrame(world.Snapshot())
		}
	})

	// Normal exit terminal cleanup, before the report is printed
	screen.Fini()

	counters := logrus.Fields{}
	for name, v := range world.Status.Snapshot() {
		counters[name] = v
	}
	log.WithFields(counters).Info("session counters")

	select {
	case s := <-finished:
		return s, nil
	default:
	}
	var ended bool
	world.RunSafe(func() { ended = world.Phase == engine.PhaseEnded })
	if !ended {
		return nil, nil
	}
	// The run ended but its summary may still be publishing
	select {
	case s := <-finished:
		return s, nil
	case <-time.After(publishTimeout):
		return nil, nil
	}
}
