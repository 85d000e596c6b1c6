package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/asteroids/audio"
	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/game"
	"github.com/lixenwraith/asteroids/input"
	"github.com/lixenwraith/asteroids/persistence"
	"github.com/lixenwraith/asteroids/render"
)

const (
	frameInterval = 16 * time.Millisecond
	closeTimeout  = 5 * time.Second
)

var (
	configFlag = flag.String("config", "asteroids.toml", "Config file path")
	logFlag    = flag.String("log", "", "Log file path, overrides session.log_path")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, overrides session.seed")
	writeFlag  = flag.Bool("write-config", false, "Write the effective config to -config and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *writeFlag {
		if err := config.Write(*configFlag, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Write config failed: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if *logFlag != "" {
		cfg.Session.LogPath = *logFlag
	}
	if *seedFlag != 0 {
		cfg.Session.Seed = *seedFlag
	}
	if cfg.Session.Seed == 0 {
		cfg.Session.Seed = uint64(time.Now().UnixNano())
	}

	logger, logCloser, err := setupLogger(cfg.Session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	defer logCloser.Close()

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	store, err := persistence.Open(cfg.Session.Store, logger)
	if err != nil {
		logger.Warn().Err(err).Str("backend", cfg.Session.Store.Backend).Msg("Progress store unavailable, progress will not be saved")
		store = persistence.NopStore{}
	}

	opts := []game.Option{game.WithStore(store), game.WithLogger(logger)}
	var player *audio.Player
	if cfg.Session.Audio {
		player = audio.NewPlayer(cfg.Session.Volume, cfg.Arena.Width, logger)
		if err := player.Start(); err == nil {
			opts = append(opts, game.WithAudio(player))
			defer player.Close()
		} else {
			player = nil
		}
	}

	g, err := game.New(cfg, opts...)
	if err != nil {
		store.Close()
		return err
	}
	defer closeGame(g, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = g.Load(ctx)
	cancel()
	if err != nil {
		logger.Warn().Err(err).Msg("Progress load failed, starting fresh")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before a crash report reaches stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nASTEROIDS CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			logger.Error().Interface("panic", r).Msg("Crashed")
			// os.Exit skips deferred calls, progress is saved here
			closeGame(g, logger)
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	s := &session{
		game:     g,
		screen:   screen,
		renderer: render.NewRenderer(screen),
		machine:  input.NewMachine(),
		clock:    engine.NewFrameClock(engine.NewMonotonicTimeProvider()),
		player:   player,
		logger:   logger,
	}
	return s.loop()
}

// closeGame saves progress and releases the store
func closeGame(g *game.Game, logger zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := g.Close(ctx); err != nil {
		logger.Error().Err(err).Msg("Session close failed")
	}
}

// session owns the terminal loop
type session struct {
	game     *game.Game
	screen   tcell.Screen
	renderer *render.Renderer
	machine  *input.Machine
	clock    *engine.FrameClock
	player   *audio.Player
	logger   zerolog.Logger

	shop   bool
	notice string
}

var errQuit = errors.New("quit")

func (s *session) loop() error {
	events := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := s.handle(ev); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}

		case <-ticker.C:
			s.frame()
		}
	}
}

func (s *session) handle(ev tcell.Event) error {
	cmd, ok := s.machine.Process(ev, time.Now())
	if !ok {
		return nil
	}

	switch cmd.Type {
	case input.CommandQuit:
		return errQuit
	case input.CommandRestart:
		if s.game.World.State.GameOver {
			s.machine.Reset()
			s.game.Reset()
		}
	case input.CommandPause:
		if s.clock.IsPaused() {
			s.clock.Resume()
		} else {
			s.clock.Pause()
		}
	case input.CommandMute:
		if s.player != nil {
			muted := s.player.ToggleMute()
			s.logger.Info().Bool("muted", muted).Msg("Audio toggled")
		}
	case input.CommandShop:
		s.toggleShop()
	case input.CommandBuy:
		if s.shop {
			s.buy(cmd.Slot)
		}
	case input.CommandResize:
		s.screen.Sync()
		cols, rows := s.screen.Size()
		s.renderer.Resize(cols, rows)
	}
	return nil
}

// toggleShop opens the upgrade list, pausing the run while it is shown
func (s *session) toggleShop() {
	s.shop = !s.shop
	s.notice = ""
	if s.shop {
		s.clock.Pause()
		return
	}
	s.clock.Resume()
	s.machine.Reset()
}

func (s *session) buy(slot int) {
	level, err := s.game.PurchaseSlot(slot)
	switch {
	case err == nil:
		s.notice = fmt.Sprintf("Upgraded to level %d", level)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.game.Save(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Progress save failed")
		}
	case errors.Is(err, game.ErrInsufficientCrystals):
		s.notice = "Not enough crystals"
	case errors.Is(err, game.ErrUpgradeMaxed):
		s.notice = "Already at max level"
	default:
		s.notice = err.Error()
	}
}

func (s *session) frame() {
	dt := s.clock.Delta()
	if !s.clock.IsPaused() {
		s.game.SetIntent(s.machine.Intent(time.Now()))
		s.game.Frame(dt)
	}

	s.renderer.Compose(s.game.View())
	switch {
	case s.shop:
		s.renderer.DrawShop(s.game.ShopLines(), s.game.World.Progress.Crystals)
		if s.notice != "" {
			cols, rows := s.screen.Size()
			s.renderer.Buffer().TextCentered(cols/2, rows-2, s.notice, render.RgbHUD)
		}
	case s.clock.IsPaused():
		s.renderer.DrawBanner("PAUSED  P resume")
	}
	s.renderer.Flush()
}
