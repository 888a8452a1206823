package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog/log"
	"github.com/sanity-io/litter"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/grid-snake/audio"
	"github.com/lixenwraith/grid-snake/config"
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/input"
	"github.com/lixenwraith/grid-snake/render"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run plays one game and returns the process exit code
func run(args []string) int {
	cfg, err := config.Load(args, os.LookupEnv)
	if errors.Is(err, flag.ErrHelp) {
		// Usage was already printed by the flag set
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().
		Int("grid", cfg.GridSize).
		Int("rate", cfg.TickRate).
		Uint64("seed", seed).
		Msg("Starting")

	game, err := engine.NewGame(engine.GameOptions{
		Size: cfg.GridSize,
		Rand: rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}
	core.RegisterCrashTerminal(screen)

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	var sounds *audio.SoundManager
	if cfg.AudioEnabled {
		sounds = audio.NewSoundManager(cfg.MasterVolume)
		if err := sounds.Initialize(); err != nil {
			log.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
			sounds = nil
		} else {
			defer sounds.Cleanup()
		}
	}

	palette := render.DefaultPalette(render.ParseColorMode(cfg.ColorMode, os.Getenv))
	sink := render.NewTerminalRenderer(screen, palette)
	source := input.NewScreenSource(screen, input.DefaultKeyTable(), constants.EventBufferSize)

	scheduler := engine.NewClockScheduler(game, source, sink, engine.NewSystemClock(), cfg.TickInterval())
	if sounds != nil {
		scheduler.OnTick(func(res engine.StepResult) {
			switch {
			case res.Ate:
				sounds.PlayEat()
			case res.Reason == engine.ReasonCollision:
				sounds.PlayGameOver()
			}
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, runErr := scheduler.Run(ctx)

	// Normal exit terminal cleanup, console output is only visible afterwards
	core.RegisterCrashTerminal(nil)
	screen.Fini()
	source.Close()

	if ev := log.Debug(); ev.Enabled() {
		ev.Str("snapshot", litter.Sdump(game.Snapshot())).Msg("Final state")
	}

	if runErr != nil {
		log.Error().Err(runErr).Msg("Run aborted")
		if errors.Is(runErr, render.ErrOutOfBounds) {
			cfmt.Printf("{{error:}}::lightRed|bold frame does not fit the grid: %v\n", runErr)
		} else {
			cfmt.Printf("{{error:}}::lightRed|bold %v\n", runErr)
		}
		return 1
	}

	return report(result, sounds)
}

// report prints the outcome and maps it to the process exit code
func report(result engine.Result, sounds *audio.SoundManager) int {
	stats := fmt.Sprintf("length %d, eaten %d, ticks %d", result.Stats.Length, result.Stats.Eaten, result.Stats.Ticks)

	switch result.Reason {
	case engine.ReasonCollision:
		if sounds != nil {
			sounds.Drain(constants.GameOverSoundDuration * 2)
		}
		cfmt.Printf("{{%s}}::lightRed|bold {{(%s)}}::gray\n", constants.MessageGameOver, stats)
		return 1
	case engine.ReasonBoardFull:
		cfmt.Printf("{{%s}}::lightGreen|bold {{(%s)}}::gray\n", constants.MessageWin, stats)
		return 0
	default:
		log.Info().Stringer("reason", result.Reason).Msg("Exited")
		return 0
	}
}
