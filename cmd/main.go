package main

import (
	"context"
	"fmt"
	"guess-lab/contract"
	"guess-lab/internal"
	"guess-lab/random"
	"guess-lab/runtime"
	"guess-lab/runtime/workers"
	"guess-lab/sink"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Game terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run builds the pool, the coordinator and the supervisor, then plays rounds
// until SIGINT or SIGTERM. The game has no end of its own.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Participant pool, fixed for the whole process lifetime
	pool, err := runtime.NewPool(config.ParticipantNames(), config.MailboxSize)
	if err != nil {
		return exitConfig, fmt.Errorf("participant pool: %w", err)
	}

	// 3. Sinks & observers
	sinks := []contract.OutcomeSink{
		sink.NewLogOutcomeSink(log),
		sink.NewConsoleOutcomeSink(os.Stdout, config.Colours),
	}
	observers := []contract.RoundObserver{sink.NewLogRoundObserver(log)}
	if config.RoundTable {
		observers = append(observers, sink.NewTableRoundObserver(os.Stdout))
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervision & Game
	sup := workers.NewSupervisor(log, config.RestartInterval)
	game := runtime.NewGame(log, sup, pool,
		runtime.Settings{MaxGuess: config.MaxGuess, RoundPause: config.RoundPause},
		func() contract.RandomSource { return random.New() },
		sinks, observers)

	go func() {
		<-ctx.Done()
		log.Info("Shutting down gracefully...")
		game.Stop()
	}()

	// 6. Blocks until every worker has returned
	if err := game.Start(ctx); err != nil {
		return exitRuntime, fmt.Errorf("game failed: %w", err)
	}
	log.Info("Program stopped cleanly")
	return exitOK, nil
}
