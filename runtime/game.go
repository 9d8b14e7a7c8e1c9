// Package runtime wires the participant pool, the coordinator and the supervisor.
// It orchestrates the game without containing the round rules themselves.
package runtime

import (
	"context"
	"guess-lab/contract"
	"guess-lab/domain"
	"guess-lab/runtime/workers"
	"log/slog"
	"sync"
	"time"
)

// Settings are the round parameters of a game.
type Settings struct {
	MaxGuess   int
	RoundPause time.Duration
}

// Game owns one coordinator and one participant worker per pool member.
type Game struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	pool       *Pool
	settings   Settings
	random     func() contract.RandomSource
	sinks      []contract.OutcomeSink
	observers  []contract.RoundObserver
	inbox      domain.Mailbox
}

var _ contract.IGame = (*Game)(nil)

// NewGame prepares a game. newRandom is called once per unit of control so
// every goroutine draws from its own source.
func NewGame(log *slog.Logger, supervisor contract.ISupervisor, pool *Pool, settings Settings,
	newRandom func() contract.RandomSource,
	sinks []contract.OutcomeSink, observers []contract.RoundObserver) *Game {
	return &Game{
		log:        log,
		supervisor: supervisor,
		pool:       pool,
		settings:   settings,
		random:     newRandom,
		sinks:      sinks,
		observers:  observers,
		inbox:      domain.NewMailbox(pool.Size()),
	}
}

// Start registers every worker to the supervisor and blocks while the game runs.
// Participants are registered before the coordinator so they are ready when
// the first round is dispatched.
func (g *Game) Start(ctx context.Context) error {
	// 1. Preparation phase (No Lock)
	participants := g.prepareParticipants()
	coordinator := g.prepareCoordinator()

	// 2. Critical Section (Short Lock)
	g.mu.Lock()
	g.supervisor.Add(participants...)
	g.supervisor.Add(coordinator)
	g.mu.Unlock()

	// 3. Execution phase (No Lock)
	g.log.Info("Starting game", "participants", g.pool.Size(),
		"max_guess", g.settings.MaxGuess, "round_pause", g.settings.RoundPause)
	g.supervisor.Run(ctx)
	return nil
}

func (g *Game) prepareParticipants() []contract.Worker {
	var res []contract.Worker
	for _, p := range g.pool.Members() {
		res = append(res, workers.NewParticipantWorker(p, g.random(), g.sinks, g.log))
	}
	return res
}

func (g *Game) prepareCoordinator() contract.Worker {
	return workers.NewCoordinatorWorker(
		g.pool.Members(),
		g.inbox,
		g.random(),
		g.observers,
		g.settings.MaxGuess,
		g.settings.RoundPause,
		g.log.With("unit", "coordinator"),
	)
}

// Stop is the out-of-protocol shutdown: it cancels the supervised context and
// every worker returns. No round is played to completion.
func (g *Game) Stop() {
	g.log.Info("Requesting game shutdown")
	g.supervisor.Stop()
}
