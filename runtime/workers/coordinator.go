package workers

import (
	"context"
	"fmt"
	"guess-lab/contract"
	"guess-lab/domain"
	"guess-lab/errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

var (
	_ contract.Worker = (*CoordinatorWorker)(nil)
	_ domain.Handler  = (*roundState)(nil)
)

var errInboxClosed = fmt.Errorf("coordinator inbox closed")

// CoordinatorWorker owns the round lifecycle:
// RoundStart -> Collecting -> Resolving -> Announcing -> pause -> RoundStart.
// The loop never ends on its own; it stops only when ctx is cancelled.
// The secret and the guess map live on this goroutine only.
type CoordinatorWorker struct {
	pool      []domain.Participant
	inbox     domain.Mailbox
	random    contract.RandomSource
	observers []contract.RoundObserver
	max       int
	pause     time.Duration
	rounds    uint64
	log       *slog.Logger
}

func NewCoordinatorWorker(
	pool []domain.Participant,
	inbox domain.Mailbox,
	random contract.RandomSource,
	observers []contract.RoundObserver,
	max int,
	pause time.Duration,
	log *slog.Logger) *CoordinatorWorker {
	return &CoordinatorWorker{
		pool:      pool,
		inbox:     inbox,
		random:    random,
		observers: observers,
		max:       max,
		pause:     pause,
		log:       log,
	}
}

func (w *CoordinatorWorker) Run(ctx context.Context) error {
	w.log.Info("Coordinator started", "participants", len(w.pool), "max", w.max, "pause", w.pause)
	for {
		if err := w.playRound(ctx); err != nil {
			if err == errInboxClosed {
				w.log.Debug("Coordinator inbox is closed")
				return nil
			}
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.pause):
		}
	}
}

// playRound runs one full round. A participant that never answers keeps
// the coordinator in Collecting until ctx is cancelled.
func (w *CoordinatorWorker) playRound(ctx context.Context) error {
	w.rounds++
	round := &roundState{
		id:        uuid.New(),
		number:    w.rounds,
		guesses:   make(domain.GuessMap, len(w.pool)),
		startedAt: time.Now(),
		log:       w.log,
	}
	round.secret = w.random.Random(w.max)
	log := w.log.With("round", round.id, "number", round.number)

	for _, o := range w.observers {
		o.RoundStarted(ctx, domain.RoundStarted{
			Round:    round.id,
			Number:   round.number,
			PoolSize: len(w.pool),
			At:       round.startedAt,
		})
	}

	// RoundStart: every participant gets its own freshly drawn upper bound
	for _, p := range w.pool {
		request := domain.GuessRequest{
			Round:      round.id,
			UpperBound: w.random.Random(w.max),
			ReplyTo:    w.inbox.Address(),
		}
		if err := send(ctx, p.Mailbox.Address(), request); err != nil {
			return err
		}
	}

	// Collecting
	for !round.guesses.Complete(len(w.pool)) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-w.inbox:
			if !ok {
				return errInboxClosed
			}
			if err := msg.Accept(round); err != nil {
				log.Warn("Message ignored", "kind", msg.Kind(), "error", err)
			}
		}
	}

	// Resolving
	winner := domain.Resolve(round.secret, round.guesses)
	report := domain.RoundReport{
		Round:      round.id,
		Number:     round.number,
		Secret:     round.secret,
		Guesses:    round.guesses,
		Winner:     winner,
		StartedAt:  round.startedAt,
		ResolvedAt: time.Now(),
	}
	for _, o := range w.observers {
		o.RoundResolved(ctx, report)
	}

	// Announcing
	result := domain.RoundResult{Round: round.id, Winner: winner}
	for _, p := range w.pool {
		if err := send(ctx, p.Mailbox.Address(), result); err != nil {
			return err
		}
	}
	return nil
}

func send(ctx context.Context, to domain.Address, msg domain.Message) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case to <- msg:
		return nil
	}
}

// roundState is the coordinator-private state of the round in progress.
type roundState struct {
	id        uuid.UUID
	number    uint64
	secret    int
	guesses   domain.GuessMap
	startedAt time.Time
	log       *slog.Logger
}

func (r *roundState) OnGuessRequest(m domain.GuessRequest) error {
	return fmt.Errorf("%w: %s", errors.ErrUnexpectedMessage, m.Kind())
}

func (r *roundState) OnGuessResponse(m domain.GuessResponse) error {
	if m.Round != r.id {
		return fmt.Errorf("%w: guess from %s belongs to round %s", errors.ErrUnexpectedMessage, m.From, m.Round)
	}
	r.guesses.Record(m.From, m.Value)
	r.log.Debug("Guess received", "round", r.id, "participant", m.From.Name, "value", m.Value,
		"collected", len(r.guesses))
	return nil
}

func (r *roundState) OnRoundResult(m domain.RoundResult) error {
	return fmt.Errorf("%w: %s", errors.ErrUnexpectedMessage, m.Kind())
}
