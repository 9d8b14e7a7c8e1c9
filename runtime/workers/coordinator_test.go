package workers

import (
	"context"
	"guess-lab/contract"
	"guess-lab/domain"
	"guess-lab/mocks"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// startGame runs one participant worker per guess and a coordinator with a fixed secret.
func startGame(t *testing.T, secret int, guesses map[string]int, pause time.Duration,
	observer contract.RoundObserver, sink contract.OutcomeSink) ([]domain.Participant, context.CancelFunc) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx, cancel := context.WithCancel(context.Background())

	var sinks []contract.OutcomeSink
	if sink != nil {
		sinks = append(sinks, sink)
	}
	var pool []domain.Participant
	for name, value := range guesses {
		p := domain.NewParticipant(name, 2)
		pool = append(pool, p)
		go func() { _ = NewParticipantWorker(p, fixedSource(value), sinks, log).Run(ctx) }()
	}

	inbox := domain.NewMailbox(len(pool))
	coordinator := NewCoordinatorWorker(pool, inbox, fixedSource(secret),
		[]contract.RoundObserver{observer}, 100, pause, log)
	go func() { _ = coordinator.Run(ctx) }()
	return pool, cancel
}

func waitReport(t *testing.T, observer *recordingObserver) domain.RoundReport {
	t.Helper()
	select {
	case report := <-observer.resolved:
		return report
	case <-time.After(2 * time.Second):
		require.FailNow(t, "round was not resolved in time")
	}
	return domain.RoundReport{}
}

func byName(pool []domain.Participant, name string) domain.Identity {
	for _, p := range pool {
		if p.Identity.Name == name {
			return p.Identity
		}
	}
	return domain.Identity{}
}

func TestCoordinatorWorker_ExactGuessWins(t *testing.T) {
	req := require.New(t)
	observer := newRecordingObserver(10)
	sink := newRecordingSink(10)

	// Given three participants guessing 10, 50 and 90 against a secret of 50
	pool, cancel := startGame(t, 50, map[string]int{"alice": 10, "bob": 50, "carol": 90},
		time.Hour, observer, sink)
	defer cancel()

	// When the round resolves
	report := waitReport(t, observer)

	// Then bob, who guessed 50, is the single winner
	req.Equal(50, report.Secret)
	req.Len(report.Guesses, 3)
	req.NotNil(report.Winner)
	req.Equal(byName(pool, "bob"), *report.Winner)

	// And every participant learns its own outcome
	statuses := make(map[string]domain.OutcomeStatus)
	for i := 0; i < 3; i++ {
		select {
		case outcome := <-sink.notify:
			statuses[outcome.Participant.Name] = outcome.Status
		case <-time.After(2 * time.Second):
			req.FailNow("outcome not delivered")
		}
	}
	req.Equal(map[string]domain.OutcomeStatus{
		"alice": domain.LOST,
		"bob":   domain.WON,
		"carol": domain.LOST,
	}, statuses)
}

func TestCoordinatorWorker_TieVoidsRound(t *testing.T) {
	req := require.New(t)
	observer := newRecordingObserver(10)
	sink := newRecordingSink(10)

	// Given two participants at the same distance from the secret
	_, cancel := startGame(t, 50, map[string]int{"alice": 40, "bob": 60}, time.Hour, observer, sink)
	defer cancel()

	report := waitReport(t, observer)

	// Then nobody wins and both participants see a voided round
	req.True(report.Voided())
	for i := 0; i < 2; i++ {
		select {
		case outcome := <-sink.notify:
			req.Equal(domain.VOIDED, outcome.Status)
		case <-time.After(2 * time.Second):
			req.FailNow("outcome not delivered")
		}
	}
}

func TestCoordinatorWorker_RoundsKeepCycling(t *testing.T) {
	req := require.New(t)
	observer := newRecordingObserver(64)
	guesses := map[string]int{"alice": 1, "bob": 2, "carol": 3}

	_, cancel := startGame(t, 3, guesses, 10*time.Millisecond, observer, nil)
	defer cancel()

	// Given participants that always reply, five rounds complete within the bound
	deadline := time.After(3 * time.Second)
	seen := make(map[uuid.UUID]struct{})
	var previous uint64
	for len(seen) < 5 {
		select {
		case started := <-observer.started:
			req.Equal(3, started.PoolSize)
		case report := <-observer.resolved:
			req.Len(report.Guesses, len(guesses))
			req.Greater(report.Number, previous)
			previous = report.Number
			_, dup := seen[report.Round]
			req.False(dup)
			seen[report.Round] = struct{}{}
		case <-deadline:
			req.FailNow("coordinator did not complete five rounds in time")
		}
	}
}

func TestCoordinatorWorker_DrawsBoundPerParticipant(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	randomMock := mocks.NewMockRandomSource(ctrl)

	alice, bob := domain.NewParticipant("alice", 2), domain.NewParticipant("bob", 2)
	observer := newRecordingObserver(4)
	inbox := domain.NewMailbox(2)

	// Given a secret drawn first, then one bound per participant
	gomock.InOrder(
		randomMock.EXPECT().Random(100).Return(42),
		randomMock.EXPECT().Random(100).Return(7),
		randomMock.EXPECT().Random(100).Return(93),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	coordinator := NewCoordinatorWorker([]domain.Participant{alice, bob}, inbox, randomMock,
		[]contract.RoundObserver{observer}, 100, time.Hour, log)
	go func() { _ = coordinator.Run(ctx) }()

	first := (<-alice.Mailbox).(domain.GuessRequest)
	second := (<-bob.Mailbox).(domain.GuessRequest)

	// Then each participant receives its own upper bound for the same round
	req.Equal(7, first.UpperBound)
	req.Equal(93, second.UpperBound)
	req.Equal(first.Round, second.Round)

	first.ReplyTo <- domain.GuessResponse{Round: first.Round, Value: 7, From: alice.Identity}
	second.ReplyTo <- domain.GuessResponse{Round: second.Round, Value: 93, From: bob.Identity}

	report := waitReport(t, observer)
	req.Equal(42, report.Secret)
	req.Equal(alice.Identity, *report.Winner)
}

func TestCoordinatorWorker_DropsGuessFromAnotherRound(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	alice, bob := domain.NewParticipant("alice", 2), domain.NewParticipant("bob", 2)
	observer := newRecordingObserver(4)
	inbox := domain.NewMailbox(4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	coordinator := NewCoordinatorWorker([]domain.Participant{alice, bob}, inbox, fixedSource(10),
		[]contract.RoundObserver{observer}, 100, time.Hour, log)
	go func() { _ = coordinator.Run(ctx) }()

	request := (<-alice.Mailbox).(domain.GuessRequest)
	<-bob.Mailbox

	// Given a late guess stamped with some previous round
	inbox <- domain.GuessResponse{Round: uuid.New(), Value: 10, From: bob.Identity}
	// And only alice answering the current round
	inbox <- domain.GuessResponse{Round: request.Round, Value: 3, From: alice.Identity}

	// Then the round is still collecting
	select {
	case <-observer.resolved:
		req.FailNow("stale guess must not complete the round")
	case <-time.After(100 * time.Millisecond):
	}

	// When bob answers the current round
	inbox <- domain.GuessResponse{Round: request.Round, Value: 12, From: bob.Identity}

	report := waitReport(t, observer)
	req.Len(report.Guesses, 2)
	req.Equal(12, report.Guesses[bob.Identity])
	req.Equal(bob.Identity, *report.Winner)
}

// nextRequest skips round results until the next guess request arrives.
func nextRequest(t *testing.T, mailbox domain.Mailbox) domain.GuessRequest {
	t.Helper()
	for {
		select {
		case msg := <-mailbox:
			if request, ok := msg.(domain.GuessRequest); ok {
				return request
			}
		case <-time.After(2 * time.Second):
			require.FailNow(t, "no guess request received")
			return domain.GuessRequest{}
		}
	}
}

func TestCoordinatorWorker_NextRoundStartsWithoutPreviousGuesses(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	alice, bob := domain.NewParticipant("alice", 2), domain.NewParticipant("bob", 2)
	observer := newRecordingObserver(4)
	inbox := domain.NewMailbox(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	coordinator := NewCoordinatorWorker([]domain.Participant{alice, bob}, inbox, fixedSource(50),
		[]contract.RoundObserver{observer}, 100, 5*time.Millisecond, log)
	go func() { _ = coordinator.Run(ctx) }()

	// Given a first round answered with 11 and 12
	first := nextRequest(t, alice.Mailbox)
	nextRequest(t, bob.Mailbox)
	inbox <- domain.GuessResponse{Round: first.Round, Value: 11, From: alice.Identity}
	inbox <- domain.GuessResponse{Round: first.Round, Value: 12, From: bob.Identity}
	firstReport := waitReport(t, observer)
	req.Equal(12, firstReport.Guesses[bob.Identity])

	// When only alice answers the second round
	second := nextRequest(t, alice.Mailbox)
	nextRequest(t, bob.Mailbox)
	req.NotEqual(first.Round, second.Round)
	inbox <- domain.GuessResponse{Round: second.Round, Value: 21, From: alice.Identity}

	// Then bob's guess from the first round does not complete it
	select {
	case <-observer.resolved:
		req.FailNow("second round resolved with a guess from the first round")
	case <-time.After(100 * time.Millisecond):
	}

	inbox <- domain.GuessResponse{Round: second.Round, Value: 22, From: bob.Identity}
	secondReport := waitReport(t, observer)
	req.Equal(domain.GuessMap{alice.Identity: 21, bob.Identity: 22}, secondReport.Guesses)
	for _, value := range secondReport.Guesses {
		req.NotContains([]int{11, 12}, value)
	}
}

func TestCoordinatorWorker_StallsUntilCancelled(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	silent := domain.NewParticipant("silent", 2)
	observer := newRecordingObserver(4)

	ctx, cancel := context.WithCancel(context.Background())
	coordinator := NewCoordinatorWorker([]domain.Participant{silent}, domain.NewMailbox(1),
		fixedSource(5), []contract.RoundObserver{observer}, 100, time.Millisecond, log)
	done := make(chan error, 1)
	go func() { done <- coordinator.Run(ctx) }()

	// Given a participant that never answers, the round never resolves
	select {
	case <-observer.resolved:
		req.FailNow("round resolved without every guess")
	case <-time.After(100 * time.Millisecond):
	}

	// When the game is shut down from outside the protocol
	cancel()

	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		req.FailNow("coordinator ignored cancellation")
	}
}

func TestCoordinatorWorker_ReturnsWhenInboxClosed(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	inbox := domain.NewMailbox(0)
	close(inbox)

	coordinator := NewCoordinatorWorker([]domain.Participant{domain.NewParticipant("alice", 1)}, inbox,
		fixedSource(1), nil, 100, time.Millisecond, log)

	req.NoError(coordinator.Run(context.Background()))
}
