package workers

import (
	"context"
	"guess-lab/domain"
	"sync"
)

// recordingObserver forwards every lifecycle notification to buffered channels.
type recordingObserver struct {
	started  chan domain.RoundStarted
	resolved chan domain.RoundReport
}

func newRecordingObserver(size int) *recordingObserver {
	return &recordingObserver{
		started:  make(chan domain.RoundStarted, size),
		resolved: make(chan domain.RoundReport, size),
	}
}

func (o *recordingObserver) RoundStarted(_ context.Context, started domain.RoundStarted) {
	select {
	case o.started <- started:
	default:
	}
}

func (o *recordingObserver) RoundResolved(_ context.Context, report domain.RoundReport) {
	select {
	case o.resolved <- report:
	default:
	}
}

// fixedSource always draws the same value.
type fixedSource int

func (f fixedSource) Random(int) int { return int(f) }

// recordingSink keeps every outcome it consumed.
type recordingSink struct {
	mu       sync.Mutex
	outcomes []domain.Outcome
	notify   chan domain.Outcome
}

func newRecordingSink(size int) *recordingSink {
	return &recordingSink{notify: make(chan domain.Outcome, size)}
}

func (s *recordingSink) Consume(_ context.Context, outcome domain.Outcome) error {
	s.mu.Lock()
	s.outcomes = append(s.outcomes, outcome)
	s.mu.Unlock()
	select {
	case s.notify <- outcome:
	default:
	}
	return nil
}
