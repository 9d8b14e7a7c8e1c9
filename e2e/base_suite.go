package e2e

import (
	"bytes"
	"context"
	"fmt"
	"guess-lab/contract"
	"guess-lab/domain"
	"guess-lab/random"
	"guess-lab/runtime"
	"guess-lab/runtime/workers"
	"guess-lab/sink"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseGameSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseGameSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// Header prints a colorized step header in the test log
func (s *BaseGameSuite) Header(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Probe records what the game emits while a scenario runs.
type Probe struct {
	started  chan domain.RoundStarted
	resolved chan domain.RoundReport
	mu       sync.Mutex
	outcomes []domain.Outcome
}

func (p *Probe) RoundStarted(_ context.Context, started domain.RoundStarted) {
	select {
	case p.started <- started:
	default:
	}
}

func (p *Probe) RoundResolved(_ context.Context, report domain.RoundReport) {
	select {
	case p.resolved <- report:
	default:
	}
}

func (p *Probe) Consume(_ context.Context, outcome domain.Outcome) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.outcomes = append(p.outcomes, outcome)
	return nil
}

func (p *Probe) Outcomes() []domain.Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Outcome(nil), p.outcomes...)
}

// WithGame runs a full game on the real supervisor for the duration of fn.
func (s *BaseGameSuite) WithGame(name string, names []string, fn func(pool *runtime.Pool, probe *Probe)) {
	s.Header(name)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	pool, err := runtime.NewPool(names, 4)
	s.Require().NoError(err)

	probe := &Probe{
		started:  make(chan domain.RoundStarted, 64),
		resolved: make(chan domain.RoundReport, 64),
	}
	observers := []contract.RoundObserver{probe, sink.NewLogRoundObserver(log)}
	var table bytes.Buffer
	if s.Config.Table {
		observers = append(observers, sink.NewTableRoundObserver(&table))
	}

	var seed atomic.Uint64
	game := runtime.NewGame(log, workers.NewSupervisor(log, 10*time.Millisecond), pool,
		runtime.Settings{MaxGuess: 100, RoundPause: s.Config.RoundPause},
		func() contract.RandomSource { return random.NewSeeded(seed.Add(1), 2024) },
		[]contract.OutcomeSink{probe}, observers)

	done := make(chan error, 1)
	go func() { done <- game.Start(context.Background()) }()

	defer func() {
		game.Stop()
		select {
		case err := <-done:
			s.Require().NoError(err)
		case <-time.After(s.Config.RoundBound):
			s.Fail("game did not stop")
		}
		if s.Config.Table {
			s.T().Log("\n" + table.String())
		}
	}()

	fn(pool, probe)
}

// NextReport waits for the next resolved round within the configured bound.
func (s *BaseGameSuite) NextReport(probe *Probe) domain.RoundReport {
	select {
	case report := <-probe.resolved:
		return report
	case <-time.After(s.Config.RoundBound):
		s.FailNow("no round resolved within bound")
	}
	return domain.RoundReport{}
}
