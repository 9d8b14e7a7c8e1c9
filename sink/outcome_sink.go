package sink

import (
	"context"
	"fmt"
	"guess-lab/contract"
	"guess-lab/domain"
	"io"
	"log/slog"
	"sync"

	"github.com/gookit/color"
)

var (
	_ contract.OutcomeSink = LogOutcomeSink{}
	_ contract.OutcomeSink = (*ConsoleOutcomeSink)(nil)
)

// LogOutcomeSink writes every participant outcome to the structured log.
type LogOutcomeSink struct {
	log *slog.Logger
}

func NewLogOutcomeSink(log *slog.Logger) LogOutcomeSink {
	return LogOutcomeSink{log: log}
}

func (s LogOutcomeSink) Consume(_ context.Context, o domain.Outcome) error {
	s.log.Info("Round outcome",
		"round", o.Round,
		"participant", o.Participant.Name,
		"status", o.Status,
		"winner", winnerName(o.Winner))
	return nil
}

// ConsoleOutcomeSink prints one line per outcome, coloured by status.
// Participants share the writer, hence the lock.
type ConsoleOutcomeSink struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
}

func NewConsoleOutcomeSink(out io.Writer, colours bool) *ConsoleOutcomeSink {
	return &ConsoleOutcomeSink{out: out, colours: colours}
}

func (s *ConsoleOutcomeSink) Consume(_ context.Context, o domain.Outcome) error {
	line := fmt.Sprintf("%-10s %s", o.Participant.Name, describe(o))
	if s.colours {
		line = styleFor(o.Status).Render(line)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.out, line)
	return err
}

func describe(o domain.Outcome) string {
	switch o.Status {
	case domain.WON:
		return "won the round"
	case domain.LOST:
		return fmt.Sprintf("lost, %s won", o.Winner.Name)
	default:
		return "round voided, nobody won"
	}
}

func styleFor(status domain.OutcomeStatus) color.Style {
	switch status {
	case domain.WON:
		return color.New(color.FgGreen, color.OpBold)
	case domain.LOST:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

func winnerName(w *domain.Identity) string {
	if w == nil {
		return "none"
	}
	return w.Name
}
