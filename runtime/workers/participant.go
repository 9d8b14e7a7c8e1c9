package workers

import (
	"context"
	"fmt"
	"guess-lab/contract"
	"guess-lab/domain"
	"guess-lab/errors"
	"log/slog"
)

var (
	_ contract.NamedWorker = (*ParticipantWorker)(nil)
	_ domain.Handler       = (*participantHandler)(nil)
)

// ParticipantWorker is one player. It only acts when a message lands in its
// mailbox and keeps no state from one round to the next.
type ParticipantWorker struct {
	self   domain.Participant
	random contract.RandomSource
	sinks  []contract.OutcomeSink
	log    *slog.Logger
}

func NewParticipantWorker(
	self domain.Participant,
	random contract.RandomSource,
	sinks []contract.OutcomeSink,
	log *slog.Logger) *ParticipantWorker {
	return &ParticipantWorker{
		self:   self,
		random: random,
		sinks:  sinks,
		log:    log.With("participant", self.Identity.Name),
	}
}

func (w *ParticipantWorker) Name() string {
	return fmt.Sprintf("ParticipantWorker[%s]", w.self.Identity.Name)
}

func (w *ParticipantWorker) Run(ctx context.Context) error {
	h := &participantHandler{ctx: ctx, w: w}
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping participant")
			return ctx.Err()
		case msg, ok := <-w.self.Mailbox:
			if !ok {
				w.log.Debug("Mailbox is closed")
				return nil
			}
			if err := msg.Accept(h); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				w.log.Warn("Message ignored", "kind", msg.Kind(), "error", err)
			}
		}
	}
}

type participantHandler struct {
	ctx context.Context
	w   *ParticipantWorker
}

func (h *participantHandler) OnGuessRequest(m domain.GuessRequest) error {
	guess := domain.GuessResponse{
		Round: m.Round,
		Value: h.w.random.Random(m.UpperBound),
		From:  h.w.self.Identity,
	}
	h.w.log.Debug("Guess submitted", "round", m.Round, "upper_bound", m.UpperBound, "value", guess.Value)
	select {
	case <-h.ctx.Done():
		return h.ctx.Err()
	case m.ReplyTo <- guess:
		return nil
	}
}

func (h *participantHandler) OnGuessResponse(m domain.GuessResponse) error {
	return fmt.Errorf("%w: %s from %s", errors.ErrUnexpectedMessage, m.Kind(), m.From)
}

func (h *participantHandler) OnRoundResult(m domain.RoundResult) error {
	outcome := domain.OutcomeFor(h.w.self.Identity, m)
	for _, sink := range h.w.sinks {
		if err := sink.Consume(h.ctx, outcome); err != nil {
			h.w.log.Warn("Outcome sink failed", "round", m.Round, "error", err)
		}
	}
	return nil
}
