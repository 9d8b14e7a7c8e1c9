package domain

import "github.com/google/uuid"

type OutcomeStatus string

const (
	WON    OutcomeStatus = "WON"
	LOST   OutcomeStatus = "LOST"
	VOIDED OutcomeStatus = "VOIDED"
)

// Outcome is what a single participant learns from a RoundResult.
type Outcome struct {
	Round       uuid.UUID
	Participant Identity
	Winner      *Identity
	Status      OutcomeStatus
}

func OutcomeFor(self Identity, result RoundResult) Outcome {
	status := LOST
	switch {
	case result.Winner == nil:
		status = VOIDED
	case *result.Winner == self:
		status = WON
	}
	return Outcome{
		Round:       result.Round,
		Participant: self,
		Winner:      result.Winner,
		Status:      status,
	}
}
