// Package domain contains core concepts of the guessing game.
// This file defines the closed set of messages exchanged between
// the coordinator and the participants.
package domain

import "github.com/google/uuid"

type MessageKind string

const (
	GuessRequestKind  MessageKind = "GuessRequest"
	GuessResponseKind MessageKind = "GuessResponse"
	RoundResultKind   MessageKind = "RoundResult"
)

// Message is sealed: only the three variants below implement it.
// Receivers never switch on the concrete type, they pass a Handler to Accept,
// so adding a variant breaks every receive site at compile time.
type Message interface {
	Kind() MessageKind
	RoundID() uuid.UUID
	Accept(h Handler) error
	sealed()
}

// Handler must handle every message variant.
type Handler interface {
	OnGuessRequest(m GuessRequest) error
	OnGuessResponse(m GuessResponse) error
	OnRoundResult(m RoundResult) error
}

// GuessRequest asks a participant for a guess in [0, UpperBound].
// A negative UpperBound is the sender's responsibility and is not checked.
type GuessRequest struct {
	Round      uuid.UUID
	UpperBound int
	ReplyTo    Address
}

func (m GuessRequest) Kind() MessageKind { return GuessRequestKind }
func (m GuessRequest) RoundID() uuid.UUID { return m.Round }
func (m GuessRequest) Accept(h Handler) error { return h.OnGuessRequest(m) }
func (GuessRequest) sealed() {}

// GuessResponse carries one guess for the current round.
type GuessResponse struct {
	Round uuid.UUID
	Value int
	From  Identity
}

func (m GuessResponse) Kind() MessageKind { return GuessResponseKind }
func (m GuessResponse) RoundID() uuid.UUID { return m.Round }
func (m GuessResponse) Accept(h Handler) error { return h.OnGuessResponse(m) }
func (GuessResponse) sealed() {}

// RoundResult is broadcast to every participant once a round is resolved.
// Winner is nil when the round is voided.
type RoundResult struct {
	Round  uuid.UUID
	Winner *Identity
}

func (m RoundResult) Kind() MessageKind { return RoundResultKind }
func (m RoundResult) RoundID() uuid.UUID { return m.Round }
func (m RoundResult) Accept(h Handler) error { return h.OnRoundResult(m) }
func (RoundResult) sealed() {}
