// Package domain contains core concepts of the guessing game.
// This file defines the per-round guess accumulator and the winner rule.
package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// GuessMap accumulates the guess of each participant for one round.
// It is owned by the coordinator and never shared.
type GuessMap map[Identity]int

// Record inserts or overwrites the guess of a participant.
func (g GuessMap) Record(from Identity, value int) {
	g[from] = value
}

// Complete reports whether every member of a pool of the given size has guessed.
func (g GuessMap) Complete(poolSize int) bool {
	return len(g) == poolSize
}

// Resolve returns the participant whose guess is strictly closest to the secret.
// Participants sharing the minimal distance void the round, as does an empty map,
// in which case nil is returned. The result does not depend on iteration order.
func Resolve(secret int, guesses GuessMap) *Identity {
	closest := math.MaxInt
	var winners []Identity
	for participant, value := range guesses {
		distance := Distance(value, secret)
		switch {
		case distance < closest:
			closest = distance
			winners = []Identity{participant}
		case distance == closest:
			winners = append(winners, participant)
		}
	}
	if len(winners) != 1 {
		return nil
	}
	return &winners[0]
}

func Distance(value, secret int) int {
	if value > secret {
		return value - secret
	}
	return secret - value
}

// RoundStarted is emitted once the guess map has been reset for a new round.
type RoundStarted struct {
	Round    uuid.UUID
	Number   uint64
	PoolSize int
	At       time.Time
}

// RoundReport is a transient snapshot of a resolved round.
// It is handed to observers and then dropped.
type RoundReport struct {
	Round      uuid.UUID
	Number     uint64
	Secret     int
	Guesses    GuessMap
	Winner     *Identity
	StartedAt  time.Time
	ResolvedAt time.Time
}

func (r RoundReport) Voided() bool {
	return r.Winner == nil
}
