package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_ClosestGuessWins(t *testing.T) {
	req := require.New(t)
	alice, bob, carol := NewIdentity("alice"), NewIdentity("bob"), NewIdentity("carol")

	// Given three guesses around a secret of 50
	guesses := GuessMap{}
	guesses.Record(alice, 10)
	guesses.Record(bob, 50)
	guesses.Record(carol, 90)

	// When the round is resolved
	winner := Resolve(50, guesses)

	// Then the exact guess wins
	req.NotNil(winner)
	req.Equal(bob, *winner)
}

func TestResolve_TieVoidsRound(t *testing.T) {
	req := require.New(t)
	guesses := GuessMap{}
	guesses.Record(NewIdentity("alice"), 40)
	guesses.Record(NewIdentity("bob"), 60)

	req.Nil(Resolve(50, guesses))
}

func TestResolve_TieOnMinimumAfterWorseGuess(t *testing.T) {
	req := require.New(t)
	guesses := GuessMap{}
	guesses.Record(NewIdentity("alice"), 0)
	guesses.Record(NewIdentity("bob"), 48)
	guesses.Record(NewIdentity("carol"), 52)
	guesses.Record(NewIdentity("dave"), 100)

	req.Nil(Resolve(50, guesses))
}

func TestResolve_TieAboveMinimumDoesNotVoid(t *testing.T) {
	req := require.New(t)
	carol := NewIdentity("carol")
	guesses := GuessMap{}
	guesses.Record(NewIdentity("alice"), 40)
	guesses.Record(NewIdentity("bob"), 60)
	guesses.Record(carol, 49)

	winner := Resolve(50, guesses)
	req.NotNil(winner)
	req.Equal(carol, *winner)
}

func TestResolve_EmptyMapHasNoWinner(t *testing.T) {
	require.Nil(t, Resolve(12, GuessMap{}))
}

func TestResolve_WinnerIsStrictlyClosest(t *testing.T) {
	req := require.New(t)
	r := rand.New(rand.NewPCG(7, 11))
	pool := []Identity{
		NewIdentity("a"), NewIdentity("b"), NewIdentity("c"),
		NewIdentity("d"), NewIdentity("e"),
	}

	for i := 0; i < 2000; i++ {
		secret := r.IntN(101)
		guesses := GuessMap{}
		for _, p := range pool {
			guesses.Record(p, r.IntN(101))
		}

		winner := Resolve(secret, guesses)
		if winner == nil {
			// A voided round must come from a shared minimum
			best := Distance(guesses[pool[0]], secret)
			for _, p := range pool {
				best = min(best, Distance(guesses[p], secret))
			}
			shared := 0
			for _, p := range pool {
				if Distance(guesses[p], secret) == best {
					shared++
				}
			}
			req.GreaterOrEqual(shared, 2)
			continue
		}
		winning := Distance(guesses[*winner], secret)
		for _, p := range pool {
			if p == *winner {
				continue
			}
			req.Less(winning, Distance(guesses[p], secret))
		}
	}
}

func TestGuessMap_RecordOverwritesAndCompletes(t *testing.T) {
	req := require.New(t)
	alice := NewIdentity("alice")
	guesses := GuessMap{}

	guesses.Record(alice, 3)
	guesses.Record(alice, 7)

	req.Len(guesses, 1)
	req.Equal(7, guesses[alice])
	req.True(guesses.Complete(1))
	req.False(guesses.Complete(2))
}

func TestDistance(t *testing.T) {
	req := require.New(t)
	req.Equal(10, Distance(40, 50))
	req.Equal(10, Distance(60, 50))
	req.Equal(0, Distance(50, 50))
}
