// Package random draws the integers used for secrets, guess bounds and guesses.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source draws uniformly in [0, max]. It is safe for concurrent use.
type Source struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a Source backed by the process-wide generator.
func New() *Source {
	return &Source{}
}

// NewSeeded returns a reproducible Source.
func NewSeeded(seed1, seed2 uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// Random returns one of the max+1 values {0, ..., max} with equal probability.
// max must not be negative; this is the caller's responsibility and is not checked.
func (s *Source) Random(max int) int {
	if s.r == nil {
		return int(rand.Float64() * float64(max+1))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(s.r.Float64() * float64(max+1))
}
