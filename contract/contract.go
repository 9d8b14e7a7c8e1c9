//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"guess-lab/domain"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// NamedWorker lets a worker override the reflected type name in supervision logs.
type NamedWorker interface {
	Worker
	Name() string
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	if named, ok := w.(NamedWorker); ok {
		return named.Name()
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// RandomSource draws an integer in [0, max].
type RandomSource interface {
	Random(max int) int
}

// OutcomeSink receives what a participant learned from a round result.
type OutcomeSink interface {
	Consume(ctx context.Context, outcome domain.Outcome) error
}

// RoundObserver follows the coordinator through the round lifecycle.
// Calls happen on the coordinator goroutine and must not block for long.
type RoundObserver interface {
	RoundStarted(ctx context.Context, started domain.RoundStarted)
	RoundResolved(ctx context.Context, report domain.RoundReport)
}

type IGame interface {
	Start(ctx context.Context) error
	Stop()
}
