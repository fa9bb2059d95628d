//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
)

// Task is one unit of a report batch, typically a single aggregator.
// Task doesn't protect itself, the runner recovers its panics.
type Task interface {
	Name() string
	Run(ctx context.Context) error
}

type IRunner interface {
	Run(ctx context.Context, tasks ...Task) map[string]error
}

// TaskFunc adapts a named function to a Task.
type TaskFunc struct {
	Label string
	Fn    func(ctx context.Context) error
}

func (t TaskFunc) Name() string { return t.Label }

func (t TaskFunc) Run(ctx context.Context) error { return t.Fn(ctx) }

// Func builds a task from a function that cannot fail.
func Func(name string, fn func()) Task {
	return TaskFunc{Label: name, Fn: func(context.Context) error {
		fn()
		return nil
	}}
}
