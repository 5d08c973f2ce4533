package tasks

import (
	"context"
	"log"
	"sync"
	"time"
)

// Runner dispatches fire-and-forget background work. Best-effort contract:
// failures are logged, never retried, and a crash between the HTTP response
// and task completion drops the side effect.
type Runner struct {
	wg      sync.WaitGroup
	timeout time.Duration
}

func NewRunner() *Runner {
	return &Runner{timeout: time.Minute}
}

// Go runs fn on its own goroutine with a bounded context, recovering panics
// so a bad task cannot take down the process.
func (r *Runner) Go(name string, fn func(ctx context.Context)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				log.Printf("background task %s panicked: %v", name, p)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		fn(ctx)
	}()
}

// Wait blocks until all dispatched tasks finish or ctx expires; used to
// drain in-flight work during shutdown.
func (r *Runner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
