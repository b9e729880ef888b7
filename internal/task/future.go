package task

import "context"

// Future is the handle of a task started with [Run].
type Future struct {
	done   chan struct{}
	err    error
	cancel context.CancelFunc
}

// Run starts task on its own goroutine and returns immediately. The task
// observes ctx as well as [Future.Cancel].
func Run[P any](ctx context.Context, task Task[P], params P) *Future {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(f.done)
		defer cancel()
		f.err = task.Execute(ctx, params)
	}()

	return f
}

// Done is closed once the task has returned.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the task returns and yields its error.
func (f *Future) Wait() error {
	<-f.done
	return f.err
}

// Cancel requests cancellation. A task already committing finishes its
// commit first.
func (f *Future) Cancel() {
	f.cancel()
}
