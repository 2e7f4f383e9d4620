package task

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/errs"

	"github.com/ib-77/outcome/internal/logging"
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/core"
)

type Future[S, F any] struct {
	id     uuid.UUID
	once   sync.Once
	done   chan struct{}
	result rop.Result[S, F]
	log    *logging.Logger
}

// Go submits body to sched. The returned error comes from the scheduler only;
// failures of body are carried by the future's result.
func Go[S any, F error](ctx context.Context, sched core.Scheduler,
	body func(ctx context.Context) (S, F)) (*Future[S, F], error) {

	f := &Future[S, F]{
		id:   uuid.New(),
		done: make(chan struct{}),
	}
	f.log = logging.FromContext(ctx).With(logging.ID(logging.TaskID, f.id))

	err := sched.Submit(ctx, func() {
		f.once.Do(func() {
			start := time.Now()
			f.result = rop.CatchingContext(ctx, body)
			close(f.done)

			f.log.Debug("task finished",
				logging.Bool("success", f.result.IsSuccess()),
				logging.Duration(logging.Elapsed, time.Since(start)))
		})
	})
	if err != nil {
		if rop.IsCancellationError(err) {
			f.log.Debug("task not scheduled", logging.Error(err))
		} else {
			f.log.Warn("task not scheduled", logging.Error(err))
		}
		return nil, errs.Wrap(err)
	}

	f.log.Debug("task submitted")
	return f, nil
}

func (f *Future[S, F]) ID() uuid.UUID {
	return f.id
}

// Done is closed once the result is available.
func (f *Future[S, F]) Done() <-chan struct{} {
	return f.done
}

// Poll returns the result without blocking.
func (f *Future[S, F]) Poll() (rop.Result[S, F], bool) {
	select {
	case <-f.done:
		return f.result, true
	default:
		return rop.Result[S, F]{}, false
	}
}

// Await blocks until the result is available or ctx is done. Giving up does
// not affect the computation; a later Await still receives its result.
func (f *Future[S, F]) Await(ctx context.Context) (rop.Result[S, F], error) {
	select {
	case <-f.done:
		return f.result, nil
	case <-ctx.Done():
		f.log.Debug("await abandoned", logging.Error(ctx.Err()))
		return rop.Result[S, F]{}, ctx.Err()
	}
}

// Catching runs body on its own goroutine and waits for it. The error is
// non-nil only when ctx ends before the result is delivered.
func Catching[S any, F error](ctx context.Context, body func(ctx context.Context) (S, F)) (rop.Result[S, F], error) {
	f, err := Go(ctx, core.GoScheduler{}, body)
	if err != nil {
		return rop.Result[S, F]{}, err
	}
	return f.Await(ctx)
}
