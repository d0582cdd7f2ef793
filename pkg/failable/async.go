package failable

import (
	"context"
	"errors"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/ib-77/failable/pkg/failable/core"
)

// ErrBuilderExited is the defect recorded when an asynchronous builder calls
// runtime.Goexit instead of returning.
var ErrBuilderExited = errors.New("failable: builder exited without a result")

// Future is the eventual Result of an asynchronous builder. It settles once.
type Future[V, E any] struct {
	done   chan struct{}
	res    Result[V, E]
	defect any
}

// AsyncFunc is a function from Req to a Future of Result[Res, Err].
type AsyncFunc[Req, Res, Err any] func(ctx context.Context, req Req) *Future[Res, Err]

// Async starts builder on its own goroutine and returns its Future. The
// builder may block on other Futures between Run calls; an abort raised after
// any number of such waits still settles the Future with a failure. A panic
// that is not an abort is kept and raised again by Await.
//
// ctx is passed to the builder as is. Async never cancels it.
func Async[V, E any](ctx context.Context,
	builder func(ctx context.Context, s *Scope[V, E]) Result[V, E]) *Future[V, E] {

	f := &Future[V, E]{done: make(chan struct{})}
	go f.drive(ctx, newScope[V, E](), builder)
	return f
}

// Resolved returns a Future already settled with r.
func Resolved[V, E any](r Result[V, E]) *Future[V, E] {
	f := &Future[V, E]{done: make(chan struct{}), res: r}
	close(f.done)
	return f
}

func (f *Future[V, E]) drive(ctx context.Context, s *Scope[V, E],
	builder func(ctx context.Context, s *Scope[V, E]) Result[V, E]) {

	logger := core.GetLogger(ctx).With(zap.Stringer("builder", s.ID()))
	returned := false

	defer close(f.done)
	defer func() {
		if r := recover(); r != nil {
			f.defect = r
			logger.Error("builder panicked", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			return
		}
		if !returned {
			f.defect = ErrBuilderExited
			logger.Error("builder exited without a result")
		}
	}()

	aborted := false
	f.res = runScoped(ctx, s, builder, &aborted)
	returned = true

	if aborted && core.IsTraceAbortsEnabled(ctx, false) {
		logger.Debug("builder aborted", zap.Any("error", f.res.err))
	}
}

func runScoped[V, E any](ctx context.Context, s *Scope[V, E],
	builder func(ctx context.Context, s *Scope[V, E]) Result[V, E], aborted *bool) (res Result[V, E]) {

	defer s.close()
	defer settle(s, &res, aborted)
	return builder(ctx, s)
}

// Done is closed once the Future has settled.
func (f *Future[V, E]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the Future settles. If the builder panicked, Await
// panics with the same value on the calling goroutine.
func (f *Future[V, E]) Await() Result[V, E] {
	<-f.done
	return f.outcome()
}

// AwaitContext is Await bounded by ctx. It returns ctx.Err() when ctx is done
// before the Future settles; the builder keeps running.
func (f *Future[V, E]) AwaitContext(ctx context.Context) (Result[V, E], error) {
	select {
	case <-f.done:
		return f.outcome(), nil
	default:
	}

	select {
	case <-f.done:
		return f.outcome(), nil
	case <-ctx.Done():
		return Result[V, E]{}, ctx.Err()
	}
}

func (f *Future[V, E]) outcome() Result[V, E] {
	if f.defect != nil {
		panic(f.defect)
	}
	return f.res
}
