package failable

import (
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
)

// ErrScopeClosed is the panic value raised when Run or Require is used after
// the builder that owns the Scope has returned.
var ErrScopeClosed = errors.New("failable: scope used outside its builder")

// boundary identifies one builder invocation. Abort signals are matched
// against it by pointer, so a signal can only be caught by the builder that
// raised it.
type boundary struct {
	id     uuid.UUID
	closed atomic.Bool
}

type abortSignal[E any] struct {
	owner *boundary
	err   E
}

// Scope is handed to a builder. It constructs Results for the builder's own
// type and, through Run, unwraps intermediate Results.
type Scope[V, E any] struct {
	b *boundary
}

func newScope[V, E any]() *Scope[V, E] {
	return &Scope[V, E]{b: &boundary{id: uuid.New()}}
}

func (s *Scope[V, E]) Success(v V) Result[V, E] {
	return Success[V, E](v)
}

func (s *Scope[V, E]) Failure(e E) Result[V, E] {
	return Failure[V](e)
}

// ID returns the id of the builder invocation this Scope belongs to.
func (s *Scope[V, E]) ID() uuid.UUID {
	return s.b.id
}

func (s *Scope[V, E]) close() {
	s.b.closed.Store(true)
}

func (s *Scope[V, E]) abort(e E) {
	if s.b.closed.Load() {
		panic(ErrScopeClosed)
	}
	panic(&abortSignal[E]{owner: s.b, err: e})
}

// Run returns the value of a successful r. For a failure it abandons the rest
// of the builder, which then evaluates to a failure carrying r's error.
//
// Run must be called on the goroutine running the builder.
func Run[R, V, E any](s *Scope[V, E], r Result[R, E]) R {
	if r.isError {
		s.abort(r.err)
	}
	if s.b.closed.Load() {
		panic(ErrScopeClosed)
	}
	return r.value
}

// Require aborts the builder with e unless ok holds.
func Require[V, E any](s *Scope[V, E], ok bool, e E) {
	if s.b.closed.Load() {
		panic(ErrScopeClosed)
	}
	if !ok {
		s.abort(e)
	}
}

// Failable runs builder and returns its Result. A Run on a failure anywhere
// below builder, however deeply nested, ends the call with that failure.
// Every other panic passes through untouched.
func Failable[V, E any](builder func(s *Scope[V, E]) Result[V, E]) (res Result[V, E]) {
	s := newScope[V, E]()
	defer s.close()
	defer settle(s, &res, nil)
	return builder(s)
}

// settle must be deferred directly so that recover sees the builder's panic.
// aborted, when set, records whether the result came from an abort.
func settle[V, E any](s *Scope[V, E], res *Result[V, E], aborted *bool) {
	r := recover()
	if r == nil {
		return
	}
	sig, ok := r.(*abortSignal[E])
	if !ok || sig.owner != s.b {
		panic(r)
	}
	*res = Failure[V](sig.err)
	if aborted != nil {
		*aborted = true
	}
}
