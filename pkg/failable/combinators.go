package failable

import "errors"

var errNilFailure = errors.New("failable: failure with nil error")

// Map applies f to the success value. A failure is carried over unchanged and
// f is not called. A panic raised by f is not converted into a failure.
func Map[V, V2, E any](r Result[V, E], f func(V) V2) Result[V2, E] {
	if r.isError {
		return failed[V2](r)
	}
	return Success[V2, E](f(r.value))
}

// MapError applies f to the failure value and leaves a success untouched.
func MapError[V, E, E2 any](r Result[V, E], f func(E) E2) Result[V, E2] {
	if !r.isError {
		return Result[V, E2]{value: r.value}
	}
	return Failure[V](f(r.err))
}

// FlatMap chains a dependent computation. The first failure in a chain of
// FlatMap calls wins; none of the later functions run.
func FlatMap[V, V2, E any](r Result[V, E], f func(V) Result[V2, E]) Result[V2, E] {
	if r.isError {
		return failed[V2](r)
	}
	return f(r.value)
}

// Cases holds the two branches of Match. Both must be set.
type Cases[V, E, T any] struct {
	Success func(V) T
	Failure func(E) T
}

// Match calls exactly one of the branches and returns its value.
func Match[V, E, T any](r Result[V, E], cases Cases[V, E, T]) T {
	if r.isError {
		return cases.Failure(r.err)
	}
	return cases.Success(r.value)
}

// Tee runs onSuccess for a success and returns r as is.
func Tee[V, E any](r Result[V, E], onSuccess func(V)) Result[V, E] {
	if !r.isError {
		onSuccess(r.value)
	}
	return r
}

// TeeError runs onFailure for a failure and returns r as is.
func TeeError[V, E any](r Result[V, E], onFailure func(E)) Result[V, E] {
	if r.isError {
		onFailure(r.err)
	}
	return r
}

// Recover turns a failure into a success using f.
func Recover[V, E any](r Result[V, E], f func(E) V) Result[V, E] {
	if !r.isError {
		return r
	}
	return Success[V, E](f(r.err))
}

func OrElse[V, E any](r Result[V, E], fallback V) V {
	if r.isError {
		return fallback
	}
	return r.value
}

// FromTuple converts a Go (value, error) pair. A nil error is a success.
func FromTuple[V any](v V, err error) Result[V, error] {
	if err != nil {
		return Failure[V](err)
	}
	return Success[V, error](v)
}

// ToTuple is the inverse of FromTuple. A failure holding a nil error still
// reports a non-nil error.
func ToTuple[V any](r Result[V, error]) (V, error) {
	if r.isError {
		var zero V
		if r.err == nil {
			return zero, errNilFailure
		}
		return zero, r.err
	}
	return r.value, nil
}
