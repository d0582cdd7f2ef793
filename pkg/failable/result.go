package failable

import "fmt"

// Result is the outcome of a computation that either succeeded with a V or
// failed with an E. The zero Result is a success carrying the zero V.
type Result[V, E any] struct {
	value   V
	err     E
	isError bool
}

// Summary is the plain structural view of a Result. Only the field matching
// IsError is populated.
type Summary[V, E any] struct {
	IsError bool
	Value   V
	Error   E
}

func Success[V, E any](v V) Result[V, E] {
	return Result[V, E]{
		value:   v,
		isError: false,
	}
}

func Failure[V, E any](e E) Result[V, E] {
	return Result[V, E]{
		err:     e,
		isError: true,
	}
}

func (r Result[V, E]) IsError() bool {
	return r.isError
}

func (r Result[V, E]) IsSuccess() bool {
	return !r.isError
}

// Value returns the success value, or the zero V for a failure.
func (r Result[V, E]) Value() V {
	return r.value
}

// Err returns the failure value, or the zero E for a success.
func (r Result[V, E]) Err() E {
	return r.err
}

// Get returns both sides and reports whether the Result is a success.
func (r Result[V, E]) Get() (V, E, bool) {
	return r.value, r.err, !r.isError
}

func (r Result[V, E]) Summary() Summary[V, E] {
	if r.isError {
		return Summary[V, E]{IsError: true, Error: r.err}
	}
	return Summary[V, E]{IsError: false, Value: r.value}
}

func (r Result[V, E]) String() string {
	if r.isError {
		return fmt.Sprintf("Failure(%v)", r.err)
	}
	return fmt.Sprintf("Success(%v)", r.value)
}

// failed re-types a failure without touching its error.
func failed[V2, V, E any](r Result[V, E]) Result[V2, E] {
	return Result[V2, E]{err: r.err, isError: true}
}
