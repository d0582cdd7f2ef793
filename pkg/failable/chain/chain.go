package chain

import (
	"context"

	"github.com/ib-77/failable/pkg/failable"
)

// Chain wraps a failable.Result with context to enable fluent chaining
type Chain[V, E any] struct {
	ctx    context.Context
	result failable.Result[V, E]
}

// Start creates a new chain from a failable.Result
func Start[V, E any](ctx context.Context, result failable.Result[V, E]) *Chain[V, E] {
	return &Chain[V, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[V, E any](ctx context.Context, value V) *Chain[V, E] {
	return &Chain[V, E]{
		ctx:    ctx,
		result: failable.Success[V, E](value),
	}
}

// Result returns the underlying failable.Result
func (c *Chain[V, E]) Result() failable.Result[V, E] {
	return c.result
}

// Then chains a function that returns failable.Result[V2, E]
func Then[V, V2, E any](c *Chain[V, E], onSuccess func(context.Context, V) failable.Result[V2, E]) *Chain[V2, E] {
	return &Chain[V2, E]{
		ctx: c.ctx,
		result: failable.FlatMap(c.result, func(v V) failable.Result[V2, E] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (V2, error)
func ThenTry[V, V2 any](c *Chain[V, error], tryOnSuccess func(context.Context, V) (V2, error)) *Chain[V2, error] {
	return Then(c, func(ctx context.Context, v V) failable.Result[V2, error] {
		return failable.FromTuple(tryOnSuccess(ctx, v))
	})
}

// Map chains a pure transformation function
func Map[V, V2, E any](c *Chain[V, E], onSuccess func(context.Context, V) V2) *Chain[V2, E] {
	return &Chain[V2, E]{
		ctx: c.ctx,
		result: failable.Map(c.result, func(v V) V2 {
			return onSuccess(c.ctx, v)
		}),
	}
}

// MapError rewrites the failure value, keeping its type
func (c *Chain[V, E]) MapError(onFailure func(context.Context, E) E) *Chain[V, E] {
	return &Chain[V, E]{
		ctx: c.ctx,
		result: failable.MapError(c.result, func(e E) E {
			return onFailure(c.ctx, e)
		}),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[V, E]) Ensure(onSuccess func(context.Context, V)) *Chain[V, E] {
	return &Chain[V, E]{
		ctx: c.ctx,
		result: failable.Tee(c.result, func(v V) {
			onSuccess(c.ctx, v)
		}),
	}
}

// Finally collapses the chain into a final value using failable.Match
func Finally[V, E, T any](c *Chain[V, E], onSuccess func(context.Context, V) T, onFailure func(context.Context, E) T) T {
	return failable.Match(c.result, failable.Cases[V, E, T]{
		Success: func(v V) T { return onSuccess(c.ctx, v) },
		Failure: func(e E) T { return onFailure(c.ctx, e) },
	})
}
