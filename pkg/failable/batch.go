package failable

import "context"

// MapM applies f to items in order and collects the success values. It stops
// at the first failure and returns it unchanged; later items are never passed
// to f. An empty input yields an empty success.
func MapM[T, U, E any](items []T, f func(T) Result[U, E]) Result[[]U, E] {
	values := make([]U, 0, len(items))
	for _, item := range items {
		res := f(item)
		if res.isError {
			return failed[[]U](res)
		}
		values = append(values, res.value)
	}
	return Success[[]U, E](values)
}

// MapMAsync is MapM for asynchronous steps. The Future for an item is awaited
// before f is called for the next one.
func MapMAsync[T, U, E any](ctx context.Context, items []T,
	f func(ctx context.Context, item T) *Future[U, E]) *Future[[]U, E] {

	return Async(ctx, func(ctx context.Context, s *Scope[[]U, E]) Result[[]U, E] {
		values := make([]U, 0, len(items))
		for _, item := range items {
			values = append(values, Run(s, f(ctx, item).Await()))
		}
		return s.Success(values)
	})
}
