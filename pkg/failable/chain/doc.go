// Package chain provides a fluent wrapper around failable.Result[V, E]
// for building synchronous chains that carry a context.
//
// It composes FlatMap, Map, MapError, Tee and Match behind a convenient
// Chain[V, E] type, so each step sees the chain's context without the caller
// threading it by hand.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[V, E] or value
// - Then: switch to a new Result[V2, E] via a function
// - ThenTry: call a function (V2, error) and convert error to failure
// - Map: transform the successful value (V -> V2)
// - MapError: rewrite the failure value
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
