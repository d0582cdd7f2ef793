// Package failable contains Result[V, E], a value that is either a success
// carrying a V or a failure carrying an E, and the tools to compose Results
// without checking each one by hand.
//
// Highlights:
// - Success/Failure: construct Result[V, E]
// - IsError/Summary/Get: inspect a Result without composing it
// - Map/MapError/FlatMap/Match: total combinators; FlatMap short-circuits on the first failure
// - Tee/TeeError/Recover/OrElse/FromTuple/ToTuple: helpers around the core four
// - Failable: run a builder that unwraps intermediate Results with Run and
//   stops at the first failure
// - Async/Future/Resolved: the same builder on its own goroutine; Await returns the Result
// - MapM/MapMAsync: apply a Result-producing function to a slice, first failure wins
//
// A builder looks like straight-line code:
//
//	res := failable.Failable(func(s *failable.Scope[int, string]) failable.Result[int, string] {
//		raw := failable.Run(s, lookup(key))
//		n := failable.Run(s, parse(raw))
//		return s.Success(n)
//	})
//
// Run on a failure ends the builder at that point and Failable returns the
// failure. Any other panic in the builder is not touched and reaches the
// caller as usual.
package failable
