// Package core holds the knobs of the failable drivers. They travel in a
// context.Context so that a builder started with Async picks them up without
// changing its signature.
//
// - WithLogger/GetLogger: zap logger used to report defects and aborts
// - WithTraceAborts/IsTraceAbortsEnabled: log every abort converted to a failure
package core
