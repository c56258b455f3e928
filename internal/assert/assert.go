// Package assert implements the spec's debug-build invariant checks: a
// guard that panics when compiled with the solverdebug build tag and costs
// nothing otherwise.
package assert

// That panics with a formatted message if cond is false. Call sites live in
// the solver's hot path (set/unset and the heap), so
// this must stay a no-op in ordinary builds.
func That(cond bool, format string, args ...interface{}) {
	that(cond, format, args...)
}
