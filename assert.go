//go:build !vectordebug

package vector

// debugChecks enables live-range checks on unchecked accessors.
// Build with -tags vectordebug to turn them on.
const debugChecks = false
