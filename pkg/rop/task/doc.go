// Package task builds results from computations that run asynchronously.
//
// Go submits a computation to a core.Scheduler and returns a Future whose
// result is delivered exactly once. The computation runs at most once, no
// matter how many callers await it or give up waiting. Cancellation of the
// work itself is up to the computation, which receives the submit context.
package task
