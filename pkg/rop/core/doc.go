// Package core contains the scheduling plumbing behind suspending result
// construction: the Scheduler contract, a goroutine-per-job scheduler, and a
// Pool of fixed worker lines driven by locomotives. Worker counts can be
// carried in a context via WithWorkerOptions.
package core
