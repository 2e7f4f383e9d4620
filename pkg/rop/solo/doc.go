// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[S, F]. These functions form the building blocks for failure-aware
// code paths without explicit branching at every step.
//
// Highlights:
// - Succeed/Fail: construct Result[S, F]
// - Validate/AndValidate: apply validation producing a typed failure on invalid input
// - Switch: move from Result[In, F] to Result[Out, F]
// - Map/MapFailure: transform the success or the failure value
// - Recover: turn a failure back into a success
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
