package rop

type ResultProvider[S any] interface {
	// Result returns the successful result value
	Result() S
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithFailure defines an interface for types that carry either a result or a typed failure
type WithFailure[S, F any] interface {
	ResultProvider[S]
	// Failure returns the failure value if the operation failed
	Failure() F
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

var _ WithFailure[int, error] = Result[int, error]{}
