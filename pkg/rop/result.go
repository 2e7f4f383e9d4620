package rop

import (
	"errors"
	"fmt"
)

// Result holds either a success value of type S or a failure value of type F.
// The zero value is a failure carrying the zero F; there is no empty state.
type Result[S, F any] struct {
	result    S
	failure   F
	isSuccess bool
}

// Of is a Result whose failure is a plain error.
type Of[S any] = Result[S, error]

func Success[S, F any](r S) Result[S, F] {
	return Result[S, F]{
		result:    r,
		isSuccess: true,
	}
}

func Fail[S, F any](f F) Result[S, F] {
	return Result[S, F]{
		failure:   f,
		isSuccess: false,
	}
}

// FailFrom re-types a failed result to a new success type. It panics on a
// success, since the value would be lost.
func FailFrom[In, Out, F any](from Result[In, F]) Result[Out, F] {
	if from.isSuccess {
		panic("rop: FailFrom called on a successful result")
	}
	return Fail[Out](from.failure)
}

func (r Result[S, F]) Result() S {
	return r.result
}

func (r Result[S, F]) Failure() F {
	return r.failure
}

func (r Result[S, F]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[S, F]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[S, F]) Value() (S, bool) {
	return r.result, r.isSuccess
}

func (r Result[S, F]) FailureValue() (F, bool) {
	return r.failure, !r.isSuccess
}

// Get returns the success value, or a *FailedError carrying the failure.
func (r Result[S, F]) Get() (S, error) {
	if r.isSuccess {
		return r.result, nil
	}
	var zero S
	return zero, &FailedError[F]{Failure: r.failure}
}

// Match calls exactly one of the handlers. Nil handlers are skipped.
func (r Result[S, F]) Match(onSuccess func(S), onFailure func(F)) {
	if r.isSuccess {
		if onSuccess != nil {
			onSuccess(r.result)
		}
		return
	}
	if onFailure != nil {
		onFailure(r.failure)
	}
}

func (r Result[S, F]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("success(%v)", r.result)
	}
	return fmt.Sprintf("failure(%v)", r.failure)
}

func Fold[S, F, Out any](r Result[S, F], onSuccess func(S) Out, onFailure func(F) Out) Out {
	if r.isSuccess {
		return onSuccess(r.result)
	}
	return onFailure(r.failure)
}

// FailedError is returned by Get for failed results.
type FailedError[F any] struct {
	Failure F
}

func (e *FailedError[F]) Error() string {
	if err, ok := any(e.Failure).(error); ok && !IsNil(err) {
		return err.Error()
	}
	return fmt.Sprintf("rop: failure %v", e.Failure)
}

// Unwrap exposes the failure when F is an error.
func (e *FailedError[F]) Unwrap() error {
	if err, ok := any(e.Failure).(error); ok && !IsNil(err) {
		return err
	}
	return nil
}

// AsFailure extracts the typed failure from an error returned by Get.
func AsFailure[F any](err error) (F, bool) {
	var fe *FailedError[F]
	if errors.As(err, &fe) {
		return fe.Failure, true
	}
	var zero F
	return zero, false
}
