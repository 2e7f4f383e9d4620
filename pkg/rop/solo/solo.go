package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
)

func Succeed[S, F any](input S) rop.Result[S, F] {
	return rop.Success[S, F](input)
}

func Fail[S, F any](failure F) rop.Result[S, F] {
	return rop.Fail[S](failure)
}

func Validate[S, F any](ctx context.Context, input S,
	validate func(ctx context.Context, in S) (isValid bool, failure F)) rop.Result[S, F] {
	return AndValidate(ctx, Succeed[S, F](input), validate)
}

func AndValidate[S, F any](ctx context.Context, input rop.Result[S, F],
	validate func(ctx context.Context, in S) (valid bool, failure F)) rop.Result[S, F] {

	if input.IsSuccess() {
		if isValid, failure := validate(ctx, input.Result()); !isValid {
			return rop.Fail[S](failure)
		}
	}
	return input
}

func Switch[In, Out, F any](ctx context.Context,
	input rop.Result[In, F],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, F]) rop.Result[Out, F] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In, Out, F any](ctx context.Context,
	input rop.Result[In, F],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, F] {

	if input.IsSuccess() {
		return rop.Success[Out, F](onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

// MapFailure transforms the failure value, leaving successes untouched.
func MapFailure[S, In, Out any](ctx context.Context,
	input rop.Result[S, In],
	onFailure func(ctx context.Context, f In) Out) rop.Result[S, Out] {

	if input.IsSuccess() {
		return rop.Success[S, Out](input.Result())
	}
	return rop.Fail[S](onFailure(ctx, input.Failure()))
}

// Recover turns a failure back into a success.
func Recover[S, F any](ctx context.Context,
	input rop.Result[S, F],
	onFailure func(ctx context.Context, f F) S) rop.Result[S, F] {

	if input.IsFailure() {
		return rop.Success[S, F](onFailure(ctx, input.Failure()))
	}
	return input
}

func Tee[S, F any](ctx context.Context,
	input rop.Result[S, F],
	onSuccess func(ctx context.Context, r rop.Result[S, F])) rop.Result[S, F] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[S, F any](ctx context.Context, input rop.Result[S, F],
	onSuccess func(ctx context.Context, r S),
	onFailure func(ctx context.Context, f F)) rop.Result[S, F] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		onFailure(ctx, input.Failure())
	}

	return input
}

// Try calls onTryExecute on success and captures its (Out, error) outcome.
func Try[In, Out any](ctx context.Context, input rop.Of[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Of[Out] {

	if input.IsSuccess() {
		return rop.Catching(func() (Out, error) {
			return onTryExecute(ctx, input.Result())
		})
	}
	return rop.FailFrom[In, Out](input)
}

func Finally[In, F, Out any](ctx context.Context, input rop.Result[In, F],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, f F) Out) Out {

	return rop.Fold(input,
		func(r In) Out { return onSuccess(ctx, r) },
		func(f F) Out { return onFailure(ctx, f) })
}
