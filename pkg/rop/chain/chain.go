package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// Chain carries a result and the context its steps run with. Steps after a
// failure are skipped and the failure is handed on unchanged.
type Chain[S, F any] struct {
	ctx    context.Context
	result rop.Result[S, F]
}

func Start[S, F any](ctx context.Context, result rop.Result[S, F]) *Chain[S, F] {
	return &Chain[S, F]{ctx: ctx, result: result}
}

func FromValue[S, F any](ctx context.Context, value S) *Chain[S, F] {
	return Start(ctx, rop.Success[S, F](value))
}

func (c *Chain[S, F]) Result() rop.Result[S, F] {
	return c.result
}

func next[S, U, F any](c *Chain[S, F], result rop.Result[U, F]) *Chain[U, F] {
	return &Chain[U, F]{ctx: c.ctx, result: result}
}

// Then continues with a step that produces its own result.
func Then[S, U, F any](c *Chain[S, F], step func(context.Context, S) rop.Result[U, F]) *Chain[U, F] {
	return next(c, solo.Switch(c.ctx, c.result, step))
}

// ThenCatching continues with a fallible step. A nil failure from step is a
// success; anything else becomes the chain's failure as returned.
func ThenCatching[S, U any, F error](c *Chain[S, F], step func(context.Context, S) (U, F)) *Chain[U, F] {
	if c.result.IsFailure() {
		return next(c, rop.FailFrom[S, U](c.result))
	}
	v := c.result.Result()
	return next(c, rop.CatchingContext(c.ctx, func(ctx context.Context) (U, F) {
		return step(ctx, v)
	}))
}

// ThenTry is ThenCatching for plain (value, error) steps.
func ThenTry[S, U any](c *Chain[S, error], step func(context.Context, S) (U, error)) *Chain[U, error] {
	return next(c, solo.Try(c.ctx, c.result, step))
}

func Map[S, U, F any](c *Chain[S, F], step func(context.Context, S) U) *Chain[U, F] {
	return next(c, solo.Map(c.ctx, c.result, step))
}

// MapFailure rewrites a failure, for example into its wire form.
func MapFailure[S, F, G any](c *Chain[S, F], onFailure func(context.Context, F) G) *Chain[S, G] {
	return &Chain[S, G]{ctx: c.ctx, result: solo.MapFailure(c.ctx, c.result, onFailure)}
}

// Join pairs the values of two chains. The receiver is inspected first, so
// its failure wins when both failed.
func Join[S, U, F any](c *Chain[S, F], other *Chain[U, F]) *Chain[rop.Tuple2[S, U], F] {
	return next(c, rop.Zip2(c.result, other.result))
}

// Ensure runs onSuccess for its side effect and keeps the result.
func (c *Chain[S, F]) Ensure(onSuccess func(context.Context, S)) *Chain[S, F] {
	return next(c, solo.Tee(c.ctx, c.result,
		func(ctx context.Context, result rop.Result[S, F]) {
			onSuccess(ctx, result.Result())
		}))
}

func Finally[S, F, U any](c *Chain[S, F], onSuccess func(context.Context, S) U, onFailure func(context.Context, F) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
