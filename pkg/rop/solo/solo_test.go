package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/outcome/pkg/rop"
)

func nonNegative(_ context.Context, in int) (bool, string) {
	if in < 0 {
		return false, "negative"
	}
	return true, ""
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, rop.Success[int, string](3), Validate(ctx, 3, nonNegative))
	assert.Equal(t, rop.Fail[int]("negative"), Validate(ctx, -3, nonNegative))
}

func TestAndValidate_KeepsEarlierFailure(t *testing.T) {
	t.Parallel()

	called := false
	out := AndValidate(context.Background(), Fail[int]("earlier"),
		func(ctx context.Context, in int) (bool, string) {
			called = true
			return false, "later"
		})

	assert.False(t, called)
	assert.Equal(t, "earlier", out.Failure())
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	parse := func(ctx context.Context, s string) rop.Of[int] {
		return rop.Try(func() (int, error) { return strconv.Atoi(s) })
	}

	assert.Equal(t, 5, Switch(ctx, Succeed[string, error]("5"), parse).Result())
	assert.True(t, Switch(ctx, Succeed[string, error]("five"), parse).IsFailure())

	boom := errors.New("boom")
	assert.Same(t, boom, Switch(ctx, Fail[string](boom), parse).Failure())
}

func TestMap_MapFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	double := func(ctx context.Context, v int) int { return v * 2 }
	assert.Equal(t, rop.Success[int, string](4), Map(ctx, Succeed[int, string](2), double))
	assert.Equal(t, rop.Fail[int]("x"), Map(ctx, Fail[int]("x"), double))

	length := func(ctx context.Context, f string) int { return len(f) }
	assert.Equal(t, rop.Fail[int](3), MapFailure(ctx, Fail[int]("abc"), length))
	assert.Equal(t, rop.Success[int, int](1), MapFailure(ctx, Succeed[int, string](1), length))
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fallback := func(ctx context.Context, f string) int { return -1 }
	assert.Equal(t, rop.Success[int, string](-1), Recover(ctx, Fail[int]("x"), fallback))
	assert.Equal(t, rop.Success[int, string](9), Recover(ctx, Succeed[int, string](9), fallback))
}

func TestTee_DoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var events []string
	Tee(ctx, Succeed[int, string](1), func(ctx context.Context, r rop.Result[int, string]) {
		events = append(events, "tee "+strconv.Itoa(r.Result()))
	})
	Tee(ctx, Fail[int]("x"), func(ctx context.Context, r rop.Result[int, string]) {
		events = append(events, "tee failure")
	})

	onSuccess := func(ctx context.Context, v int) { events = append(events, "ok "+strconv.Itoa(v)) }
	onFailure := func(ctx context.Context, f string) { events = append(events, "failed "+f) }
	out := DoubleTee(ctx, Succeed[int, string](2), onSuccess, onFailure)
	DoubleTee(ctx, Fail[int]("y"), onSuccess, onFailure)

	assert.Equal(t, rop.Success[int, string](2), out)
	assert.Equal(t, []string{"tee 1", "ok 2", "failed y"}, events)
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	atoi := func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) }

	assert.Equal(t, 8, Try(ctx, Succeed[string, error]("8"), atoi).Result())
	assert.True(t, Try(ctx, Succeed[string, error]("eight"), atoi).IsFailure())

	boom := errors.New("boom")
	assert.Same(t, boom, Try(ctx, Fail[string](boom), atoi).Failure())
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(ctx context.Context, v int) string { return strconv.Itoa(v) }
	onFailure := func(ctx context.Context, f error) string { return "error: " + f.Error() }

	assert.Equal(t, "4", Finally(ctx, Succeed[int, error](4), onSuccess, onFailure))
	assert.Equal(t, "error: bad", Finally(ctx, Fail[int](errors.New("bad")), onSuccess, onFailure))
}
