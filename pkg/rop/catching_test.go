package rop

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type someError struct {
	code int
}

func (e *someError) Error() string {
	return "some error " + strconv.Itoa(e.code)
}

type valueError struct{}

func (valueError) Error() string { return "value error" }

func TestCatching_Success(t *testing.T) {
	t.Parallel()

	calls := 0
	r := Catching(func() (string, *someError) {
		calls++
		return "done", nil
	})

	assert.Equal(t, 1, calls)
	require.True(t, r.IsSuccess())
	assert.Equal(t, "done", r.Result())
}

func TestCatching_Failure(t *testing.T) {
	t.Parallel()

	want := &someError{code: 7}
	calls := 0
	r := Catching(func() (string, *someError) {
		calls++
		return "ignored", want
	})

	assert.Equal(t, 1, calls)
	require.True(t, r.IsFailure())
	assert.Same(t, want, r.Failure())
	assert.Equal(t, "", r.Result())
}

func TestCatching_ValueTypedFailureIsAlwaysFailure(t *testing.T) {
	t.Parallel()

	r := Catching(func() (int, valueError) { return 1, valueError{} })

	require.True(t, r.IsFailure())
	assert.Equal(t, valueError{}, r.Failure())
}

func TestCatchingContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	r := CatchingContext(ctx, func(ctx context.Context) (string, error) {
		return ctx.Value(key{}).(string), nil
	})

	require.True(t, r.IsSuccess())
	assert.Equal(t, "v", r.Result())
}

func TestTry(t *testing.T) {
	t.Parallel()

	r := Try(func() (int, error) { return strconv.Atoi("12") })
	require.True(t, r.IsSuccess())
	assert.Equal(t, 12, r.Result())

	r = Try(func() (int, error) { return strconv.Atoi("x") })
	require.True(t, r.IsFailure())

	var numErr *strconv.NumError
	assert.True(t, errors.As(r.Failure(), &numErr))
}
