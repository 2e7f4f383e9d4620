package rop

import "context"

// Catching evaluates body once and captures its outcome. A nil failure (nil
// interface, or nil pointer, map, slice, chan or func) means success; any
// other failure value is kept exactly as returned. Panics are not recovered.
//
// F must be able to hold nil for body to succeed. With a value type such as
// a struct implementing error every call yields a failure; return a pointer
// to the struct, or the error interface, instead.
func Catching[S any, F error](body func() (S, F)) Result[S, F] {
	v, f := body()
	if IsNil(f) {
		return Success[S, F](v)
	}
	return Fail[S](f)
}

func CatchingContext[S any, F error](ctx context.Context, body func(ctx context.Context) (S, F)) Result[S, F] {
	return Catching(func() (S, F) { return body(ctx) })
}

// Try is Catching for plain (value, error) functions.
func Try[S any](body func() (S, error)) Of[S] {
	return Catching(body)
}
