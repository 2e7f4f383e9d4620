package rop

//go:generate go run ./internal/zipgen -out zip_gen.go -max 8

// ZipAll combines results that share a success type. Results are inspected
// left to right and the first failure is returned as is; nothing after it
// is looked at. With no inputs the result is a success holding an empty
// slice.
func ZipAll[S, F any](rs ...Result[S, F]) Result[[]S, F] {
	values := make([]S, 0, len(rs))
	for _, r := range rs {
		if !r.isSuccess {
			return Fail[[]S](r.failure)
		}
		values = append(values, r.result)
	}
	return Success[[]S, F](values)
}
