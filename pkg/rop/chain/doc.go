// Package chain strings synchronous steps over a rop.Result[S, F].
//
// A chain starts from a result (Start) or a plain value (FromValue). Then,
// ThenCatching, ThenTry and Map run only while the chain is successful;
// MapFailure rewrites the failure type; Join zips two chains into a
// rop.Tuple2; Finally folds the chain into a single value.
package chain
