// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of throwing operations over one declared error type.
//
// - From/Start: create a Chain from a value or an (value, error) pair
// - Then/Map: compose throwing or pure steps, short-circuiting on failure
// - Ensure: trigger side effects without changing the outcome
// - Recover/OrElse: leave the failure path
// - Result/Unwrap: collapse the chain to its outcome
//
// Methods cannot introduce a new declared error type; use the free
// functions in package fn (OnErrorMap, OnErrorHandle, ...) to convert
// between error types.
package chain
