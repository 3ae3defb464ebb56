// Package fn defines the canonical one-argument throwing operation
// Func[T, R, E] and its full conversion suite. Every combinator is a
// total function of the three-way outcome classification: a success
// passes through untouched, a declared failure (non-nil E) triggers
// exactly one recovery step, and an undeclared failure (panic) crosses
// every combinator unchanged.
//
// Conversion between declared error types:
// - OnErrorMap: map the declared error to a new declared type
// - OnErrorHandle: recover from the declared error, possibly failing with a new declared type
// - OnErrorApply: recompute from the original argument via a fallback operation
// - OnErrorGet: recompute from nothing via a supplier
//
// Conversion to success-only shape (func(T) R):
// - OnErrorPanic/Unchecked: declared failure becomes a panic
// - OnErrorRecover/OnErrorApplyPlain/OnErrorGetPlain/OnErrorReturn: declared failure becomes a value
//
// Bridging between shapes:
// - Of: pin a lambda's declared error type without changing behavior
// - Checked: give a success-only func a declared error type (never unwraps)
// - CheckedAs: same, unwrapping smuggled carriers whose cause matches E
// - Invoke: one-shot CheckedAs application
//
// Sequential composition: AndThen, Compose.
//
// All combinators panic immediately on nil function arguments, before
// the underlying operation runs. No combinator recovers a panic raised
// by a delegate, a handler, a fallback or a mapper; recovery is
// attempted exactly once per invocation and its failures are final.
package fn
