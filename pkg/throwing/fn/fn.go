package fn

import (
	"github.com/robtimus/throwing-functions-sub007/pkg/throwing"
	"github.com/robtimus/throwing-functions-sub007/pkg/throwing/supply"
)

// Func is a throwing operation: it either returns a result or fails
// with the declared error type E. A panic inside a Func is an
// undeclared failure and is never intercepted by this package.
type Func[T, R any, E error] func(T) (R, E)

// func(T) R is the success-only callable shape Func converts to and
// from (spelled out inline: generic type aliases need Go 1.24+).

// OnErrorMap converts the declared error type: a declared failure e
// becomes mapper(e), successes pass through.
func OnErrorMap[T, R any, E, F error](op Func[T, R, E], mapper func(E) F) Func[T, R, F] {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	if mapper == nil {
		panic("throwing/fn: nil mapper")
	}
	return func(t T) (R, F) {
		r, e := op(t)
		if throwing.IsNil(e) {
			var zero F
			return r, zero
		}
		var zero R
		return zero, mapper(e)
	}
}

// OnErrorPanic converts a declared failure into a panic carrying
// mapper(e). The produced operation is success-only.
func OnErrorPanic[T, R any, E error](op Func[T, R, E], mapper func(E) error) func(T) R {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	if mapper == nil {
		panic("throwing/fn: nil mapper")
	}
	return func(t T) R {
		r, e := op(t)
		if throwing.IsNil(e) {
			return r
		}
		panic(mapper(e))
	}
}

// OnErrorHandle recovers from a declared failure by handing e to
// handler; the handler's result becomes the new result, and its own
// failure (declared F or panic) is final.
func OnErrorHandle[T, R any, E, F error](op Func[T, R, E], handler Func[E, R, F]) Func[T, R, F] {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	if handler == nil {
		panic("throwing/fn: nil handler")
	}
	return func(t T) (R, F) {
		r, e := op(t)
		if throwing.IsNil(e) {
			var zero F
			return r, zero
		}
		return handler(e)
	}
}

// OnErrorRecover recovers from a declared failure with a handler that
// cannot re-declare one.
func OnErrorRecover[T, R any, E error](op Func[T, R, E], handler func(E) R) func(T) R {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	if handler == nil {
		panic("throwing/fn: nil handler")
	}
	return func(t T) R {
		r, e := op(t)
		if throwing.IsNil(e) {
			return r
		}
		return handler(e)
	}
}

// OnErrorApply recovers from a declared failure by re-running the
// computation through fallback with the original argument. The failure
// value itself is discarded.
func OnErrorApply[T, R any, E, F error](op Func[T, R, E], fallback Func[T, R, F]) Func[T, R, F] {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	if fallback == nil {
		panic("throwing/fn: nil fallback")
	}
	return func(t T) (R, F) {
		r, e := op(t)
		if throwing.IsNil(e) {
			var zero F
			return r, zero
		}
		return fallback(t)
	}
}

// OnErrorApplyPlain is OnErrorApply with a success-only fallback.
func OnErrorApplyPlain[T, R any, E error](op Func[T, R, E], fallback func(T) R) func(T) R {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	if fallback == nil {
		panic("throwing/fn: nil fallback")
	}
	return func(t T) R {
		r, e := op(t)
		if throwing.IsNil(e) {
			return r
		}
		return fallback(t)
	}
}

// OnErrorGet recovers from a declared failure via a supplier that sees
// neither the failure nor the original argument.
func OnErrorGet[T, R any, E, F error](op Func[T, R, E], supplier supply.Supplier[R, F]) Func[T, R, F] {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	if supplier == nil {
		panic("throwing/fn: nil supplier")
	}
	return func(t T) (R, F) {
		r, e := op(t)
		if throwing.IsNil(e) {
			var zero F
			return r, zero
		}
		return supplier()
	}
}

// OnErrorGetPlain is OnErrorGet with a success-only supplier.
func OnErrorGetPlain[T, R any, E error](op Func[T, R, E], supplier func() R) func(T) R {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	if supplier == nil {
		panic("throwing/fn: nil supplier")
	}
	return func(t T) R {
		r, e := op(t)
		if throwing.IsNil(e) {
			return r
		}
		return supplier()
	}
}

// OnErrorReturn substitutes literal for any declared failure; nothing
// else is invoked on the failure path.
func OnErrorReturn[T, R any, E error](op Func[T, R, E], literal R) func(T) R {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	return func(t T) R {
		r, e := op(t)
		if throwing.IsNil(e) {
			return r
		}
		return literal
	}
}

// AndThen runs op, then feeds its result to next. If op fails
// (declared or undeclared), next never runs.
func AndThen[T, R, S any, E error](op Func[T, R, E], next Func[R, S, E]) Func[T, S, E] {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	if next == nil {
		panic("throwing/fn: nil next")
	}
	return func(t T) (S, E) {
		r, e := op(t)
		if !throwing.IsNil(e) {
			var zero S
			return zero, e
		}
		return next(r)
	}
}

// Compose runs before, then feeds its result to op. If before fails,
// op never runs.
func Compose[S, T, R any, E error](op Func[T, R, E], before Func[S, T, E]) Func[S, R, E] {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	if before == nil {
		panic("throwing/fn: nil before")
	}
	return AndThen(before, op)
}
