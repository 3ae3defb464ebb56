package bifn

import (
	"github.com/robtimus/throwing-functions-sub007/pkg/throwing"
	"github.com/robtimus/throwing-functions-sub007/pkg/throwing/fn"
	"github.com/robtimus/throwing-functions-sub007/pkg/throwing/supply"
)

// Func2 is a two-argument throwing operation.
type Func2[T, U, R any, E error] func(T, U) (R, E)

// Of returns op unchanged, pinning the declared error type.
func Of[T, U, R any, E error](op Func2[T, U, R, E]) Func2[T, U, R, E] {
	if op == nil {
		panic("throwing/bifn: nil op")
	}
	return op
}

// Unchecked converts op into a success-only operation; a declared
// failure panics with a traced carrier wrapping it.
func Unchecked[T, U, R any, E error](op Func2[T, U, R, E]) func(T, U) R {
	if op == nil {
		panic("throwing/bifn: nil op")
	}
	return func(t T, u U) R {
		r, e := op(t, u)
		if throwing.IsNil(e) {
			return r
		}
		panic(throwing.Smuggle(e))
	}
}

// Checked gives a success-only delegate the declared error type E
// without unwrapping carriers.
func Checked[T, U, R any, E error](delegate func(T, U) R) Func2[T, U, R, E] {
	if delegate == nil {
		panic("throwing/bifn: nil delegate")
	}
	return func(t T, u U) (R, E) {
		var zero E
		return delegate(t, u), zero
	}
}

// CheckedAs gives a success-only delegate the declared error type E,
// unwrapping a panicking carrier whose cause is an E. Mismatched
// carriers and other panics propagate unmodified.
func CheckedAs[T, U, R any, E error](delegate func(T, U) R) Func2[T, U, R, E] {
	if delegate == nil {
		panic("throwing/bifn: nil delegate")
	}
	return func(t T, u U) (r R, e E) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if s, ok := throwing.Smuggled(p); ok {
				if cause, ok := s.Cause().(E); ok {
					e = cause
					return
				}
			}
			panic(p)
		}()
		r = delegate(t, u)
		return r, e
	}
}

// Invoke applies delegate once, unwrapping like CheckedAs.
func Invoke[T, U, R any, E error](delegate func(T, U) R, arg1 T, arg2 U) (R, E) {
	return CheckedAs[T, U, R, E](delegate)(arg1, arg2)
}

// OnErrorMap converts the declared error type via mapper.
func OnErrorMap[T, U, R any, E, F error](op Func2[T, U, R, E], mapper func(E) F) Func2[T, U, R, F] {
	if op == nil {
		panic("throwing/bifn: nil op")
	}
	if mapper == nil {
		panic("throwing/bifn: nil mapper")
	}
	return func(t T, u U) (R, F) {
		r, e := op(t, u)
		if throwing.IsNil(e) {
			var zero F
			return r, zero
		}
		var zero R
		return zero, mapper(e)
	}
}

// OnErrorPanic converts a declared failure into a panic carrying
// mapper(e).
func OnErrorPanic[T, U, R any, E error](op Func2[T, U, R, E], mapper func(E) error) func(T, U) R {
	if op == nil {
		panic("throwing/bifn: nil op")
	}
	if mapper == nil {
		panic("throwing/bifn: nil mapper")
	}
	return func(t T, u U) R {
		r, e := op(t, u)
		if throwing.IsNil(e) {
			return r
		}
		panic(mapper(e))
	}
}

// OnErrorHandle recovers from a declared failure by handing e to
// handler; the handler's outcome is final.
func OnErrorHandle[T, U, R any, E, F error](op Func2[T, U, R, E], handler fn.Func[E, R, F]) Func2[T, U, R, F] {
	if op == nil {
		panic("throwing/bifn: nil op")
	}
	if handler == nil {
		panic("throwing/bifn: nil handler")
	}
	return func(t T, u U) (R, F) {
		r, e := op(t, u)
		if throwing.IsNil(e) {
			var zero F
			return r, zero
		}
		return handler(e)
	}
}

// OnErrorRecover recovers from a declared failure with a handler that
// cannot re-declare one.
func OnErrorRecover[T, U, R any, E error](op Func2[T, U, R, E], handler func(E) R) func(T, U) R {
	if op == nil {
		panic("throwing/bifn: nil op")
	}
	if handler == nil {
		panic("throwing/bifn: nil handler")
	}
	return func(t T, u U) R {
		r, e := op(t, u)
		if throwing.IsNil(e) {
			return r
		}
		return handler(e)
	}
}

// OnErrorApply recovers from a declared failure by re-running the
// computation through fallback with both original arguments.
func OnErrorApply[T, U, R any, E, F error](op Func2[T, U, R, E], fallback Func2[T, U, R, F]) Func2[T, U, R, F] {
	if op == nil {
		panic("throwing/bifn: nil op")
	}
	if fallback == nil {
		panic("throwing/bifn: nil fallback")
	}
	return func(t T, u U) (R, F) {
		r, e := op(t, u)
		if throwing.IsNil(e) {
			var zero F
			return r, zero
		}
		return fallback(t, u)
	}
}

// OnErrorApplyPlain is OnErrorApply with a success-only fallback.
func OnErrorApplyPlain[T, U, R any, E error](op Func2[T, U, R, E], fallback func(T, U) R) func(T, U) R {
	if op == nil {
		panic("throwing/bifn: nil op")
	}
	if fallback == nil {
		panic("throwing/bifn: nil fallback")
	}
	return func(t T, u U) R {
		r, e := op(t, u)
		if throwing.IsNil(e) {
			return r
		}
		return fallback(t, u)
	}
}

// OnErrorGet recovers from a declared failure via a supplier that sees
// neither the failure nor the original arguments.
func OnErrorGet[T, U, R any, E, F error](op Func2[T, U, R, E], supplier supply.Supplier[R, F]) Func2[T, U, R, F] {
	if op == nil {
		panic("throwing/bifn: nil op")
	}
	if supplier == nil {
		panic("throwing/bifn: nil supplier")
	}
	return func(t T, u U) (R, F) {
		r, e := op(t, u)
		if throwing.IsNil(e) {
			var zero F
			return r, zero
		}
		return supplier()
	}
}

// OnErrorGetPlain is OnErrorGet with a success-only supplier.
func OnErrorGetPlain[T, U, R any, E error](op Func2[T, U, R, E], supplier func() R) func(T, U) R {
	if op == nil {
		panic("throwing/bifn: nil op")
	}
	if supplier == nil {
		panic("throwing/bifn: nil supplier")
	}
	return func(t T, u U) R {
		r, e := op(t, u)
		if throwing.IsNil(e) {
			return r
		}
		return supplier()
	}
}

// OnErrorReturn substitutes literal for any declared failure.
func OnErrorReturn[T, U, R any, E error](op Func2[T, U, R, E], literal R) func(T, U) R {
	if op == nil {
		panic("throwing/bifn: nil op")
	}
	return func(t T, u U) R {
		r, e := op(t, u)
		if throwing.IsNil(e) {
			return r
		}
		return literal
	}
}

// AndThen runs op, then feeds its result to next. If op fails, next
// never runs.
func AndThen[T, U, R, S any, E error](op Func2[T, U, R, E], next fn.Func[R, S, E]) Func2[T, U, S, E] {
	if op == nil {
		panic("throwing/bifn: nil op")
	}
	if next == nil {
		panic("throwing/bifn: nil next")
	}
	return func(t T, u U) (S, E) {
		r, e := op(t, u)
		if !throwing.IsNil(e) {
			var zero S
			return zero, e
		}
		return next(r)
	}
}
