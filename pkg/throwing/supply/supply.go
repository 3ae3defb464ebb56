package supply

import (
	"github.com/robtimus/throwing-functions-sub007/pkg/throwing"
)

// Supplier is a zero-argument throwing operation.
type Supplier[R any, E error] func() (R, E)

// Of returns op unchanged, pinning the declared error type.
func Of[R any, E error](op Supplier[R, E]) Supplier[R, E] {
	if op == nil {
		panic("throwing/supply: nil op")
	}
	return op
}

// Unchecked converts op into a success-only supplier; a declared
// failure panics with a traced carrier wrapping it.
func Unchecked[R any, E error](op Supplier[R, E]) func() R {
	if op == nil {
		panic("throwing/supply: nil op")
	}
	return func() R {
		r, e := op()
		if throwing.IsNil(e) {
			return r
		}
		panic(throwing.Smuggle(e))
	}
}

// Checked gives a success-only delegate the declared error type E
// without unwrapping carriers.
func Checked[R any, E error](delegate func() R) Supplier[R, E] {
	if delegate == nil {
		panic("throwing/supply: nil delegate")
	}
	return func() (R, E) {
		var zero E
		return delegate(), zero
	}
}

// CheckedAs gives a success-only delegate the declared error type E,
// unwrapping a panicking carrier whose cause is an E. Mismatched
// carriers and other panics propagate unmodified.
func CheckedAs[R any, E error](delegate func() R) Supplier[R, E] {
	if delegate == nil {
		panic("throwing/supply: nil delegate")
	}
	return func() (r R, e E) {
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
		r = delegate()
		return r, e
	}
}

// Invoke calls delegate once, unwrapping like CheckedAs.
func Invoke[R any, E error](delegate func() R) (R, E) {
	return CheckedAs[R, E](delegate)()
}

// OnErrorMap converts the declared error type via mapper.
func OnErrorMap[R any, E, F error](op Supplier[R, E], mapper func(E) F) Supplier[R, F] {
	if op == nil {
		panic("throwing/supply: nil op")
	}
	if mapper == nil {
		panic("throwing/supply: nil mapper")
	}
	return func() (R, F) {
		r, e := op()
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
func OnErrorPanic[R any, E error](op Supplier[R, E], mapper func(E) error) func() R {
	if op == nil {
		panic("throwing/supply: nil op")
	}
	if mapper == nil {
		panic("throwing/supply: nil mapper")
	}
	return func() R {
		r, e := op()
		if throwing.IsNil(e) {
			return r
		}
		panic(mapper(e))
	}
}

// OnErrorHandle recovers from a declared failure by handing e to
// handler; the handler's outcome is final.
func OnErrorHandle[R any, E, F error](op Supplier[R, E], handler func(E) (R, F)) Supplier[R, F] {
	if op == nil {
		panic("throwing/supply: nil op")
	}
	if handler == nil {
		panic("throwing/supply: nil handler")
	}
	return func() (R, F) {
		r, e := op()
		if throwing.IsNil(e) {
			var zero F
			return r, zero
		}
		return handler(e)
	}
}

// OnErrorRecover recovers from a declared failure with a handler that
// cannot re-declare one.
func OnErrorRecover[R any, E error](op Supplier[R, E], handler func(E) R) func() R {
	if op == nil {
		panic("throwing/supply: nil op")
	}
	if handler == nil {
		panic("throwing/supply: nil handler")
	}
	return func() R {
		r, e := op()
		if throwing.IsNil(e) {
			return r
		}
		return handler(e)
	}
}

// OnErrorGet recovers from a declared failure via fallback, which sees
// neither the failure nor anything else. For the zero-argument shape
// the apply and get strategies coincide.
func OnErrorGet[R any, E, F error](op Supplier[R, E], fallback Supplier[R, F]) Supplier[R, F] {
	if op == nil {
		panic("throwing/supply: nil op")
	}
	if fallback == nil {
		panic("throwing/supply: nil fallback")
	}
	return func() (R, F) {
		r, e := op()
		if throwing.IsNil(e) {
			var zero F
			return r, zero
		}
		return fallback()
	}
}

// OnErrorGetPlain is OnErrorGet with a success-only fallback.
func OnErrorGetPlain[R any, E error](op Supplier[R, E], fallback func() R) func() R {
	if op == nil {
		panic("throwing/supply: nil op")
	}
	if fallback == nil {
		panic("throwing/supply: nil fallback")
	}
	return func() R {
		r, e := op()
		if throwing.IsNil(e) {
			return r
		}
		return fallback()
	}
}

// OnErrorReturn substitutes literal for any declared failure.
func OnErrorReturn[R any, E error](op Supplier[R, E], literal R) func() R {
	if op == nil {
		panic("throwing/supply: nil op")
	}
	return func() R {
		r, e := op()
		if throwing.IsNil(e) {
			return r
		}
		return literal
	}
}
