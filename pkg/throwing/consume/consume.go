package consume

import (
	"github.com/robtimus/throwing-functions-sub007/pkg/throwing"
)

// Consumer is a throwing operation with no meaningful result.
type Consumer[T any, E error] func(T) E

// Of returns op unchanged, pinning the declared error type.
func Of[T any, E error](op Consumer[T, E]) Consumer[T, E] {
	if op == nil {
		panic("throwing/consume: nil op")
	}
	return op
}

// Unchecked converts op into a success-only consumer; a declared
// failure panics with a traced carrier wrapping it.
func Unchecked[T any, E error](op Consumer[T, E]) func(T) {
	if op == nil {
		panic("throwing/consume: nil op")
	}
	return func(t T) {
		if e := op(t); !throwing.IsNil(e) {
			panic(throwing.Smuggle(e))
		}
	}
}

// Checked gives a success-only delegate the declared error type E
// without unwrapping carriers.
func Checked[T any, E error](delegate func(T)) Consumer[T, E] {
	if delegate == nil {
		panic("throwing/consume: nil delegate")
	}
	return func(t T) E {
		delegate(t)
		var zero E
		return zero
	}
}

// CheckedAs gives a success-only delegate the declared error type E,
// unwrapping a panicking carrier whose cause is an E. Mismatched
// carriers and other panics propagate unmodified.
func CheckedAs[T any, E error](delegate func(T)) Consumer[T, E] {
	if delegate == nil {
		panic("throwing/consume: nil delegate")
	}
	return func(t T) (e E) {
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
		delegate(t)
		return e
	}
}

// Invoke applies delegate to arg once, unwrapping like CheckedAs.
func Invoke[T any, E error](delegate func(T), arg T) E {
	return CheckedAs[T, E](delegate)(arg)
}

// OnErrorMap converts the declared error type via mapper.
func OnErrorMap[T any, E, F error](op Consumer[T, E], mapper func(E) F) Consumer[T, F] {
	if op == nil {
		panic("throwing/consume: nil op")
	}
	if mapper == nil {
		panic("throwing/consume: nil mapper")
	}
	return func(t T) F {
		if e := op(t); !throwing.IsNil(e) {
			return mapper(e)
		}
		var zero F
		return zero
	}
}

// OnErrorPanic converts a declared failure into a panic carrying
// mapper(e).
func OnErrorPanic[T any, E error](op Consumer[T, E], mapper func(E) error) func(T) {
	if op == nil {
		panic("throwing/consume: nil op")
	}
	if mapper == nil {
		panic("throwing/consume: nil mapper")
	}
	return func(t T) {
		if e := op(t); !throwing.IsNil(e) {
			panic(mapper(e))
		}
	}
}

// OnErrorRecover recovers from a declared failure with a side-effect
// handler.
func OnErrorRecover[T any, E error](op Consumer[T, E], handler func(E)) func(T) {
	if op == nil {
		panic("throwing/consume: nil op")
	}
	if handler == nil {
		panic("throwing/consume: nil handler")
	}
	return func(t T) {
		if e := op(t); !throwing.IsNil(e) {
			handler(e)
		}
	}
}

// OnErrorDiscard swallows a declared failure: the produced consumer
// completes normally either way. Undeclared failures still propagate.
func OnErrorDiscard[T any, E error](op Consumer[T, E]) func(T) {
	if op == nil {
		panic("throwing/consume: nil op")
	}
	return func(t T) {
		_ = op(t)
	}
}

// AndThen runs op, then next, on the same input. If op fails, next
// never runs and op's failure is the outcome.
func AndThen[T any, E error](op, next Consumer[T, E]) Consumer[T, E] {
	if op == nil {
		panic("throwing/consume: nil op")
	}
	if next == nil {
		panic("throwing/consume: nil next")
	}
	return func(t T) E {
		if e := op(t); !throwing.IsNil(e) {
			return e
		}
		return next(t)
	}
}
