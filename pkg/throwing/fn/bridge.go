package fn

import (
	"github.com/robtimus/throwing-functions-sub007/pkg/throwing"
)

// Of returns op unchanged. It exists so a func literal at a call site
// gets its declared error type pinned by inference.
func Of[T, R any, E error](op Func[T, R, E]) Func[T, R, E] {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	return op
}

// Unchecked converts op into a success-only operation: a declared
// failure e panics with a traced carrier wrapping e. The wrapping
// is fixed; use OnErrorPanic to panic with something else.
func Unchecked[T, R any, E error](op Func[T, R, E]) func(T) R {
	if op == nil {
		panic("throwing/fn: nil op")
	}
	return func(t T) R {
		r, e := op(t)
		if throwing.IsNil(e) {
			return r
		}
		panic(throwing.Smuggle(e))
	}
}

// Checked gives a success-only delegate the declared error type E
// without adding behavior: the returned operation never fails with E,
// and a panicking delegate (smuggled carrier included) panics through
// unmodified. Use CheckedAs to unwrap carriers.
func Checked[T, R any, E error](delegate func(T) R) Func[T, R, E] {
	if delegate == nil {
		panic("throwing/fn: nil delegate")
	}
	return func(t T) (R, E) {
		var zero E
		return delegate(t), zero
	}
}

// CheckedAs gives a success-only delegate the declared error type E,
// recovering a panicking carrier whose cause is an E: that cause
// becomes the declared failure. A carrier with a mismatched cause, and
// any other panic, propagates unmodified.
func CheckedAs[T, R any, E error](delegate func(T) R) Func[T, R, E] {
	if delegate == nil {
		panic("throwing/fn: nil delegate")
	}
	return func(t T) (r R, e E) {
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
		r = delegate(t)
		return r, e
	}
}

// Invoke applies delegate to arg once, unwrapping like CheckedAs.
// It avoids keeping a wrapper around for single-use call sites.
func Invoke[T, R any, E error](delegate func(T) R, arg T) (R, E) {
	return CheckedAs[T, R, E](delegate)(arg)
}
