package chain

import (
	"github.com/robtimus/throwing-functions-sub007/pkg/throwing"
	"github.com/robtimus/throwing-functions-sub007/pkg/throwing/fn"
)

// Chain holds the outcome of a synchronous pipeline step.
type Chain[T any, E error] struct {
	val    T
	err    E
	failed bool
}

// From starts a chain from a successful value.
func From[T any, E error](v T) Chain[T, E] {
	return Chain[T, E]{val: v}
}

// Start starts a chain from an existing outcome.
func Start[T any, E error](v T, e E) Chain[T, E] {
	if throwing.IsNil(e) {
		return Chain[T, E]{val: v}
	}
	return Chain[T, E]{err: e, failed: true}
}

// Then composes a throwing step. Once failed, later steps never run.
func (c Chain[T, E]) Then(op fn.Func[T, T, E]) Chain[T, E] {
	if op == nil {
		panic("throwing/chain: nil op")
	}
	if c.failed {
		return c
	}
	return Start(op(c.val))
}

// Map composes a pure transformation.
func (c Chain[T, E]) Map(f func(T) T) Chain[T, E] {
	if f == nil {
		panic("throwing/chain: nil f")
	}
	if c.failed {
		return c
	}
	return Chain[T, E]{val: f(c.val)}
}

// Ensure triggers side effects for the current outcome without
// changing it. Nil handlers are skipped.
func (c Chain[T, E]) Ensure(onSuccess func(T), onError func(E)) Chain[T, E] {
	if c.failed {
		if onError != nil {
			onError(c.err)
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.val)
	}
	return c
}

// Recover turns a failed chain back into a successful one via handler.
func (c Chain[T, E]) Recover(handler func(E) T) Chain[T, E] {
	if handler == nil {
		panic("throwing/chain: nil handler")
	}
	if !c.failed {
		return c
	}
	return Chain[T, E]{val: handler(c.err)}
}

// OrElse collapses the chain, substituting literal on failure.
func (c Chain[T, E]) OrElse(literal T) T {
	if c.failed {
		return literal
	}
	return c.val
}

// Failed reports whether the chain holds a declared failure.
func (c Chain[T, E]) Failed() bool {
	return c.failed
}

// Result collapses the chain to its outcome.
func (c Chain[T, E]) Result() (T, E) {
	return c.val, c.err
}

// Unwrap returns the value, panicking with a traced carrier on
// failure.
func (c Chain[T, E]) Unwrap() T {
	if c.failed {
		panic(throwing.Smuggle(c.err))
	}
	return c.val
}
