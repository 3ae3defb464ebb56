// Package consume instantiates the throwing-operation pattern for
// operations with no meaningful result. Consumer[T, E] mirrors
// fn.Func[T, R, E] with the result removed; the declared failure is
// the only return value. OnErrorDiscard, the result-free recovery
// strategy, lives here.
package consume
