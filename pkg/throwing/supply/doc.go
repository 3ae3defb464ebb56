// Package supply instantiates the throwing-operation pattern for the
// zero-argument shape. Supplier[R, E] mirrors fn.Func[T, R, E] with
// the argument removed; every combinator follows the same outcome
// classification as package fn.
package supply
