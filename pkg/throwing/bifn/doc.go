// Package bifn instantiates the throwing-operation pattern for the
// two-argument shape. Func2[T, U, R, E] mirrors fn.Func[T, R, E] with
// a second argument; OnErrorApply hands BOTH original arguments to the
// fallback operation.
package bifn
