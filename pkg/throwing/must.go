package throwing

// Check smuggles err across the current call boundary: a non-nil err
// panics with an untraced carrier, a nil err is a no-op. Pair with a
// CheckedAs bridge (or Smuggled in a recover) at the boundary willing
// to re-declare the failure.
func Check(err error) {
	if !IsNil(err) {
		panic(SmuggleUntraced(err))
	}
}

// Must returns v, smuggling err like Check does.
func Must[T any](v T, err error) T {
	Check(err)
	return v
}
