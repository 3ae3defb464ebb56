package throwing

import (
	"reflect"
)

// IsNil reports whether err holds no failure. It treats a typed nil
// pointer the same as a nil interface, so declared-failure
// classification does not trip over the usual interface-nil pitfall.
func IsNil(err any) bool {
	if err == nil || (reflect.ValueOf(err).Kind() == reflect.Ptr && reflect.ValueOf(err).IsNil()) {
		return true
	}
	return false
}

// Smuggled recognizes a carrier in a recovered panic payload.
func Smuggled(p any) (*SmuggledError, bool) {
	s, ok := p.(*SmuggledError)
	return s, ok
}

// Errors flattens a joined error into its parts. A nil error yields an
// empty slice; an unjoined error yields itself.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
