package bifn

import (
	"errors"
	"testing"

	"github.com/robtimus/throwing-functions-sub007/pkg/throwing"
	"github.com/robtimus/throwing-functions-sub007/pkg/throwing/fn"
	"github.com/robtimus/throwing-functions-sub007/pkg/throwing/supply"
)

type joinError struct{ msg string }

func (e *joinError) Error() string { return e.msg }

func recovered(t *testing.T, f func()) any {
	t.Helper()
	var p any
	func() {
		defer func() { p = recover() }()
		f()
		t.Fatalf("expected a panic")
	}()
	return p
}

func failingJoin(err *joinError) Func2[string, string, string, *joinError] {
	return func(string, string) (string, *joinError) { return "", err }
}

func TestOnErrorApply_FallbackGetsBothOriginalArguments(t *testing.T) {
	t.Parallel()
	var gotA, gotB string
	op := OnErrorApply(failingJoin(&joinError{msg: "boom"}),
		Func2[string, string, string, error](func(a, b string) (string, error) {
			gotA, gotB = a, b
			return a + b, nil
		}))

	r, e := op("foo", "bar")
	if r != "foobar" || e != nil {
		t.Fatalf("expected fallback result 'foobar', got: val=%v, err=%v", r, e)
	}
	if gotA != "foo" || gotB != "bar" {
		t.Fatalf("expected the fallback to see the original arguments, got %q, %q", gotA, gotB)
	}
}

func TestOnErrorGet_SupplierSeesNothing(t *testing.T) {
	t.Parallel()
	op := OnErrorGet(failingJoin(&joinError{msg: "boom"}),
		supply.Supplier[string, error](func() (string, error) { return "fallback", nil }))

	r, e := op("foo", "bar")
	if r != "fallback" || e != nil {
		t.Fatalf("expected the supplied value, got: val=%v, err=%v", r, e)
	}
}

func TestUnchecked_RoundTrip(t *testing.T) {
	t.Parallel()
	failure := &joinError{msg: "boom"}
	op := Unchecked(failingJoin(failure))

	p := recovered(t, func() { op("foo", "bar") })
	s, ok := throwing.Smuggled(p)
	if !ok || s.Cause() != failure {
		t.Fatalf("expected a carrier wrapping the declared failure, got %v", p)
	}
}

func TestCheckedAs_MismatchedCauseKeepsCarrier(t *testing.T) {
	t.Parallel()
	carrier := throwing.Smuggle(errors.New("other"))
	op := CheckedAs[string, string, string, *joinError](func(string, string) string { panic(carrier) })

	if p := recovered(t, func() { op("foo", "bar") }); p != carrier {
		t.Fatalf("expected the carrier itself, not unwrapped, got %v", p)
	}
}

func TestInvoke(t *testing.T) {
	t.Parallel()
	r, e := Invoke[string, string, string, *joinError](func(a, b string) string { return a + b }, "foo", "bar")
	if r != "foobar" || e != nil {
		t.Fatalf("expected success with 'foobar', got: val=%v, err=%v", r, e)
	}
}

func TestAndThen_FeedsResultIntoFunc(t *testing.T) {
	t.Parallel()
	concat := Func2[string, string, string, *joinError](func(a, b string) (string, *joinError) {
		return a + b, nil
	})
	op := AndThen(concat, fn.Func[string, int, *joinError](func(s string) (int, *joinError) {
		return len(s), nil
	}))

	r, e := op("foo", "bar")
	if r != 6 || e != nil {
		t.Fatalf("expected composed success 6, got: val=%v, err=%v", r, e)
	}
}

func TestOnErrorReturn(t *testing.T) {
	t.Parallel()
	op := OnErrorReturn(failingJoin(&joinError{msg: "boom"}), "literal")
	if got := op("foo", "bar"); got != "literal" {
		t.Fatalf("expected the literal, got %q", got)
	}
}

func TestOnErrorMap_UndeclaredFailurePropagates(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("unrelated")
	op := OnErrorMap(Func2[string, string, string, *joinError](func(string, string) (string, *joinError) {
		panic(sentinel)
	}), func(e *joinError) error { return e })

	if p := recovered(t, func() { op("foo", "bar") }); p != sentinel {
		t.Fatalf("expected the exact panic payload, got %v", p)
	}
}
