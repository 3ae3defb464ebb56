package fn

import (
	"errors"
	"testing"

	"github.com/robtimus/throwing-functions-sub007/pkg/throwing"
)

type parseError struct {
	msg    string
	offset int
}

func (e *parseError) Error() string { return e.msg }

func TestOf_NilPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r != "throwing/fn: nil op" {
			t.Fatalf("expected eager nil-op panic, got %v", r)
		}
	}()
	Of[string, int, *readError](nil)
}

func TestOf_BehavioralIdentity(t *testing.T) {
	t.Parallel()
	failure := &readError{msg: "boom"}

	op := Of(succeeding(5))
	r, e := op("in")
	if r != 5 || e != nil {
		t.Fatalf("expected pass-through success, got: val=%v, err=%v", r, e)
	}

	op = Of(failing(failure))
	_, e = op("in")
	if e != failure {
		t.Fatalf("expected pass-through failure by identity, got %v", e)
	}
}

func TestUnchecked_SuccessPassesThrough(t *testing.T) {
	t.Parallel()
	op := Unchecked(succeeding(9))
	if got := op("in"); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
}

func TestUnchecked_DeclaredFailureSmuggled(t *testing.T) {
	t.Parallel()
	failure := &readError{msg: "foobar"}
	op := Unchecked(failing(failure))

	p := recovered(t, func() { op("in") })
	s, ok := throwing.Smuggled(p)
	if !ok {
		t.Fatalf("expected a smuggled carrier, got %v", p)
	}
	if s.Cause() != failure {
		t.Fatalf("expected the cause to be the declared failure by identity, got %v", s.Cause())
	}
	if s.Error() != "foobar" {
		t.Fatalf("expected the cause-derived message 'foobar', got %q", s.Error())
	}
}

func TestUnchecked_UndeclaredFailurePropagates(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("unrelated")
	op := Unchecked(panicking(sentinel))

	if p := recovered(t, func() { op("in") }); p != sentinel {
		t.Fatalf("expected the exact panic payload, got %v", p)
	}
}

func TestChecked_NeverFails(t *testing.T) {
	t.Parallel()
	op := Checked[string, int, *readError](func(s string) int { return len(s) })

	r, e := op("abcd")
	if r != 4 || e != nil {
		t.Fatalf("expected success with 4, got: val=%v, err=%v", r, e)
	}
}

func TestChecked_CarrierPropagatesUnmodified(t *testing.T) {
	t.Parallel()
	carrier := throwing.Smuggle(&readError{msg: "boom"})
	op := Checked[string, int, *readError](func(string) int { panic(carrier) })

	if p := recovered(t, func() { op("in") }); p != carrier {
		t.Fatalf("expected the carrier itself, unwrapped by nothing, got %v", p)
	}
}

func TestCheckedAs_UnwrapsMatchingCause(t *testing.T) {
	t.Parallel()
	cause := &readError{msg: "foobar"}
	op := CheckedAs[string, int, *readError](func(string) int {
		panic(throwing.Smuggle(cause))
	})

	_, e := op("in")
	if e != cause {
		t.Fatalf("expected the cause returned as the declared failure by identity, got %v", e)
	}
}

func TestCheckedAs_MismatchedCauseKeepsCarrier(t *testing.T) {
	t.Parallel()
	cause := &parseError{msg: "foobar", offset: 0}
	carrier := throwing.Smuggle(cause)
	op := CheckedAs[string, int, *readError](func(string) int { panic(carrier) })

	p := recovered(t, func() { op("in") })
	if p != carrier {
		t.Fatalf("expected the carrier itself, not unwrapped, got %v", p)
	}
	s := p.(*throwing.SmuggledError)
	pe, ok := s.Cause().(*parseError)
	if !ok || pe.msg != "foobar" || pe.offset != 0 {
		t.Fatalf("expected the mismatched cause to survive intact, got %v", s.Cause())
	}
}

func TestCheckedAs_InterfaceErrorTypeUnwrapsSubtypes(t *testing.T) {
	t.Parallel()
	cause := &parseError{msg: "foobar", offset: 3}
	op := CheckedAs[string, int, error](func(string) int {
		panic(throwing.Smuggle(cause))
	})

	_, e := op("in")
	if e != error(cause) {
		t.Fatalf("expected any error cause to satisfy the interface token, got %v", e)
	}
}

func TestCheckedAs_UnrelatedPanicPropagates(t *testing.T) {
	t.Parallel()
	op := CheckedAs[string, int, *readError](func(string) int { panic("not an error") })

	if p := recovered(t, func() { op("in") }); p != "not an error" {
		t.Fatalf("expected the unrelated panic unchanged, got %v", p)
	}
}

func TestCheckedAs_SuccessPassesThrough(t *testing.T) {
	t.Parallel()
	op := CheckedAs[string, int, *readError](func(s string) int { return len(s) })

	r, e := op("ab")
	if r != 2 || e != nil {
		t.Fatalf("expected success with 2, got: val=%v, err=%v", r, e)
	}
}

func TestInvoke_OneShotUnwrap(t *testing.T) {
	t.Parallel()
	cause := &readError{msg: "boom"}

	_, e := Invoke[string, int, *readError](func(string) int {
		panic(throwing.Smuggle(cause))
	}, "arg")
	if e != cause {
		t.Fatalf("expected the unwrapped cause, got %v", e)
	}

	r, e := Invoke[string, int, *readError](func(s string) int { return len(s) }, "arg")
	if r != 3 || e != nil {
		t.Fatalf("expected success with 3, got: val=%v, err=%v", r, e)
	}
}

func TestInvoke_NilDelegatePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if r := recover(); r != "throwing/fn: nil delegate" {
			t.Fatalf("expected eager nil-delegate panic, got %v", r)
		}
	}()
	Invoke[string, int, *readError](nil, "arg")
}
