package throwing

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// SmuggledError is the unchecked failure carrier. It wraps exactly one
// cause and propagates through any boundary that does not specifically
// look for it via Smuggled.
type SmuggledError struct {
	msg   string
	cause error
	trace error
	id    uuid.UUID
	at    time.Time
}

func newSmuggled(msg string, cause error, traced bool) *SmuggledError {
	if IsNil(cause) {
		panic("throwing: nil cause")
	}
	if msg == "" {
		msg = cause.Error()
	}
	s := &SmuggledError{
		msg:   msg,
		cause: cause,
		id:    uuid.New(),
		at:    time.Now().UTC(),
	}
	if traced {
		s.trace = errors.WithStack(cause)
	}
	return s
}

// Smuggle wraps cause in a carrier, capturing a stack trace.
func Smuggle(cause error) *SmuggledError {
	return newSmuggled("", cause, true)
}

// SmuggleMessage wraps cause with an explicit message overriding the
// cause-derived one.
func SmuggleMessage(msg string, cause error) *SmuggledError {
	return newSmuggled(msg, cause, true)
}

// SmuggleUntraced wraps cause without capturing a stack trace. Use it
// when the carrier is an expected, high-frequency control-flow signal.
func SmuggleUntraced(cause error) *SmuggledError {
	return newSmuggled("", cause, false)
}

// SmuggleUntracedMessage is SmuggleUntraced with an explicit message.
func SmuggleUntracedMessage(msg string, cause error) *SmuggledError {
	return newSmuggled(msg, cause, false)
}

func (s *SmuggledError) Error() string {
	return s.msg
}

// Cause returns the wrapped failure.
func (s *SmuggledError) Cause() error {
	return s.cause
}

func (s *SmuggledError) Unwrap() error {
	return s.cause
}

// ID identifies this carrier instance.
func (s *SmuggledError) ID() uuid.UUID {
	return s.id
}

// ThrownAt returns the carrier creation time (UTC).
func (s *SmuggledError) ThrownAt() time.Time {
	return s.at
}

// StackTrace returns the trace captured at construction, or nil for
// untraced carriers.
func (s *SmuggledError) StackTrace() errors.StackTrace {
	if t, ok := s.trace.(stackTracer); ok {
		return t.StackTrace()
	}
	return nil
}

func (s *SmuggledError) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v':
		if st.Flag('+') {
			io.WriteString(st, s.msg)
			if t := s.StackTrace(); t != nil {
				t.Format(st, verb)
			}
			return
		}
		fallthrough
	case 's':
		io.WriteString(st, s.msg)
	case 'q':
		fmt.Fprintf(st, "%q", s.msg)
	}
}
