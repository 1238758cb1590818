package sexpr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	SyntaxError ErrorKind = iota
	TypeError
	ArityError
	BindingError
	InternalError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case TypeError:
		return "type error"
	case ArityError:
		return "arity error"
	case BindingError:
		return "binding error"
	case InternalError:
		return "internal error"
	default:
		return "error"
	}
}

// Error is returned for every violated expectation during evaluation.
// Evaluation stops at the first one; no partial result is produced.
type Error struct {
	Kind ErrorKind
	Pos  int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d: %s", e.Kind, e.Pos, e.Msg)
}

func newError(kind ErrorKind, pos int, format string, args ...any) error {
	return errors.WithStack(&Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// IsKind reports whether err carries an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// withPos fills in the position of an *Error raised without access to the
// cursor.
func withPos(err error, pos int) error {
	var e *Error
	if errors.As(err, &e) && e.Pos < 0 {
		e.Pos = pos
	}
	return err
}
