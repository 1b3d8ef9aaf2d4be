// Package errs defines the error taxonomy shared across the toolkit.
// Every operation surfaces failure to its caller through an *Error value
// carrying one of the Kind constants below; there is no silent recovery
// except the pre-emphasis alpha fallback documented on the frame package.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// Domain indicates a parameter out of its valid range.
	Domain Kind = iota
	// DimensionMismatch indicates vectors or lists of incompatible length.
	DimensionMismatch
	// UnsupportedFormat indicates a recognized but unimplemented wire format.
	UnsupportedFormat
	// IO wraps a file open/read/write failure.
	IO
	// NotInitialized indicates a missing pointer, unattached extension, or
	// uninitialized cache.
	NotInitialized
	// Arity indicates the wrong number of arguments for a catalogue op.
	Arity
	// Mode indicates the wrong real/complex mode for a catalogue op.
	Mode
	// UnknownAlgorithm indicates an unrecognized or unimplemented LVQ algorithm.
	UnknownAlgorithm
	// Exhausted indicates an allocation or resource-acquisition failure.
	Exhausted
)

func (k Kind) String() string {
	switch k {
	case Domain:
		return "domain"
	case DimensionMismatch:
		return "dimension mismatch"
	case UnsupportedFormat:
		return "unsupported format"
	case IO:
		return "io"
	case NotInitialized:
		return "not initialized"
	case Arity:
		return "arity"
	case Mode:
		return "mode"
	case UnknownAlgorithm:
		return "unknown algorithm"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by this module's operations.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the same Kind, so callers can
// errors.Is(err, errs.Domain) ... which requires a sentinel; instead
// callers use errs.KindOf(err) == errs.Domain, or wrap a Kind value with
// errors.Is against a *Error carrying that Kind and no other fields set.
func (e *Error) Is(target error) bool {
	var te *Error
	if errors.As(target, &te) {
		return e.Kind == te.Kind
	}
	return false
}

// New builds an *Error with no wrapped cause.
func New(kind Kind, op, msg string) error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Wrap builds an *Error wrapping a lower-level cause.
func Wrap(kind Kind, op, msg string, cause error) error {
	return &Error{Kind: kind, Op: op, Msg: msg, Err: cause}
}

// KindOf extracts the Kind from err, if err is (or wraps) an *Error.
// It returns (0, false) otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
