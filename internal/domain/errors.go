package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidInput
	KindParse
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	case KindParse:
		return "parse"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// OpError carries the failing operation, a kind, and the path involved
// (empty when the input did not come from a file).
type OpError struct {
	Op   string
	Kind Kind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// E builds an OpError.
func E(op string, kind Kind, path string, err error) *OpError {
	return &OpError{Op: op, Kind: kind, Path: path, Err: err}
}

// KindOf returns the kind attached to err, or KindUnknown.
func KindOf(err error) Kind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
