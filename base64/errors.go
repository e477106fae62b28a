package base64

import (
	"errors"
	"strconv"
)

// ErrorDomain identifies errors produced by this package.
const ErrorDomain = "stbase64"

// ErrorKind classifies a decoding failure.
//
// The numeric values are stable and may be used as error codes.
type ErrorKind int

const (
	// Unknown is a failure that is not attributable to the shape
	// of the input. The decoder never produces it for any input.
	Unknown ErrorKind = 0
	// InvalidInput means the input is not well-formed Base64.
	InvalidInput ErrorKind = 1
)

func (k ErrorKind) String() string {
	switch k {
	case Unknown:
		return "unknown error"
	case InvalidInput:
		return "invalid input"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is returned when Base64 decoding fails.
//
// Callers should branch on Kind, or use errors.Is with
// ErrInvalidInput or ErrUnknown, rather than on the message.
type Error struct {
	Kind ErrorKind
}

var (
	// ErrUnknown matches errors of kind Unknown.
	ErrUnknown error = &Error{Kind: Unknown}
	// ErrInvalidInput matches errors of kind InvalidInput.
	ErrInvalidInput error = &Error{Kind: InvalidInput}
)

func (e *Error) Error() string {
	return ErrorDomain + ": " + e.Kind.String()
}

// Domain returns ErrorDomain.
func (e *Error) Domain() string {
	return ErrorDomain
}

// Code returns the integer code of the error's kind.
func (e *Error) Code() int {
	return int(e.Kind)
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or
// Unknown if there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
