package source

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches any *NotFoundError via errors.Is.
	ErrNotFound = errors.New("file not found")
	// ErrDecode matches any *DecodeError via errors.Is.
	ErrDecode = errors.New("decode error")
)

// NotFoundError reports that a path does not resolve to a readable regular file.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DecodeError reports content that is not valid text under Encoding.
// Offset is the byte offset of the first undecodable input; Byte is the
// offending byte value when the decoder could identify one, or -1.
type DecodeError struct {
	Path     string
	Encoding string
	Offset   int
	Byte     int
	Err      error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%s: cannot decode as %s at byte offset %d", e.Path, e.Encoding, e.Offset)
	if e.Byte >= 0 {
		msg += fmt.Sprintf(" (0x%02x)", e.Byte)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
