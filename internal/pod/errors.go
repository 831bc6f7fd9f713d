package pod

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated       = errors.New("pod: truncated input")
	ErrMalformed       = errors.New("pod: malformed input")
	ErrIO              = errors.New("pod: i/o failure")
	ErrTooDeep         = errors.New("pod: block nesting too deep")
	ErrPayloadTooLarge = errors.New("pod: payload too large")
)

// DecodeError locates a decode failure in the input stream.
type DecodeError struct {
	Offset int64 // offset of the tag header
	ID     uint32
	Depth  int
	Err    error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.ID == 0 {
		return fmt.Sprintf("%v at offset %d (depth %d)", e.Err, e.Offset, e.Depth)
	}
	return fmt.Sprintf("%v at offset %d (block %d, depth %d)", e.Err, e.Offset, e.ID, e.Depth)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
