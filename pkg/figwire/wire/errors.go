package wire

import (
	"errors"
	"fmt"
)

// ErrTruncated indicates the stream ended inside a record payload.
var ErrTruncated = errors.New("truncated stream")

// ErrMissingHeader indicates the stream ended before the mandatory save-path
// and dimensions records were read.
var ErrMissingHeader = errors.New("missing mandatory header")

// ErrUnexpectedTag indicates a tag other than the one the grammar requires
// at a mandatory header position.
var ErrUnexpectedTag = errors.New("unexpected tag")

// ErrUnknownTag indicates a byte that matches no known tag in the plotting
// phase.
var ErrUnknownTag = errors.New("unknown tag")

// ErrUnknownOptionType indicates an option record whose type byte is not one
// of 'S', 'I' or 'D'.
var ErrUnknownOptionType = errors.New("unknown option type")

// DecodeError reports a wire format violation with its stream position.
// Decoding aborts on the first violation; no partial chart is returned.
type DecodeError struct {
	// Offset is the byte offset at which the violation was detected.
	Offset int64
	// Tag is the offending tag or type byte, zero when none applies.
	Tag byte
	// Err is the underlying format error.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Tag != 0 {
		return fmt.Sprintf("decode error at offset %d (tag %q): %v", e.Offset, e.Tag, e.Err)
	}
	return fmt.Sprintf("decode error at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
