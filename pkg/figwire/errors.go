package figwire

import (
	"errors"

	"github.com/lightplot/figwire-go/pkg/figwire/wire"
)

// ErrFileNotFound indicates the input stream file does not exist.
var ErrFileNotFound = errors.New("file not found")

// Format error sentinels, re-exported from the wire package so callers can
// match with errors.Is without importing it.
var (
	ErrTruncated         = wire.ErrTruncated
	ErrMissingHeader     = wire.ErrMissingHeader
	ErrUnexpectedTag     = wire.ErrUnexpectedTag
	ErrUnknownTag        = wire.ErrUnknownTag
	ErrUnknownOptionType = wire.ErrUnknownOptionType
)

// DecodeError reports a wire format violation with its stream position.
type DecodeError = wire.DecodeError
