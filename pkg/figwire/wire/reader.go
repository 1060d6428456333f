// Package wire implements the Lightning figure stream format: a tagged,
// little-endian binary encoding of one figure (save path, dimensions,
// labels, series data and drawing options).
package wire

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

// floatChunk caps how many float64 elements are allocated per read step, so
// a corrupt length prefix cannot force a huge up-front allocation.
const floatChunk = 4096

// reader tracks the byte offset of a buffered stream and maps end-of-stream
// inside a payload to ErrTruncated. Read failures other than EOF are
// returned as-is, so callers can distinguish I/O errors from format errors.
type reader struct {
	r   *bufio.Reader
	off int64
}

func newReader(r io.Reader) *reader {
	return &reader{r: bufio.NewReader(r)}
}

func (r *reader) offset() int64 {
	return r.off
}

// readTag returns the next tag byte. ok is false on a clean end of stream,
// which is only legal at a tag boundary.
func (r *reader) readTag() (tag byte, ok bool, err error) {
	b, err := r.r.ReadByte()
	if err == io.EOF {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	r.off++
	return b, true, nil
}

// readByte reads a single payload byte; end of stream is a truncation.
func (r *reader) readByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err == io.EOF {
		return 0, r.truncated()
	}
	if err != nil {
		return 0, err
	}
	r.off++
	return b, nil
}

// readCString reads a null-terminated UTF-8 string. The terminator is
// consumed and not included in the result.
func (r *reader) readCString() (string, error) {
	var buf []byte
	for {
		b, err := r.r.ReadByte()
		if err == io.EOF {
			return "", r.truncated()
		}
		if err != nil {
			return "", err
		}
		r.off++
		if b == 0 {
			return string(buf), nil
		}
		buf = append(buf, b)
	}
}

func (r *reader) readUint64() (uint64, error) {
	var buf [8]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func (r *reader) readInt32() (int32, error) {
	var buf [4]byte
	if err := r.fill(buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

func (r *reader) readFloat64() (float64, error) {
	bits, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// readFloats reads n contiguous little-endian float64 values. The result
// grows as bytes actually arrive rather than trusting n up front.
func (r *reader) readFloats(n uint64) ([]float64, error) {
	out := make([]float64, 0, min(n, floatChunk))
	buf := make([]byte, 8*min(n, floatChunk))
	for n > 0 {
		c := min(n, floatChunk)
		if err := r.fill(buf[:8*c]); err != nil {
			return nil, err
		}
		for i := uint64(0); i < c; i++ {
			out = append(out, math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:])))
		}
		n -= c
	}
	return out, nil
}

// fill reads exactly len(buf) payload bytes.
func (r *reader) fill(buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	r.off += int64(n)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return r.truncated()
	}
	return err
}

func (r *reader) truncated() error {
	return &DecodeError{Offset: r.off, Err: ErrTruncated}
}
