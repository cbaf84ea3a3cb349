package basictar

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyHeader indicates that a header block is all zero. Two such
	// blocks in a row are the conventional end-of-archive marker.
	ErrEmptyHeader = errors.New("basictar: empty header block")

	// ErrHeaderSize indicates that a buffer passed to ParseHeader is not
	// exactly one block long.
	ErrHeaderSize = errors.New("basictar: header block must be 512 bytes")

	// ErrInvalidDigit indicates that a numeric field contains a byte that is
	// neither an octal digit nor trailing NUL/space padding.
	ErrInvalidDigit = errors.New("basictar: invalid octal digit")

	// ErrOverflow indicates that a numeric field's value does not fit the
	// target integer.
	ErrOverflow = errors.New("basictar: octal value overflows")

	// ErrFieldTooNarrow indicates that a value's octal representation does
	// not fit its fixed-width wire field.
	ErrFieldTooNarrow = errors.New("basictar: value does not fit field")

	// ErrNameTooLong indicates that a header's Name exceeds the 100 bytes
	// the classic format allows.
	ErrNameTooLong = errors.New("basictar: name longer than 100 bytes")

	// ErrLinkTooLong indicates that a header's Linkname exceeds the 100
	// bytes the classic format allows.
	ErrLinkTooLong = errors.New("basictar: linkname longer than 100 bytes")

	// ErrInvalidEncoding indicates that a string field is not valid text, or
	// carries non-NUL bytes after its terminator that a re-serialize could
	// not reproduce.
	ErrInvalidEncoding = errors.New("basictar: invalid string field encoding")
)

// ErrChecksum indicates that a header block's stored checksum does not match
// the sum recomputed over the block.
type ErrChecksum struct {
	Stored   uint32
	Computed uint32
}

func (e *ErrChecksum) Error() string {
	return fmt.Sprintf("basictar: header checksum mismatch (stored %o, computed %o)", e.Stored, e.Computed)
}

// ErrHeaderField indicates a problem with one named field of a header block.
type ErrHeaderField struct {
	Field string
	Err   error
}

func (e *ErrHeaderField) Error() string {
	return fmt.Sprintf("basictar: header field %s: %s", e.Field, e.Err)
}

func (e *ErrHeaderField) Unwrap() error {
	return e.Err
}
