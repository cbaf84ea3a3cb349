package basictar

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// decodeOctal parses a fixed-width octal field. Trailing NUL and space
// padding is ignored; a field that is nothing but padding decodes to 0,
// since unused numeric fields are commonly left blank.
func decodeOctal(field []byte) (uint64, error) {
	end := len(field)
	for end > 0 && (field[end-1] == 0 || field[end-1] == ' ') {
		end--
	}

	var v uint64
	for _, c := range field[:end] {
		if c < '0' || c > '7' {
			return 0, ErrInvalidDigit
		}
		if v > (1<<64-1)>>3 {
			return 0, ErrOverflow
		}
		v = v<<3 | uint64(c-'0')
	}
	return v, nil
}

// encodeOctal writes v into field as zero-padded octal digits with a
// terminating NUL, the way classic tar producers emit numeric fields.
func encodeOctal(v uint64, field []byte) error {
	digits := strconv.FormatUint(v, 8)
	if len(digits) > len(field)-1 {
		return ErrFieldTooNarrow
	}
	pad := len(field) - 1 - len(digits)
	for i := 0; i < pad; i++ {
		field[i] = '0'
	}
	copy(field[pad:], digits)
	field[len(field)-1] = 0
	return nil
}

// decodeString parses a NUL-padded text field. Everything after the first
// NUL must be NUL as well, so that re-encoding the decoded value reproduces
// the field byte for byte.
func decodeString(field []byte) (string, error) {
	end := bytes.IndexByte(field, 0)
	if end == -1 {
		end = len(field)
	}
	for _, c := range field[end:] {
		if c != 0 {
			return "", ErrInvalidEncoding
		}
	}
	if !utf8.Valid(field[:end]) {
		return "", ErrInvalidEncoding
	}
	return string(field[:end]), nil
}

// encodeString writes s into field, NUL-padding the remainder. A value that
// fills the field exactly is legal and carries no terminator.
func encodeString(s string, field []byte) error {
	if len(s) > len(field) {
		return ErrFieldTooNarrow
	}
	copy(field, s)
	for i := len(s); i < len(field); i++ {
		field[i] = 0
	}
	return nil
}
