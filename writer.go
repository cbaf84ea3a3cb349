/*
Copyright (c) 2013 Blake Smith <blakesmith0@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package basictar

import (
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrWriteTooLong indicates that more payload bytes were written than
	// the current record's header announced.
	ErrWriteTooLong = errors.New("basictar: write too long")

	// ErrIncompleteEntry indicates that a new header or Close arrived before
	// the current record's announced payload was fully written.
	ErrIncompleteEntry = errors.New("basictar: record payload incomplete")
)

// Writer provides sequential writing of a tar stream.
// A tar stream is a sequence of header/payload pairs, each padded to a block
// boundary. Call WriteHeader to begin a new record, then Write to supply its
// payload; the Writer emits the padding itself.
//
// Example:
//
//     archive := NewWriter(w)
//     header := &Header{Name: "file.txt", Size: 5, Typeflag: TYPE_REGULAR}
//     if err := archive.WriteHeader(header); err != nil {
//         return err
//     }
//     io.Copy(archive, data)
//     archive.Close()
type Writer struct {
	// w is the underlying io.Writer to which the stream is written.
	w io.Writer

	// closed is true once Close has been called on this Writer.
	closed bool

	// nb is the number of payload bytes still owed since the most recent
	// call to WriteHeader.
	nb int64

	// pad is the number of padding bytes owed after the current payload.
	pad int64
}

// NewWriter creates a new Writer that writes a tar stream to an underlying
// io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// flush pads the current record out to its block boundary. The record's
// payload must have been written in full first.
func (tw *Writer) flush() error {
	if tw.nb > 0 {
		return ErrIncompleteEntry
	}
	pad := tw.pad
	tw.pad = 0
	return FillExact(tw.w, pad, nil)
}

// WriteHeader finishes the previous record, serializes hdr and writes it to
// the underlying writer, preparing to receive the record's payload.
func (tw *Writer) WriteHeader(hdr *Header) error {
	if tw.closed {
		return errors.New("basictar: write to closed writer")
	}
	if err := tw.flush(); err != nil {
		return err
	}

	block, err := hdr.Serialize()
	if err != nil {
		return err
	}
	if _, err := tw.w.Write(block); err != nil {
		return errors.Wrap(err, "basictar: write header block")
	}

	tw.nb = int64(hdr.Size)
	tw.pad = int64(CeilToBlock(hdr.Size) - hdr.Size)
	return nil
}

// Write writes payload data to the current record in the stream.
// Returns ErrWriteTooLong if more than hdr.Size bytes are written after a
// call to WriteHeader.
func (tw *Writer) Write(b []byte) (n int, err error) {
	if tw.closed {
		return 0, errors.New("basictar: write to closed writer")
	}
	if int64(len(b)) > tw.nb {
		b = b[0:tw.nb]
		err = ErrWriteTooLong
	}
	n, werr := tw.w.Write(b)
	tw.nb -= int64(n)
	if werr != nil {
		return n, werr
	}
	return
}

// Close finishes the stream, padding the last record and emitting the
// conventional two-zero-block end-of-archive marker. It does not close the
// underlying io.Writer.
func (tw *Writer) Close() error {
	if tw.closed {
		return errors.New("basictar: writer closed twice")
	}
	if err := tw.flush(); err != nil {
		return err
	}
	if err := FillExact(tw.w, 2*BLOCK_SIZE, nil); err != nil {
		return errors.Wrap(err, "basictar: write end-of-archive marker")
	}
	tw.closed = true
	return nil
}
