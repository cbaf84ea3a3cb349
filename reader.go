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
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Reader provides record-by-record read access to a tar stream.
// Call Next to skip to the next record.
//
// Example:
//
//     reader := NewReader(f)
//     var buf bytes.Buffer
//     for {
//         _, err := reader.Next()
//         if err == io.EOF {
//             break
//         }
//         if err != nil {
//             return err
//         }
//         io.Copy(&buf, reader)
//     }
type Reader struct {
	// r is the underlying archive stream.
	r *bufio.Reader

	// nb is the number of bytes in the current payload that remain unread.
	nb int64

	// pad is the number of padding bytes that follow the current payload,
	// bringing it up to the next block boundary.
	pad int64
}

// NewReader creates a new Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

func (rd *Reader) skipUnread() error {
	skip := rd.nb + rd.pad
	rd.nb, rd.pad = 0, 0
	return DrainExact(rd.r, skip, nil)
}

// Next skips to the next record in the archive and returns its parsed
// header. io.EOF is returned at the end-of-archive marker (two zero blocks,
// or a zero block at the end of the stream); a lone zero block followed by
// more data surfaces ErrEmptyHeader.
func (rd *Reader) Next() (*Header, error) {
	if err := rd.skipUnread(); err != nil {
		return nil, errors.Wrap(err, "basictar: skip record")
	}

	block := NewBlock()
	if _, err := io.ReadFull(rd.r, block); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrap(err, "basictar: read header block")
	}

	header, err := ParseHeader(block)
	if errors.Is(err, ErrEmptyHeader) {
		// A zero block opens the end-of-archive marker; the second block
		// should be zero too, but a stream that simply ends here is common
		// enough to accept.
		if _, err := io.ReadFull(rd.r, block); err == io.EOF {
			return nil, io.EOF
		} else if err != nil {
			return nil, errors.Wrap(err, "basictar: read header block")
		}
		if isZero(block) {
			return nil, io.EOF
		}
		return nil, ErrEmptyHeader
	}
	if err != nil {
		return nil, err
	}

	rd.nb = int64(header.Size)
	rd.pad = int64(CeilToBlock(header.Size) - header.Size)
	return header, nil
}

// Read reads payload data from the current record in the archive.
func (rd *Reader) Read(b []byte) (n int, err error) {
	if rd.nb == 0 {
		return 0, io.EOF
	}
	if int64(len(b)) > rd.nb {
		b = b[0:rd.nb]
	}
	n, err = rd.r.Read(b)
	rd.nb -= int64(n)

	return
}
