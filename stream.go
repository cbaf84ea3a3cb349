package basictar

import (
	"errors"
	"io"
)

// chunkSize bounds the scratch buffer the padding helpers use, so memory
// stays constant no matter how many bytes are drained or filled.
const chunkSize = 4096

// DrainExact reads and discards exactly n bytes from r. observe, if not nil,
// is called with every chunk before it is discarded, so callers can checksum
// or count the bytes. A stream that ends early yields io.ErrUnexpectedEOF;
// nothing is retried, since a short read on a stream that cannot supply more
// bytes would only hide a truncated archive.
func DrainExact(r io.Reader, n int64, observe func(p []byte)) error {
	buf := make([]byte, chunkSize)
	for n > 0 {
		c := int64(len(buf))
		if n < c {
			c = n
		}
		m, err := io.ReadFull(r, buf[:c])
		if m > 0 && observe != nil {
			observe(buf[:m])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return err
		}
		n -= int64(m)
	}
	return nil
}

// FillExact writes exactly n bytes to w. generate, if not nil, is called to
// fill every chunk before it is written; a nil generate emits zero bytes,
// which is what block padding needs. Write errors propagate unchanged.
func FillExact(w io.Writer, n int64, generate func(p []byte)) error {
	buf := make([]byte, chunkSize)
	for n > 0 {
		c := int64(len(buf))
		if n < c {
			c = n
		}
		p := buf[:c]
		if generate != nil {
			generate(p)
		}
		m, err := w.Write(p)
		if err != nil {
			return err
		}
		if m < len(p) {
			return io.ErrShortWrite
		}
		n -= int64(m)
	}
	return nil
}
