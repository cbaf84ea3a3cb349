/*
Copyright (c) 2017 Jerry Jacobs <jerry.jacobs@xor-gate.org>
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
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRecord(t *testing.T) {
	hdr := new(Header)
	body := "hello"
	hdr.ModTime = time.Unix(1361157466, 0)
	hdr.Name = "file.txt"
	hdr.Size = uint64(len(body))
	hdr.Mode = 0o644
	hdr.Uid = 501
	hdr.Gid = 20
	hdr.Typeflag = TYPE_REGULAR

	var buf bytes.Buffer
	writer := NewWriter(&buf)
	require.NoError(t, writer.WriteHeader(hdr))
	_, err := writer.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	// One header block, five payload bytes, 507 padding bytes, and the
	// two-block end-of-archive marker.
	out := buf.Bytes()
	require.Len(t, out, 512+5+507+1024)
	assert.Equal(t, []byte(body), out[512:517])
	assert.Equal(t, make([]byte, 507), out[517:1024])
	assert.Equal(t, make([]byte, 1024), out[1024:])
}

func TestWriteExactBlockPayload(t *testing.T) {
	body := bytes.Repeat([]byte{'x'}, BLOCK_SIZE)
	hdr := &Header{Name: "block.bin", Size: BLOCK_SIZE, ModTime: time.Unix(0, 0), Typeflag: TYPE_REGULAR}

	var buf bytes.Buffer
	writer := NewWriter(&buf)
	require.NoError(t, writer.WriteHeader(hdr))
	_, err := writer.Write(body)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	// No padding between the payload and the end-of-archive marker.
	out := buf.Bytes()
	require.Len(t, out, 512+512+1024)
	assert.Equal(t, body, out[512:1024])
}

func TestWriteEmptyArchive(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf)
	require.NoError(t, writer.Close())
	assert.Equal(t, make([]byte, 2*BLOCK_SIZE), buf.Bytes())
}

func TestWriteTooLong(t *testing.T) {
	hdr := new(Header)
	hdr.Name = "short"
	hdr.Size = 1
	hdr.ModTime = time.Unix(0, 0)

	var buf bytes.Buffer
	writer := NewWriter(&buf)
	require.NoError(t, writer.WriteHeader(hdr))
	n, err := writer.Write([]byte("hello"))
	assert.ErrorIs(t, err, ErrWriteTooLong)
	assert.Equal(t, 1, n)
}

func TestWriteIncompleteEntry(t *testing.T) {
	first := &Header{Name: "a", Size: 5, ModTime: time.Unix(0, 0)}
	second := &Header{Name: "b", ModTime: time.Unix(0, 0)}

	var buf bytes.Buffer
	writer := NewWriter(&buf)
	require.NoError(t, writer.WriteHeader(first))
	_, err := writer.Write([]byte("he"))
	require.NoError(t, err)

	err = writer.WriteHeader(second)
	assert.ErrorIs(t, err, ErrIncompleteEntry)
	err = writer.Close()
	assert.ErrorIs(t, err, ErrIncompleteEntry)
}

func TestWriteClosedWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf)
	require.NoError(t, writer.Close())

	assert.Error(t, writer.Close())
	_, err := writer.Write([]byte("x"))
	assert.Error(t, err)
	assert.Error(t, writer.WriteHeader(&Header{Name: "x", ModTime: time.Unix(0, 0)}))
}

func TestWriteBadHeader(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf)
	err := writer.WriteHeader(&Header{Name: string(bytes.Repeat([]byte{'x'}, 101))})
	assert.ErrorIs(t, err, ErrNameTooLong)
	assert.Zero(t, buf.Len())
}
