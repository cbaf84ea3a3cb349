package basictar

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrainExact(t *testing.T) {
	stream := bytes.NewReader([]byte("hello world"))

	var seen []byte
	err := DrainExact(stream, 6, func(p []byte) { seen = append(seen, p...) })
	require.NoError(t, err)
	assert.Equal(t, []byte("hello "), seen)

	// The stream must be positioned right after the drained bytes.
	rest, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), rest)
}

func TestDrainExactChunked(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 3*chunkSize+17)

	var total int
	err := DrainExact(bytes.NewReader(data), int64(len(data)), func(p []byte) {
		for _, b := range p {
			assert.Equal(t, byte(0xab), b)
		}
		total += len(p)
	})
	require.NoError(t, err)
	assert.Equal(t, len(data), total)
}

func TestDrainExactShortReads(t *testing.T) {
	// A stream that yields one byte per read still drains completely.
	stream := iotest.OneByteReader(bytes.NewReader([]byte("hello world")))
	require.NoError(t, DrainExact(stream, 11, nil))
}

func TestDrainExactShortStream(t *testing.T) {
	err := DrainExact(bytes.NewReader([]byte("abc")), 10, nil)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDrainExactZero(t *testing.T) {
	require.NoError(t, DrainExact(bytes.NewReader(nil), 0, nil))
}

func TestFillExact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FillExact(&buf, 507, nil))
	assert.Equal(t, make([]byte, 507), buf.Bytes())
}

func TestFillExactZero(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FillExact(&buf, 0, nil))
	assert.Zero(t, buf.Len())
}

func TestFillExactGenerator(t *testing.T) {
	var buf bytes.Buffer
	err := FillExact(&buf, int64(chunkSize+3), func(p []byte) {
		for i := range p {
			p[i] = 0xaa
		}
	})
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xaa}, chunkSize+3), buf.Bytes())
}

type brokenWriter struct {
	err error
}

func (w brokenWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestFillExactWriteError(t *testing.T) {
	sinkErr := errors.New("sink unavailable")
	err := FillExact(brokenWriter{err: sinkErr}, 10, nil)
	assert.ErrorIs(t, err, sinkErr)
}
