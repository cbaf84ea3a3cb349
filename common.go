// Package basictar implements the classic ("oldstyle") tar record header
// format: parsing and serializing the 512-byte header block, plus the stream
// helpers needed to keep payload data aligned to the block size.
//
// It is a building block, not an archiver: it does not walk directory trees,
// interpret link semantics or handle compression. Callers layer those on
// top, reading a header block, then Size payload bytes, then
// CeilToBlock(Size)-Size padding bytes per record. The Reader and Writer
// types wrap that sequence for the common streaming case.
package basictar

import (
	"time"
)

const (
	// BLOCK_SIZE is the fixed tar block size; every record and its padding
	// is a multiple of this.
	BLOCK_SIZE = 512

	// HEADER_BYTE_SIZE is the size of one header record: exactly one block.
	HEADER_BYTE_SIZE = BLOCK_SIZE
)

// Field widths of the classic header layout, in wire order.
const (
	nameLen     = 100
	modeLen     = 8
	uidLen      = 8
	gidLen      = 8
	sizeLen     = 12
	mtimeLen    = 12
	checksumLen = 8
	linknameLen = 100
	extraLen    = 255

	checksumOffset = nameLen + modeLen + uidLen + gidLen + sizeLen + mtimeLen
)

// Typeflag values of the classic header. Unrecognized values are preserved
// as-is rather than rejected.
const (
	// TYPE_REGULAR marks a regular file.
	TYPE_REGULAR byte = '0'

	// TYPE_HARDLINK marks a hardlink.
	TYPE_HARDLINK byte = '1'

	// TYPE_SYMLINK marks a symlink.
	TYPE_SYMLINK byte = '2'

	// TYPE_CHAR_DEV marks a character device.
	TYPE_CHAR_DEV byte = '3'

	// TYPE_BLOCK_DEV marks a block device.
	TYPE_BLOCK_DEV byte = '4'

	// TYPE_DIRECTORY marks a directory.
	TYPE_DIRECTORY byte = '5'

	// TYPE_FIFO_NODE marks a FIFO node (named pipe).
	TYPE_FIFO_NODE byte = '6'

	// TYPE_PAX_SINGLE marks a pax interchange record that only affects the
	// next file.
	TYPE_PAX_SINGLE byte = 'x'

	// TYPE_PAX_GLOBAL marks a pax interchange record that affects all
	// subsequent files.
	TYPE_PAX_GLOBAL byte = 'g'
)

// Header is the decoded form of one tar record header. It carries no
// reference to the stream it came from; payload bytes are the caller's
// business.
type Header struct {
	// Name is the record's path, at most 100 bytes of encoded text.
	Name string

	// Mode holds the record's permission bits, e.g. 0o644.
	Mode uint32

	// Uid and Gid are the record's owner and group ids.
	Uid uint32
	Gid uint32

	// Size is the payload length in bytes. The payload is followed on the
	// wire by CeilToBlock(Size)-Size padding bytes.
	Size uint64

	// ModTime is the record's modification time, stored on the wire as Unix
	// seconds. The zero time serializes as 0.
	ModTime time.Time

	// Typeflag discriminates the record type; see the TYPE_* constants.
	Typeflag byte

	// Linkname is the link target for link records, at most 100 bytes.
	Linkname string

	// Extra holds bytes 257..512 of the block (magic/version, owner and
	// group names, device numbers, prefix, pad). They are round-tripped
	// verbatim without interpretation.
	Extra [extraLen]byte
}

// NewBlock returns a zeroed buffer of exactly one header block.
func NewBlock() []byte {
	return make([]byte, HEADER_BYTE_SIZE)
}

// CeilToBlock returns the smallest multiple of BLOCK_SIZE that is >= n.
// CeilToBlock(0) is 0. Values within BLOCK_SIZE of the top of the uint64
// range wrap; archive sizes never get there.
func CeilToBlock(n uint64) uint64 {
	if r := n % BLOCK_SIZE; r != 0 {
		return n + (BLOCK_SIZE - r)
	}
	return n
}

type slicer []byte

func (sp *slicer) next(n int) (b []byte) {
	s := *sp
	b, *sp = s[0:n], s[n:]
	return
}
