package basictar

import (
	"bytes"
	"time"
)

// checksum computes the unsigned byte sum of one header block, with the
// checksum field's own 8 bytes counted as ASCII spaces regardless of what is
// actually stored there.
func checksum(block []byte) uint32 {
	var sum uint32
	for i, b := range block {
		if i >= checksumOffset && i < checksumOffset+checksumLen {
			b = ' '
		}
		sum += uint32(b)
	}
	return sum
}

// ParseHeader decodes one raw header block into a Header. It returns
// ErrEmptyHeader for an all-zero block, an *ErrChecksum if the stored
// checksum does not match the recomputed one, and field-level errors wrapped
// in *ErrHeaderField otherwise. The block is not retained.
func ParseHeader(block []byte) (*Header, error) {
	if len(block) != HEADER_BYTE_SIZE {
		return nil, ErrHeaderSize
	}
	if isZero(block) {
		return nil, ErrEmptyHeader
	}

	// Verify the checksum before trusting any field.
	stored, err := decodeOctal(block[checksumOffset : checksumOffset+checksumLen])
	if err != nil {
		return nil, &ErrHeaderField{Field: "checksum", Err: err}
	}
	if computed := checksum(block); uint64(computed) != stored {
		return nil, &ErrChecksum{Stored: uint32(stored), Computed: computed}
	}

	s := slicer(block)
	header := &Header{}

	name, err := decodeString(s.next(nameLen))
	if err != nil {
		return nil, &ErrHeaderField{Field: "name", Err: err}
	}
	header.Name = name

	mode, err := decodeOctal(s.next(modeLen))
	if err != nil {
		return nil, &ErrHeaderField{Field: "mode", Err: err}
	}
	header.Mode = uint32(mode)

	uid, err := decodeOctal(s.next(uidLen))
	if err != nil {
		return nil, &ErrHeaderField{Field: "uid", Err: err}
	}
	header.Uid = uint32(uid)

	gid, err := decodeOctal(s.next(gidLen))
	if err != nil {
		return nil, &ErrHeaderField{Field: "gid", Err: err}
	}
	header.Gid = uint32(gid)

	size, err := decodeOctal(s.next(sizeLen))
	if err != nil {
		return nil, &ErrHeaderField{Field: "size", Err: err}
	}
	header.Size = size

	mtime, err := decodeOctal(s.next(mtimeLen))
	if err != nil {
		return nil, &ErrHeaderField{Field: "mtime", Err: err}
	}
	header.ModTime = time.Unix(int64(mtime), 0)

	s.next(checksumLen) // already verified
	header.Typeflag = s.next(1)[0]

	linkname, err := decodeString(s.next(linknameLen))
	if err != nil {
		return nil, &ErrHeaderField{Field: "linkname", Err: err}
	}
	header.Linkname = linkname

	// Magic, owner/group names, device numbers and the ustar prefix are
	// carried opaquely so a re-serialize reproduces the producer's bytes.
	copy(header.Extra[:], s.next(extraLen))

	return header, nil
}

// Serialize encodes the header into a fresh raw block, computing and
// stamping the checksum last. It fails if a string exceeds its wire width
// (ErrNameTooLong, ErrLinkTooLong) or a numeric value does not fit its
// field (ErrFieldTooNarrow, wrapped in *ErrHeaderField).
func (h *Header) Serialize() ([]byte, error) {
	block := NewBlock()
	s := slicer(block)

	if len(h.Name) > nameLen {
		return nil, ErrNameTooLong
	}
	if err := encodeString(h.Name, s.next(nameLen)); err != nil {
		return nil, &ErrHeaderField{Field: "name", Err: err}
	}

	if err := encodeOctal(uint64(h.Mode), s.next(modeLen)); err != nil {
		return nil, &ErrHeaderField{Field: "mode", Err: err}
	}
	if err := encodeOctal(uint64(h.Uid), s.next(uidLen)); err != nil {
		return nil, &ErrHeaderField{Field: "uid", Err: err}
	}
	if err := encodeOctal(uint64(h.Gid), s.next(gidLen)); err != nil {
		return nil, &ErrHeaderField{Field: "gid", Err: err}
	}
	if err := encodeOctal(h.Size, s.next(sizeLen)); err != nil {
		return nil, &ErrHeaderField{Field: "size", Err: err}
	}

	var mtime int64
	if !h.ModTime.IsZero() {
		mtime = h.ModTime.Unix()
	}
	if mtime < 0 {
		return nil, &ErrHeaderField{Field: "mtime", Err: ErrFieldTooNarrow}
	}
	if err := encodeOctal(uint64(mtime), s.next(mtimeLen)); err != nil {
		return nil, &ErrHeaderField{Field: "mtime", Err: err}
	}

	s.next(checksumLen) // stamped below
	s.next(1)[0] = h.Typeflag

	if len(h.Linkname) > linknameLen {
		return nil, ErrLinkTooLong
	}
	if err := encodeString(h.Linkname, s.next(linknameLen)); err != nil {
		return nil, &ErrHeaderField{Field: "linkname", Err: err}
	}

	copy(s.next(extraLen), h.Extra[:])

	// An uint32 sum always fits the 8-byte checksum field.
	sum := checksum(block)
	if err := encodeOctal(uint64(sum), block[checksumOffset:checksumOffset+checksumLen]); err != nil {
		return nil, &ErrHeaderField{Field: "checksum", Err: err}
	}

	return block, nil
}

func isZero(block []byte) bool {
	return bytes.Count(block, []byte{0}) == len(block)
}
