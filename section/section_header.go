package section

import (
	"io"

	"github.com/arloliu/ngg7/endian"
	"github.com/arloliu/ngg7/errs"
)

// SectionHeader describes one named byte range of a pack.
//
// Offset is absolute, measured from the start of the container file, not from the
// end of the section table.
type SectionHeader struct {
	Name   [SectionNameSize]byte // byte offset 0-15
	Offset int32                 // byte offset 16-19
	Size   int32                 // byte offset 20-23
	Code1  int32                 // byte offset 24-27, unknown
	Code2  int32                 // byte offset 28-31, unknown
}

// NewSectionHeader creates a SectionHeader for the given range.
// Names longer than SectionNameSize are cut.
func NewSectionHeader(name string, offset, size int32) SectionHeader {
	h := SectionHeader{Offset: offset, Size: size}
	copy(h.Name[:], name)

	return h
}

// Parse parses the header from a byte slice of exactly SectionHeaderSize bytes.
func (h *SectionHeader) Parse(data []byte) error {
	if len(data) != SectionHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	copy(h.Name[:], data[0:16])
	h.Offset = endian.Int32(engine, data[16:20])
	h.Size = endian.Int32(engine, data[20:24])
	h.Code1 = endian.Int32(engine, data[24:28])
	h.Code2 = endian.Int32(engine, data[28:32])

	return nil
}

// Bytes serializes the SectionHeader into its 32-byte on-disk form.
func (h *SectionHeader) Bytes() []byte {
	b := make([]byte, SectionHeaderSize)
	engine := endian.GetLittleEndianEngine()

	copy(b[0:16], h.Name[:])
	endian.PutInt32(engine, b[16:20], h.Offset)
	endian.PutInt32(engine, b[20:24], h.Size)
	endian.PutInt32(engine, b[24:28], h.Code1)
	endian.PutInt32(engine, b[28:32], h.Code2)

	return b
}

// SectionName returns the name field up to the first NUL. Padding after the NUL is
// not part of the name.
func (h *SectionHeader) SectionName() string {
	return cString(h.Name[:])
}

// End returns the absolute offset one past the last byte of the section.
func (h *SectionHeader) End() int64 {
	return int64(h.Offset) + int64(h.Size)
}

// ParseSectionHeader parses a SectionHeader from the start of data.
func ParseSectionHeader(data []byte) (SectionHeader, error) {
	if len(data) < SectionHeaderSize {
		return SectionHeader{}, errs.ErrInvalidHeaderSize
	}

	h := SectionHeader{}
	if err := h.Parse(data[:SectionHeaderSize]); err != nil {
		return SectionHeader{}, err
	}

	return h, nil
}

// ReadSectionHeader reads and parses a SectionHeader from the current position of r.
func ReadSectionHeader(r io.Reader) (SectionHeader, error) {
	data, err := readHeader(r, SectionHeaderSize, "section header")
	if err != nil {
		return SectionHeader{}, err
	}

	return ParseSectionHeader(data)
}
