package section

import (
	"io"

	"github.com/arloliu/ngg7/endian"
	"github.com/arloliu/ngg7/errs"
)

// PackHeader follows the container header of a pack and announces Num section headers.
type PackHeader struct {
	Code1 uint32             // byte offset 0-3, unknown
	Info  [PackInfoSize]byte // byte offset 4-11
	Num   uint32             // byte offset 12-15
	Code2 uint32             // byte offset 16-19, unknown
	Code3 uint32             // byte offset 20-23, unknown
	Code4 uint32             // byte offset 24-27, unknown
}

// Parse parses the header from a byte slice of exactly PackHeaderSize bytes.
func (h *PackHeader) Parse(data []byte) error {
	if len(data) != PackHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.Code1 = engine.Uint32(data[0:4])
	copy(h.Info[:], data[4:12])
	h.Num = engine.Uint32(data[12:16])
	h.Code2 = engine.Uint32(data[16:20])
	h.Code3 = engine.Uint32(data[20:24])
	h.Code4 = engine.Uint32(data[24:28])

	return nil
}

// Bytes serializes the PackHeader into its 28-byte on-disk form.
func (h *PackHeader) Bytes() []byte {
	b := make([]byte, PackHeaderSize)
	engine := endian.GetLittleEndianEngine()

	engine.PutUint32(b[0:4], h.Code1)
	copy(b[4:12], h.Info[:])
	engine.PutUint32(b[12:16], h.Num)
	engine.PutUint32(b[16:20], h.Code2)
	engine.PutUint32(b[20:24], h.Code3)
	engine.PutUint32(b[24:28], h.Code4)

	return b
}

// InfoString returns the pack tag up to the first NUL.
func (h *PackHeader) InfoString() string {
	return cString(h.Info[:])
}

// ParsePackHeader parses a PackHeader from the start of data.
func ParsePackHeader(data []byte) (PackHeader, error) {
	if len(data) < PackHeaderSize {
		return PackHeader{}, errs.ErrInvalidHeaderSize
	}

	h := PackHeader{}
	if err := h.Parse(data[:PackHeaderSize]); err != nil {
		return PackHeader{}, err
	}

	return h, nil
}

// ReadPackHeader reads and parses a PackHeader from the current position of r.
func ReadPackHeader(r io.Reader) (PackHeader, error) {
	data, err := readHeader(r, PackHeaderSize, "pack header")
	if err != nil {
		return PackHeader{}, err
	}

	return ParsePackHeader(data)
}
