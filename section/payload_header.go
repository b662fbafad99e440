package section

import (
	"io"

	"github.com/arloliu/ngg7/endian"
	"github.com/arloliu/ngg7/errs"
)

// PayloadHeader follows the container header of a payload container.
// The compressed stream starts right after it and runs to the end of the file,
// followed by one terminator byte.
type PayloadHeader struct {
	// SizeD is the decompressed size hint. It does not bound the copy.
	SizeD uint64 // byte offset 0-7
	// Zero1 is reserved, 0 on every known firmware.
	Zero1 int32 // byte offset 8-11
}

// Parse parses the header from a byte slice of exactly PayloadHeaderSize bytes.
func (h *PayloadHeader) Parse(data []byte) error {
	if len(data) != PayloadHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.SizeD = engine.Uint64(data[0:8])
	h.Zero1 = endian.Int32(engine, data[8:12])

	return nil
}

// Bytes serializes the PayloadHeader into its 12-byte on-disk form.
func (h *PayloadHeader) Bytes() []byte {
	b := make([]byte, PayloadHeaderSize)
	engine := endian.GetLittleEndianEngine()

	engine.PutUint64(b[0:8], h.SizeD)
	endian.PutInt32(engine, b[8:12], h.Zero1)

	return b
}

// ParsePayloadHeader parses a PayloadHeader from the start of data.
func ParsePayloadHeader(data []byte) (PayloadHeader, error) {
	if len(data) < PayloadHeaderSize {
		return PayloadHeader{}, errs.ErrInvalidHeaderSize
	}

	h := PayloadHeader{}
	if err := h.Parse(data[:PayloadHeaderSize]); err != nil {
		return PayloadHeader{}, err
	}

	return h, nil
}

// ReadPayloadHeader reads and parses a PayloadHeader from the current position of r.
func ReadPayloadHeader(r io.Reader) (PayloadHeader, error) {
	data, err := readHeader(r, PayloadHeaderSize, "payload header")
	if err != nil {
		return PayloadHeader{}, err
	}

	return ParsePayloadHeader(data)
}
