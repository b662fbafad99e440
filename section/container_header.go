package section

import (
	"io"

	"github.com/arloliu/ngg7/endian"
	"github.com/arloliu/ngg7/errs"
	"github.com/arloliu/ngg7/format"
)

// ContainerHeader is the fixed 20-byte header at the start of every NGG7 container.
type ContainerHeader struct {
	// Magic is the format tag, "NGG7" on every known firmware.
	Magic [4]byte // byte offset 0-3
	// Version is the ASCII version tag, e.g. "2.00".
	Version [4]byte // byte offset 4-7
	// Code1 varies between firmwares (0x1e2f, 0x382e, 0x212f seen). Not interpreted.
	Code1 uint16 // byte offset 8-9
	// Const1 is 0x0f00 on every known firmware. Not interpreted.
	Const1 uint16 // byte offset 10-11
	// Const2 looks like a packed build date. Not interpreted.
	Const2 int32 // byte offset 12-15
	// Code2 is the format selector: SelectorPayload64K or SelectorPayload1M mark a
	// payload container, any other value a pack.
	Code2 int32 // byte offset 16-19
}

// Parse parses the header from a byte slice of exactly ContainerHeaderSize bytes.
func (h *ContainerHeader) Parse(data []byte) error {
	if len(data) != ContainerHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	copy(h.Magic[:], data[0:4])
	copy(h.Version[:], data[4:8])
	h.Code1 = engine.Uint16(data[8:10])
	h.Const1 = engine.Uint16(data[10:12])
	h.Const2 = endian.Int32(engine, data[12:16])
	h.Code2 = endian.Int32(engine, data[16:20])

	return nil
}

// Bytes serializes the ContainerHeader into its 20-byte on-disk form.
func (h *ContainerHeader) Bytes() []byte {
	b := make([]byte, ContainerHeaderSize)
	engine := endian.GetLittleEndianEngine()

	copy(b[0:4], h.Magic[:])
	copy(b[4:8], h.Version[:])
	engine.PutUint16(b[8:10], h.Code1)
	engine.PutUint16(b[10:12], h.Const1)
	endian.PutInt32(engine, b[12:16], h.Const2)
	endian.PutInt32(engine, b[16:20], h.Code2)

	return b
}

// Kind decides which extraction path the container takes.
func (h *ContainerHeader) Kind() format.ContainerKind {
	switch h.Code2 {
	case SelectorPayload64K, SelectorPayload1M:
		return format.KindPayload
	default:
		return format.KindPack
	}
}

// HasValidMagic reports whether Magic equals "NGG7".
func (h *ContainerHeader) HasValidMagic() bool {
	return string(h.Magic[:]) == Magic
}

// MagicString returns the magic tag up to the first NUL.
func (h *ContainerHeader) MagicString() string {
	return cString(h.Magic[:])
}

// VersionString returns the version tag up to the first NUL.
func (h *ContainerHeader) VersionString() string {
	return cString(h.Version[:])
}

// ParseContainerHeader parses a ContainerHeader from the start of data.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 20 bytes)
//
// Returns:
//   - ContainerHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize if data is too short
func ParseContainerHeader(data []byte) (ContainerHeader, error) {
	if len(data) < ContainerHeaderSize {
		return ContainerHeader{}, errs.ErrInvalidHeaderSize
	}

	h := ContainerHeader{}
	if err := h.Parse(data[:ContainerHeaderSize]); err != nil {
		return ContainerHeader{}, err
	}

	return h, nil
}

// ReadContainerHeader reads and parses a ContainerHeader from the current position of r.
// It returns errs.ErrTruncatedHeader if fewer than 20 bytes are available.
func ReadContainerHeader(r io.Reader) (ContainerHeader, error) {
	data, err := readHeader(r, ContainerHeaderSize, "container header")
	if err != nil {
		return ContainerHeader{}, err
	}

	return ParseContainerHeader(data)
}
