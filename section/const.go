package section

// fixed on-disk sizes of the packed NGG7 structures
const (
	ContainerHeaderSize = 20 // top-level header
	PackHeaderSize      = 28 // pack header following a pack container header
	SectionHeaderSize   = 32 // one per section, contiguous after the pack header
	PayloadHeaderSize   = 12 // payload header following a payload container header

	SectionNameSize = 16 // NUL-terminated or padded section name field
	PackInfoSize    = 8  // human-readable pack tag
)

// Format selector values (ContainerHeader.Code2) that mark a single compressed payload.
// Every other value selects the pack path.
const (
	SelectorPayload64K = 0x00010000 // 65536
	SelectorPayload1M  = 0x00100000 // 1048576
)

// Magic is the tag expected in ContainerHeader.Magic. It is not enforced unless the
// caller asks for strict checking.
const Magic = "NGG7"
