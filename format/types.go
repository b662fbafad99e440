package format

type (
	ContainerKind   uint8
	CompressionType uint8
)

const (
	KindPack    ContainerKind = 0x1 // KindPack represents a multi-section pack archive.
	KindPayload ContainerKind = 0x2 // KindPayload represents a single compressed payload.

	CompressionNone CompressionType = 0x1 // CompressionNone writes outputs verbatim.
	CompressionZstd CompressionType = 0x2 // CompressionZstd wraps outputs in a Zstandard stream.
	CompressionS2   CompressionType = 0x3 // CompressionS2 wraps outputs in an S2 stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 wraps outputs in an LZ4 frame.
)

func (k ContainerKind) String() string {
	switch k {
	case KindPack:
		return "Pack"
	case KindPayload:
		return "Payload"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a case-sensitive lowercase name to a CompressionType.
// The second return value is false for unknown names.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
