// Package section defines the fixed-layout binary structures of the NGG7 firmware
// container format.
//
// Every structure is byte-packed with no implicit padding and stored little-endian.
// Decoding uses explicit byte offsets through the endian package, never the host's
// struct layout.
//
// # Container Layout
//
// Pack container:
//
//	┌──────────────────────────────────────────────┐
//	│ ContainerHeader (20 bytes)                   │
//	├──────────────────────────────────────────────┤
//	│ PackHeader (28 bytes), Num = N               │
//	├──────────────────────────────────────────────┤
//	│ SectionHeader × N (32 bytes each, no gaps)   │
//	├──────────────────────────────────────────────┤
//	│ Section data, addressed by absolute offsets  │
//	└──────────────────────────────────────────────┘
//
// Payload container:
//
//	┌──────────────────────────────────────────────┐
//	│ ContainerHeader (20 bytes)                   │
//	├──────────────────────────────────────────────┤
//	│ PayloadHeader (12 bytes)                     │
//	├──────────────────────────────────────────────┤
//	│ Compressed stream (to end of file)           │
//	├──────────────────────────────────────────────┤
//	│ Terminator (1 byte, conventionally 0x00)     │
//	└──────────────────────────────────────────────┘
//
// # Header Formats
//
// ContainerHeader (20 bytes):
//
//	Bytes  | Field   | Type    | Description
//	-------|---------|---------|----------------------------------
//	0-3    | Magic   | [4]byte | "NGG7"
//	4-7    | Version | [4]byte | e.g. "2.00"
//	8-9    | Code1   | uint16  | unknown
//	10-11  | Const1  | uint16  | 0x0f00
//	12-15  | Const2  | int32   | unknown, constant per firmware
//	16-19  | Code2   | int32   | format selector
//
// PackHeader (28 bytes):
//
//	Bytes  | Field | Type    | Description
//	-------|-------|---------|----------------------------------
//	0-3    | Code1 | uint32  | unknown
//	4-11   | Info  | [8]byte | human-readable tag
//	12-15  | Num   | uint32  | number of section headers
//	16-27  | Code2-4 | uint32 | unknown
//
// SectionHeader (32 bytes):
//
//	Bytes  | Field  | Type     | Description
//	-------|--------|----------|----------------------------------
//	0-15   | Name   | [16]byte | NUL-terminated or padded
//	16-19  | Offset | int32    | absolute offset in the container
//	20-23  | Size   | int32    | section size in bytes
//	24-31  | Code1-2 | int32   | unknown
//
// PayloadHeader (12 bytes):
//
//	Bytes  | Field | Type   | Description
//	-------|-------|--------|----------------------------------
//	0-7    | SizeD | uint64 | decompressed size hint
//	8-11   | Zero1 | int32  | reserved, 0
//
// # Format Selector
//
// ContainerHeader.Code2 equal to SelectorPayload64K (65536) or SelectorPayload1M
// (1048576) marks a payload container; any other value marks a pack. The check is an
// exact match on the two values, see ContainerHeader.Kind.
//
// # Usage
//
//	hdr, err := section.ReadContainerHeader(f)
//	if err != nil {
//	    return err
//	}
//	if hdr.Kind() == format.KindPack {
//	    pack, err := section.ReadPackHeader(f)
//	    ...
//	}
//
// The Bytes methods produce the on-disk form of each header and are mainly used to
// build synthetic containers in tests.
package section
