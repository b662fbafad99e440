package extract

import (
	"fmt"
	"io"

	"github.com/arloliu/ngg7/format"
	"github.com/arloliu/ngg7/section"
)

// Info is the decoded header structure of a container.
type Info struct {
	Header section.ContainerHeader
	Kind   format.ContainerKind

	Pack     *section.PackHeader
	Sections []section.SectionHeader

	Payload *section.PayloadHeader
	// PayloadSize is the number of bytes extraction would write for a payload
	// container: everything after the payload header except the terminator.
	PayloadSize int64
	// SourceSize is the total length of the container.
	SourceSize int64
}

// Inspect decodes every header of the container at the current position of src
// without writing anything. The cursor of src is left after the last header read.
func Inspect(src io.ReadSeeker) (*Info, error) {
	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	total, err := sourceSize(src)
	if err != nil {
		return nil, err
	}

	hdr, err := section.ReadContainerHeader(src)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Header:     hdr,
		Kind:       hdr.Kind(),
		SourceSize: total,
	}

	if info.Kind == format.KindPayload {
		ph, err := section.ReadPayloadHeader(src)
		if err != nil {
			return info, err
		}
		info.Payload = &ph

		consumed := int64(section.ContainerHeaderSize + section.PayloadHeaderSize)
		info.PayloadSize = max(total-start-consumed-1, 0)

		return info, nil
	}

	ph, err := section.ReadPackHeader(src)
	if err != nil {
		return info, err
	}
	info.Pack = &ph

	info.Sections = make([]section.SectionHeader, 0, min(ph.Num, maxSectionPrealloc))
	for i := range ph.Num {
		sh, err := section.ReadSectionHeader(src)
		if err != nil {
			return info, fmt.Errorf("read section %d of %d: %w", i+1, ph.Num, err)
		}
		info.Sections = append(info.Sections, sh)
	}

	return info, nil
}
