package extract

import (
	"github.com/arloliu/ngg7/format"
	"github.com/arloliu/ngg7/section"
)

// Report describes one extraction.
type Report struct {
	// Source is the name the container was extracted under.
	Source string
	// Header is the decoded container header.
	Header section.ContainerHeader
	// Kind is the extraction path chosen from Header.
	Kind format.ContainerKind

	// Pack is set for pack containers once the pack header was read.
	Pack *section.PackHeader
	// Sections lists the files written for a pack, in table order.
	Sections []SectionResult

	// Payload is set for payload containers once the output was created.
	Payload *PayloadResult
}

// SectionResult describes one extracted section.
type SectionResult struct {
	Header section.SectionHeader
	// Name is the section name as stored in the container.
	Name string
	// Path is the output file, including the output directory and codec extension.
	Path string
	// Size is the number of section bytes copied.
	Size int64
	// Checksum is the xxHash64 of the section bytes, 0 when disabled.
	Checksum uint64
}

// PayloadResult describes the extracted payload of a payload container.
type PayloadResult struct {
	Header section.PayloadHeader
	Path   string
	// Size is the number of payload bytes written, terminator excluded.
	Size int64
	// Terminator is the dropped final byte; only meaningful when Terminated is true.
	Terminator byte
	// Terminated is false when the payload stream was empty.
	Terminated bool
	// Checksum is the xxHash64 of the payload bytes, 0 when disabled.
	Checksum uint64
	// SourceRemoved reports whether ExtractFile deleted the container.
	SourceRemoved bool
}

// Outputs returns the paths of all files written, in order.
func (r *Report) Outputs() []string {
	if r == nil {
		return nil
	}

	paths := make([]string, 0, len(r.Sections)+1)
	for _, s := range r.Sections {
		paths = append(paths, s.Path)
	}
	if r.Payload != nil {
		paths = append(paths, r.Payload.Path)
	}

	return paths
}

// BytesWritten returns the number of raw bytes extracted.
func (r *Report) BytesWritten() int64 {
	if r == nil {
		return 0
	}

	var total int64
	for _, s := range r.Sections {
		total += s.Size
	}
	if r.Payload != nil {
		total += r.Payload.Size
	}

	return total
}
