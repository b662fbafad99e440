// Package ngg7 extracts NGG7 firmware containers.
//
// An NGG7 container is either a pack of named sections or a single LZMA payload.
// The format selector in the 20-byte container header decides which; this package
// detects it and writes the sections, or the payload, to disk.
//
// # Basic Usage
//
// Extracting a container into a directory:
//
//	import "github.com/arloliu/ngg7"
//
//	report, err := ngg7.ExtractFile("UPDATE.NGG",
//	    extract.WithOutputDir("unpacked"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, path := range report.Outputs() {
//	    fmt.Println(path)
//	}
//
// Listing the section table without writing anything:
//
//	info, _ := ngg7.InspectFile("UPDATE.NGG")
//	for _, s := range info.Sections {
//	    fmt.Printf("%-16s %8d %8d\n", s.SectionName(), s.Offset, s.Size)
//	}
//
// A payload container is replaced by <name>.lzma, which is left compressed. Feed it to
// an LZMA-alone decoder; the decompressed size is also recorded in the LZMA header.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the extract package.
// The section package decodes the raw headers; compress holds the optional output
// codecs.
package ngg7

import (
	"fmt"
	"os"

	"github.com/arloliu/ngg7/errs"
	"github.com/arloliu/ngg7/extract"
)

// ExtractFile extracts the container at path.
//
// Parameters:
//   - path: Container file
//   - opts: Optional configuration (see extract.Option)
//
// Returns:
//   - *extract.Report: What was written, also on failure once the header was read
//   - error: Extraction error; see the errs package for the taxonomy
//
// Example:
//
//	report, err := ngg7.ExtractFile("fw.bin",
//	    extract.WithOutputDir("out"),
//	    extract.WithKeepSource(true),
//	)
func ExtractFile(path string, opts ...extract.Option) (*extract.Report, error) {
	x, err := extract.New(opts...)
	if err != nil {
		return nil, err
	}

	return x.ExtractFile(path)
}

// InspectFile decodes the headers of the container at path without extracting it.
func InspectFile(path string) (*extract.Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInputOpen, err)
	}
	defer f.Close()

	return extract.Inspect(f)
}
