package extract

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/arloliu/ngg7/errs"
	"github.com/arloliu/ngg7/section"
)

// PayloadExtension is appended to the container name to name the extracted payload.
const PayloadExtension = ".lzma"

// payloadFileName derives the payload output name from the container name.
func payloadFileName(name string) string {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		base = "payload"
	}

	return base + PayloadExtension
}

// extractPayload reads the payload header and streams the rest of src into
// <base(name)>.lzma without the trailing terminator byte.
func (x *Extractor) extractPayload(src io.Reader, name string, report *Report) error {
	ph, err := section.ReadPayloadHeader(src)
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}

	x.logger.Info("payload header", "decompressed_size", ph.SizeD, "zero1", ph.Zero1)

	fileName, err := SanitizeName(payloadFileName(name))
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSectionCreate, err)
	}

	out, err := x.createOutput(fileName)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrSectionCreate, fileName, err)
	}

	pc, copyErr := copyPayload(out, src)
	closeErr := out.Close()

	report.Payload = &PayloadResult{
		Header:     ph,
		Path:       out.path,
		Size:       pc.written,
		Terminator: pc.terminator,
		Terminated: pc.terminated,
		Checksum:   out.Sum64(),
	}

	if copyErr != nil {
		return fmt.Errorf("payload of %s: %w", name, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("payload of %s: %w", name, closeErr)
	}

	switch {
	case !pc.terminated:
		x.logger.Warn("payload is empty, no terminator found", "source", name)
	case pc.terminator != 0:
		x.logger.Warn("unexpected terminator value", "source", name, "terminator", pc.terminator)
	}

	x.logger.Info("payload extracted",
		"path", out.path,
		"bytes", pc.written,
		"xxhash", fmt.Sprintf("%016x", report.Payload.Checksum),
	)

	return nil
}
