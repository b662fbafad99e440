package extract

import (
	"fmt"
	"io"

	"github.com/arloliu/ngg7/errs"
	"github.com/arloliu/ngg7/section"
)

// maxSectionPrealloc caps the result slice preallocation; Num comes from the file.
const maxSectionPrealloc = 256

// extractPack reads the pack header and the section table that follows it and writes
// one file per section. The first failing section aborts the rest.
func (x *Extractor) extractPack(src io.ReadSeeker, report *Report) error {
	ph, err := section.ReadPackHeader(src)
	if err != nil {
		return fmt.Errorf("read pack: %w", err)
	}
	report.Pack = &ph

	x.logger.Info("pack header",
		"info", ph.InfoString(),
		"sections", ph.Num,
		"size_hint", report.Header.Code2,
		"code1", ph.Code1,
	)

	srcSize := int64(-1)
	if x.boundsCheck {
		if srcSize, err = sourceSize(src); err != nil {
			return fmt.Errorf("%w: size of %s: %w", errs.ErrCopy, report.Source, err)
		}
	}

	report.Sections = make([]SectionResult, 0, min(ph.Num, maxSectionPrealloc))

	for i := range ph.Num {
		sh, err := section.ReadSectionHeader(src)
		if err != nil {
			return fmt.Errorf("read section %d of %d: %w", i+1, ph.Num, err)
		}

		x.logger.Info("section",
			"name", sh.SectionName(),
			"offset", sh.Offset,
			"size", sh.Size,
		)

		res, err := x.extractSection(src, sh, srcSize)
		if res != nil {
			report.Sections = append(report.Sections, *res)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// extractSection writes one section into its own file. The file is closed before
// returning, also on failure. A result is returned whenever the file was created.
func (x *Extractor) extractSection(src io.ReadSeeker, sh section.SectionHeader, srcSize int64) (*SectionResult, error) {
	name := sh.SectionName()

	if srcSize >= 0 && (sh.Offset < 0 || sh.Size < 0 || sh.End() > srcSize) {
		return nil, fmt.Errorf("%w: section %q: range [%d, %d) outside source of %d bytes",
			errs.ErrSectionOutOfBounds, name, sh.Offset, sh.End(), srcSize)
	}

	fileName, err := SanitizeName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSectionCreate, err)
	}
	if fileName != name {
		x.logger.Warn("section name sanitized", "name", name, "file", fileName)
	}

	out, err := x.createOutput(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: section %q: %w", errs.ErrSectionCreate, name, err)
	}

	n, copyErr := CopyRange(src, out, int64(sh.Offset), int64(sh.Size))
	closeErr := out.Close()

	res := &SectionResult{
		Header:   sh,
		Name:     name,
		Path:     out.path,
		Size:     n,
		Checksum: out.Sum64(),
	}

	if copyErr != nil {
		return res, fmt.Errorf("section %q: %w", name, copyErr)
	}
	if closeErr != nil {
		return res, fmt.Errorf("section %q: %w", name, closeErr)
	}

	x.logger.Debug("section extracted", "name", name, "path", res.Path, "bytes", n, "xxhash", fmt.Sprintf("%016x", res.Checksum))

	return res, nil
}
