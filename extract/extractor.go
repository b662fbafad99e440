package extract

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arloliu/ngg7/compress"
	"github.com/arloliu/ngg7/errs"
	"github.com/arloliu/ngg7/format"
	"github.com/arloliu/ngg7/internal/options"
	"github.com/arloliu/ngg7/section"
)

// Extractor unpacks NGG7 containers.
//
// Note: An Extractor holds only configuration and can be reused for many containers,
// but a single Extract call is synchronous and must not share its source with other
// goroutines.
type Extractor struct {
	outputDir   string
	logger      *slog.Logger
	codec       compress.Codec
	strictMagic bool
	boundsCheck bool
	keepSource  bool
	checksums   bool
	remove      func(name string) error
}

// New creates an Extractor.
//
// Parameters:
//   - opts: Optional configuration (output directory, logger, output compression, ...)
//
// Returns:
//   - *Extractor: Configured extractor
//   - error: Configuration error if an option is invalid
func New(opts ...Option) (*Extractor, error) {
	x := defaultExtractor()
	if err := options.Apply(x, opts...); err != nil {
		return nil, err
	}

	return x, nil
}

// OutputDir returns the directory that receives extracted files.
func (x *Extractor) OutputDir() string {
	return x.outputDir
}

// Extract reads the container header from the current position of src, decides the
// container kind once and runs the pack or payload path.
//
// name identifies the container in diagnostics and, for payload containers, gives the
// output its name: <base(name)>.lzma inside the output directory.
//
// Extraction is not atomic. On failure the returned Report is non-nil as soon as the
// container header was read and lists every output written before the failure;
// those files stay on disk.
func (x *Extractor) Extract(src io.ReadSeeker, name string) (*Report, error) {
	hdr, err := section.ReadContainerHeader(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	x.logger.Info("container header",
		"source", name,
		"magic", hdr.MagicString(),
		"version", hdr.VersionString(),
		"code1", hdr.Code1,
		"code2", hdr.Code2,
		"const1", hdr.Const1,
		"const2", hdr.Const2,
	)

	if !hdr.HasValidMagic() {
		if x.strictMagic {
			return nil, fmt.Errorf("%w: %q in %s", errs.ErrInvalidMagic, hdr.Magic[:], name)
		}
		x.logger.Warn("unexpected container magic", "source", name, "magic", fmt.Sprintf("%q", hdr.Magic[:]))
	}

	report := &Report{
		Source: name,
		Header: hdr,
		Kind:   hdr.Kind(),
	}

	switch report.Kind {
	case format.KindPayload:
		err = x.extractPayload(src, name, report)
	default:
		err = x.extractPack(src, report)
	}

	return report, err
}

// ExtractFile opens the container at path and extracts it.
//
// After a successful payload extraction the container file is removed unless
// WithKeepSource(true) was given. Removal is best effort: a failure is logged as
// ErrDelete and does not change the result.
func (x *Extractor) ExtractFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInputOpen, err)
	}
	defer f.Close()

	report, err := x.Extract(f, path)
	if err != nil {
		return report, err
	}

	if report.Kind == format.KindPayload && !x.keepSource {
		x.removeSource(path, report)
	}

	return report, nil
}

// removeSource deletes the payload container while it is still open.
func (x *Extractor) removeSource(path string, report *Report) {
	if err := x.remove(path); err != nil {
		x.logger.Warn("container not removed",
			"source", path,
			"error", fmt.Errorf("%w: %w", errs.ErrDelete, err),
		)

		return
	}

	report.Payload.SourceRemoved = true
	x.logger.Debug("container removed", "source", path)
}
