package extract

import (
	"errors"
	"log/slog"
	"os"

	"github.com/arloliu/ngg7/compress"
	"github.com/arloliu/ngg7/format"
	"github.com/arloliu/ngg7/internal/options"
)

// Option represents a functional option for configuring an Extractor.
type Option = options.Option[*Extractor]

// WithOutputDir sets the directory that receives extracted files.
// It is created on demand. The default is the current directory.
func WithOutputDir(dir string) Option {
	return options.New(func(x *Extractor) error {
		if dir == "" {
			return errors.New("output directory must not be empty")
		}
		x.outputDir = dir

		return nil
	})
}

// WithLogger sets the logger for progress and diagnostics.
// A nil logger discards everything, which is also the default.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(x *Extractor) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		x.logger = logger
	})
}

// WithOutputCompression wraps every output in the given compression stream and
// appends the codec's extension to output names. The default is CompressionNone.
func WithOutputCompression(ct format.CompressionType) Option {
	return options.New(func(x *Extractor) error {
		codec, err := compress.CreateCodec(ct)
		if err != nil {
			return err
		}
		x.codec = codec

		return nil
	})
}

// WithStrictMagic rejects containers whose magic is not "NGG7" when set to true.
// By default the magic is only reported.
func WithStrictMagic(strict bool) Option {
	return options.NoError(func(x *Extractor) {
		x.strictMagic = strict
	})
}

// WithBoundsCheck controls whether section ranges are checked against the source
// size before anything is written. Enabled by default. When disabled, a section that
// runs past the end of the source fails during the copy and leaves a partial file.
func WithBoundsCheck(enabled bool) Option {
	return options.NoError(func(x *Extractor) {
		x.boundsCheck = enabled
	})
}

// WithKeepSource keeps the payload container on disk after ExtractFile.
// By default it is removed once the payload has been written.
func WithKeepSource(keep bool) Option {
	return options.NoError(func(x *Extractor) {
		x.keepSource = keep
	})
}

// WithChecksums enables xxHash64 checksums of every output. Enabled by default.
func WithChecksums(enabled bool) Option {
	return options.NoError(func(x *Extractor) {
		x.checksums = enabled
	})
}

func defaultExtractor() *Extractor {
	return &Extractor{
		outputDir:   ".",
		logger:      slog.New(slog.DiscardHandler),
		codec:       compress.NewNoOpCodec(),
		boundsCheck: true,
		checksums:   true,
		remove:      os.Remove,
	}
}
