package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arloliu/ngg7/errs"
	"github.com/arloliu/ngg7/internal/hash"
)

// outputFile is one destination file, optionally wrapped by the output codec.
// Raw bytes are hashed before they reach the codec.
type outputFile struct {
	path   string
	file   *os.File
	zw     io.WriteCloser
	digest *hash.Digest
	w      io.Writer
}

func (x *Extractor) createOutput(name string) (*outputFile, error) {
	if err := os.MkdirAll(x.outputDir, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(x.outputDir, name+x.codec.Extension())

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}

	zw, err := x.codec.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	out := &outputFile{path: path, file: f, zw: zw, w: zw}
	if x.checksums {
		out.digest = hash.NewDigest()
		out.w = io.MultiWriter(zw, out.digest)
	}

	return out, nil
}

func (o *outputFile) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

// Close flushes the codec and closes the file. The file is closed even if the flush fails.
func (o *outputFile) Close() error {
	err := o.zw.Close()
	if cerr := o.file.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return fmt.Errorf("%w: close %s: %w", errs.ErrCopy, o.path, err)
	}

	return nil
}

// Sum64 returns the xxHash64 of the raw bytes written, 0 when checksums are disabled.
func (o *outputFile) Sum64() uint64 {
	if o.digest == nil {
		return 0
	}

	return o.digest.Sum64()
}
