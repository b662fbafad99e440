package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/ngg7/format"
)

// ZstdCodec wraps outputs in a Zstandard stream.
//
// Section images and payloads are usually already compressed or dense binary, so
// the gain is modest; it is mainly useful for archiving large unpacked firmware
// trees where some sections are padding or plain data.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

func (c ZstdCodec) Type() format.CompressionType { return format.CompressionZstd }

func (c ZstdCodec) Extension() string { return ".zst" }

// NewWriter creates a single-threaded encoder writing into w.
func (c ZstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	return encoder, nil
}

// NewReader creates a single-threaded decoder reading from r.
func (c ZstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return decoder.IOReadCloser(), nil
}
