package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/ngg7/format"
)

type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 frame codec.
//
// Returns:
//   - LZ4Codec: New LZ4 codec instance
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

func (c LZ4Codec) Type() format.CompressionType { return format.CompressionLZ4 }

func (c LZ4Codec) Extension() string { return ".lz4" }

// NewWriter creates an LZ4 frame writer. Close writes the end mark.
func (c LZ4Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	zw := lz4.NewWriter(w)
	if err := zw.Apply(lz4.ConcurrencyOption(1)); err != nil {
		return nil, err
	}

	return zw, nil
}

// NewReader creates an LZ4 frame reader.
func (c LZ4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}
