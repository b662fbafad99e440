package compress

import (
	"io"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/ngg7/format"
)

type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 stream codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (c S2Codec) Type() format.CompressionType { return format.CompressionS2 }

func (c S2Codec) Extension() string { return ".s2" }

// NewWriter creates an S2 stream writer. Close flushes the final block.
func (c S2Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w, s2.WriterConcurrency(1)), nil
}

// NewReader creates an S2 stream reader.
func (c S2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}
