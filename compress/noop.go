package compress

import (
	"io"

	"github.com/arloliu/ngg7/format"
)

// NoOpCodec writes outputs verbatim.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a codec that passes bytes through unchanged.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (c NoOpCodec) Type() format.CompressionType { return format.CompressionNone }

func (c NoOpCodec) Extension() string { return "" }

// NewWriter returns w itself behind a Close that does nothing.
func (c NoOpCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

// NewReader returns r itself behind a Close that does nothing.
func (c NoOpCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
