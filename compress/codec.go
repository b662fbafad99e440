package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/ngg7/errs"
	"github.com/arloliu/ngg7/format"
)

// Codec wraps extracted outputs in an optional compression stream.
//
// Extraction always hashes and counts the raw bytes; the codec only changes what
// lands on disk. The default NoOp codec writes outputs verbatim, which is what a
// downstream LZMA tool expects for payload containers.
type Codec interface {
	// Type returns the compression type implemented by the codec.
	Type() format.CompressionType

	// Extension returns the suffix appended to output file names, "" for NoOp.
	Extension() string

	// NewWriter returns a writer that compresses into w. Close flushes the stream
	// but never closes w.
	NewWriter(w io.Writer) (io.WriteCloser, error)

	// NewReader returns a reader that decompresses r. Close never closes r.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrUnsupportedCompression for an unknown type
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}
