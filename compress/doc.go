// Package compress provides optional streaming codecs for extracted outputs.
//
// Extraction writes section images and payloads verbatim by default. When an output
// compression is configured, every output file is wrapped in a compression stream
// and the codec's extension is appended to its name:
//
//	Type             | Extension | Library
//	-----------------|-----------|-------------------------------
//	CompressionNone  | (none)    | -
//	CompressionZstd  | .zst      | github.com/klauspost/compress/zstd
//	CompressionS2    | .s2       | github.com/klauspost/compress/s2
//	CompressionLZ4   | .lz4      | github.com/pierrec/lz4/v4
//
// The payload of an NGG7 payload container is LZMA data for an external decompressor.
// Wrapping it in another codec is only useful for archival; the wrapped stream must be
// unwrapped with NewReader before it is handed to an LZMA tool.
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	zw, err := codec.NewWriter(file)
//	if err != nil {
//	    return err
//	}
//	if _, err := io.Copy(zw, src); err != nil {
//	    return err
//	}
//	return zw.Close() // flushes, file stays open
//
// # Thread Safety
//
// Codec values are stateless and safe to share. Writers and readers returned by them
// are not safe for concurrent use.
package compress
