package extract

import (
	"fmt"
	"io"

	"github.com/arloliu/ngg7/errs"
	"github.com/arloliu/ngg7/internal/pool"
)

// payloadCopy describes the result of copyPayload.
type payloadCopy struct {
	written    int64 // bytes written, terminator excluded
	terminator byte  // the dropped byte, valid when terminated is true
	terminated bool  // false only for an empty stream
}

// copyPayload streams src to dst in ChunkSize reads and drops the final byte of the
// stream.
//
// Every payload ends with one terminator byte that is not part of the compressed data.
// The last byte of each chunk is held back in front of the next read instead of being
// written, so the byte that is still held when src reports EOF is the terminator no
// matter how the reads were split. A payload whose length is an exact multiple of
// ChunkSize therefore loses the last byte of its last full chunk.
func copyPayload(dst io.Writer, src io.Reader) (payloadCopy, error) {
	var res payloadCopy

	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)
	buf := bb.B // buf[0] holds the pending byte, reads land in buf[1:]

	for {
		n, rerr := src.Read(buf[1 : 1+ChunkSize])
		if n > 0 {
			chunk := buf[1 : 1+n]
			if res.terminated {
				chunk = buf[:1+n]
			}

			last := len(chunk) - 1
			if last > 0 {
				if _, werr := dst.Write(chunk[:last]); werr != nil {
					return res, fmt.Errorf("%w: write: %w", errs.ErrCopy, werr)
				}
				res.written += int64(last)
			}

			buf[0] = chunk[last]
			res.terminator = buf[0]
			res.terminated = true
		}

		if rerr == io.EOF {
			return res, nil
		}
		if rerr != nil {
			return res, fmt.Errorf("%w: read: %w", errs.ErrCopy, rerr)
		}
	}
}
