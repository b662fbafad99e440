package extract

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/ngg7/errs"
	"github.com/arloliu/ngg7/internal/pool"
)

// ChunkSize is the number of bytes moved per read when copying out of a container.
const ChunkSize = pool.ChunkBufferSize

// CopyRange copies exactly size bytes starting at the absolute offset of src into dst.
//
// The read cursor of src is restored to where it was before the call on every return
// path, so the caller can keep walking a header table while sections are copied.
// Bytes are moved in ChunkSize reads through a pooled buffer; dst receives them at
// its current position. Neither stream is closed.
//
// Parameters:
//   - src: Seekable source, usually the open container file
//   - dst: Destination writer
//   - offset: Absolute start offset in src
//   - size: Number of bytes to copy
//
// Returns:
//   - int64: Number of bytes written to dst, also on failure
//   - error: ErrInvalidRange for a negative offset or size, ErrCopy wrapping
//     io.ErrUnexpectedEOF when src ends early, ErrCopy for read, write or seek failures
func CopyRange(src io.ReadSeeker, dst io.Writer, offset, size int64) (copied int64, err error) {
	if offset < 0 || size < 0 {
		return 0, fmt.Errorf("%w: offset %d, size %d", errs.ErrInvalidRange, offset, size)
	}

	pos, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("%w: save position: %w", errs.ErrCopy, err)
	}
	defer func() {
		if _, serr := src.Seek(pos, io.SeekStart); serr != nil && err == nil {
			err = fmt.Errorf("%w: restore position: %w", errs.ErrCopy, serr)
		}
	}()

	if _, err = src.Seek(offset, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: seek to %d: %w", errs.ErrCopy, offset, err)
	}

	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)
	buf := bb.B[:ChunkSize]

	for copied < size {
		want := min(size-copied, int64(len(buf)))

		n, rerr := io.ReadFull(src, buf[:want])
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return copied, fmt.Errorf("%w: write: %w", errs.ErrCopy, werr)
			}
			copied += int64(n)
		}

		if rerr != nil {
			if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
				return copied, fmt.Errorf("%w: got %d of %d bytes at offset %d: %w",
					errs.ErrCopy, copied, size, offset, io.ErrUnexpectedEOF)
			}

			return copied, fmt.Errorf("%w: read: %w", errs.ErrCopy, rerr)
		}
	}

	return copied, nil
}

// sourceSize returns the total length of src without moving its cursor.
func sourceSize(src io.Seeker) (int64, error) {
	pos, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	end, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}

	if _, err := src.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}

	return end, nil
}
