package section

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/ngg7/errs"
)

// readHeader reads exactly size bytes for the named header.
// A short read is reported as errs.ErrTruncatedHeader.
func readHeader(r io.Reader, size int, name string) ([]byte, error) {
	buf := make([]byte, size)

	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", errs.ErrTruncatedHeader, name, size, n)
		}

		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return buf, nil
}

// cString returns the bytes of b up to the first NUL.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}

	return string(b)
}
