package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"
	"testing/iotest"

	"github.com/arloliu/ngg7/errs"
	"github.com/stretchr/testify/require"
)

func TestCopyPayload_DropsFinalByte(t *testing.T) {
	lengths := []int{
		1,
		2,
		ChunkSize - 1,
		ChunkSize,
		ChunkSize + 1,
		2 * ChunkSize,
		2*ChunkSize + 1,
		3*ChunkSize + 100,
	}

	readers := map[string]func(io.Reader) io.Reader{
		"plain":    func(r io.Reader) io.Reader { return r },
		"one byte": iotest.OneByteReader,
		"half":     iotest.HalfReader,
		"data+EOF": iotest.DataErrReader,
	}

	for _, n := range lengths {
		for rname, wrap := range readers {
			t.Run(fmt.Sprintf("%d/%s", n, rname), func(t *testing.T) {
				body := randomBytes(int64(n), n)
				body[n-1] = 0x00

				var dst bytes.Buffer
				pc, err := copyPayload(&dst, wrap(bytes.NewReader(body)))

				require.NoError(t, err)
				require.True(t, pc.terminated)
				require.Equal(t, byte(0x00), pc.terminator)
				require.Equal(t, int64(n-1), pc.written)
				require.Equal(t, body[:n-1], dst.Bytes()[:n-1])
				require.Equal(t, n-1, dst.Len())
			})
		}
	}
}

func TestCopyPayload_ChunkMultiples(t *testing.T) {
	// k full chunks plus r trailing bytes: output is always one byte shorter than the
	// stream, the exact-multiple case included.
	for k := 0; k <= 3; k++ {
		for _, r := range []int{0, 1, 700, ChunkSize - 1} {
			n := k*ChunkSize + r
			if n == 0 {
				continue
			}

			t.Run(fmt.Sprintf("k=%d,r=%d", k, r), func(t *testing.T) {
				body := randomBytes(int64(n)+99, n)

				var dst bytes.Buffer
				pc, err := copyPayload(&dst, bytes.NewReader(body))

				require.NoError(t, err)
				require.Equal(t, int64(n-1), pc.written)
				require.Equal(t, body[:n-1], dst.Bytes())
				require.Equal(t, body[n-1], pc.terminator)
			})
		}
	}
}

func TestCopyPayload_Empty(t *testing.T) {
	var dst bytes.Buffer
	pc, err := copyPayload(&dst, bytes.NewReader(nil))

	require.NoError(t, err)
	require.False(t, pc.terminated)
	require.Zero(t, pc.written)
	require.Zero(t, dst.Len())
}

func TestCopyPayload_NonZeroTerminator(t *testing.T) {
	var dst bytes.Buffer
	pc, err := copyPayload(&dst, bytes.NewReader([]byte{1, 2, 3, 0xAB}))

	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, dst.Bytes())
	require.Equal(t, byte(0xAB), pc.terminator)
}

func TestCopyPayload_Errors(t *testing.T) {
	t.Run("Read error", func(t *testing.T) {
		src := io.MultiReader(bytes.NewReader(make([]byte, 3000)), iotest.ErrReader(errors.New("bad sector")))

		var dst bytes.Buffer
		pc, err := copyPayload(&dst, src)

		require.ErrorIs(t, err, errs.ErrCopy)
		require.Contains(t, err.Error(), "bad sector")
		require.Equal(t, int64(2999), pc.written)
	})

	t.Run("Write error", func(t *testing.T) {
		_, err := copyPayload(failingWriter{}, bytes.NewReader(make([]byte, 10)))

		require.ErrorIs(t, err, errs.ErrCopy)
		require.Contains(t, err.Error(), "disk full")
	})
}
