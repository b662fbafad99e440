package section

import (
	"bytes"
	"testing"

	"github.com/arloliu/ngg7/errs"
	"github.com/stretchr/testify/require"
)

func TestPayloadHeader_Parse(t *testing.T) {
	data := []byte{
		0x64, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}

	h := &PayloadHeader{}
	require.NoError(t, h.Parse(data))
	require.Equal(t, uint64(100), h.SizeD)
	require.Equal(t, int32(0), h.Zero1)
	require.Equal(t, data, h.Bytes())

	require.ErrorIs(t, h.Parse(data[:8]), errs.ErrInvalidHeaderSize)
}

func TestParsePayloadHeader(t *testing.T) {
	original := PayloadHeader{SizeD: 1 << 40}

	parsed, err := ParsePayloadHeader(append(original.Bytes(), 0x5d))
	require.NoError(t, err)
	require.Equal(t, original, parsed)

	_, err = ParsePayloadHeader(original.Bytes()[:PayloadHeaderSize-1])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestReadPayloadHeader(t *testing.T) {
	original := PayloadHeader{SizeD: 4096}

	parsed, err := ReadPayloadHeader(bytes.NewReader(original.Bytes()))
	require.NoError(t, err)
	require.Equal(t, original, parsed)

	_, err = ReadPayloadHeader(bytes.NewReader([]byte{1, 2, 3}))
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}
