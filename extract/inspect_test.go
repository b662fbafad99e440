package extract

import (
	"bytes"
	"testing"

	"github.com/arloliu/ngg7/errs"
	"github.com/arloliu/ngg7/format"
	"github.com/arloliu/ngg7/section"
	"github.com/stretchr/testify/require"
)

func TestInspect_Pack(t *testing.T) {
	data := buildPack(7,
		testSection{"a.bin", []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		testSection{"b.bin", []byte{0xCA, 0xFE}},
	)

	info, err := Inspect(bytes.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, format.KindPack, info.Kind)
	require.Equal(t, int32(7), info.Header.Code2)
	require.Equal(t, int64(len(data)), info.SourceSize)
	require.NotNil(t, info.Pack)
	require.Nil(t, info.Payload)
	require.Len(t, info.Sections, 2)
	require.Equal(t, "a.bin", info.Sections[0].SectionName())
	require.Equal(t, int32(4), info.Sections[0].Size)
	require.Equal(t, "b.bin", info.Sections[1].SectionName())
	require.Equal(t, int32(sectionDataOffset(2)+4), info.Sections[1].Offset)
}

func TestInspect_Payload(t *testing.T) {
	body := randomBytes(5, 5000)
	data := buildPayload(1048576, 12345, body)

	info, err := Inspect(bytes.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, format.KindPayload, info.Kind)
	require.Equal(t, uint64(12345), info.Payload.SizeD)
	require.Equal(t, int64(4999), info.PayloadSize)
	require.Nil(t, info.Pack)
}

func TestInspect_EmptyPayload(t *testing.T) {
	info, err := Inspect(bytes.NewReader(buildPayload(65536, 0, nil)))
	require.NoError(t, err)
	require.Zero(t, info.PayloadSize)
}

func TestInspect_Truncated(t *testing.T) {
	hdr := testContainerHeader(3)
	ph := section.PackHeader{Num: 2}
	data := append(hdr.Bytes(), ph.Bytes()...)

	info, err := Inspect(bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
	require.NotNil(t, info)
	require.Empty(t, info.Sections)

	_, err = Inspect(bytes.NewReader(nil))
	require.ErrorIs(t, err, errs.ErrTruncatedHeader)
}
