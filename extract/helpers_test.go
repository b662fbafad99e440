package extract

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/ngg7/section"
	"github.com/stretchr/testify/require"
)

type testSection struct {
	name string
	data []byte
}

func testContainerHeader(code2 int32) section.ContainerHeader {
	h := section.ContainerHeader{
		Code1:  0x382e,
		Const1: 0x0f00,
		Const2: 0x040507de,
		Code2:  code2,
	}
	copy(h.Magic[:], section.Magic)
	copy(h.Version[:], "2.00")

	return h
}

// sectionDataOffset returns where section data starts for a pack with n sections.
func sectionDataOffset(n int) int {
	return section.ContainerHeaderSize + section.PackHeaderSize + n*section.SectionHeaderSize
}

// buildPack lays out the headers and the section table, followed by the section
// data in table order.
func buildPack(code2 int32, sections ...testSection) []byte {
	hdr := testContainerHeader(code2)
	ph := section.PackHeader{Code1: 1, Num: uint32(len(sections))}
	copy(ph.Info[:], "TESTPACK")

	buf := append(hdr.Bytes(), ph.Bytes()...)

	offset := sectionDataOffset(len(sections))
	for _, s := range sections {
		sh := section.NewSectionHeader(s.name, int32(offset), int32(len(s.data)))
		buf = append(buf, sh.Bytes()...)
		offset += len(s.data)
	}

	for _, s := range sections {
		buf = append(buf, s.data...)
	}

	return buf
}

// buildPackWithHeaders writes the given section headers verbatim, then tail.
func buildPackWithHeaders(headers []section.SectionHeader, tail []byte) []byte {
	hdr := testContainerHeader(3)
	ph := section.PackHeader{Num: uint32(len(headers))}
	copy(ph.Info[:], "RAWTABLE")

	buf := append(hdr.Bytes(), ph.Bytes()...)
	for _, sh := range headers {
		buf = append(buf, sh.Bytes()...)
	}

	return append(buf, tail...)
}

func buildPayload(code2 int32, sizeD uint64, body []byte) []byte {
	hdr := testContainerHeader(code2)
	ph := section.PayloadHeader{SizeD: sizeD}

	buf := append(hdr.Bytes(), ph.Bytes()...)

	return append(buf, body...)
}

func randomBytes(seed int64, n int) []byte {
	b := make([]byte, n)
	rng := rand.New(rand.NewSource(seed))
	_, _ = rng.Read(b)

	return b
}

func writeContainer(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func newTestExtractor(t *testing.T, outDir string, opts ...Option) *Extractor {
	t.Helper()

	x, err := New(append([]Option{WithOutputDir(outDir)}, opts...)...)
	require.NoError(t, err)

	return x
}

func readOutput(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return data
}
