package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ngg7/section"
)

func writeContainer(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func packContainer() []byte {
	hdr := section.ContainerHeader{Code2: 3}
	copy(hdr.Magic[:], section.Magic)
	copy(hdr.Version[:], "2.00")
	ph := section.PackHeader{Num: 1}
	copy(ph.Info[:], "FIRM")
	sh := section.NewSectionHeader("a.bin", 80, 4)

	data := append(hdr.Bytes(), ph.Bytes()...)
	data = append(data, sh.Bytes()...)

	return append(data, 0xDE, 0xAD, 0xBE, 0xEF)
}

func payloadContainer() []byte {
	hdr := section.ContainerHeader{Code2: 65536}
	copy(hdr.Magic[:], section.Magic)
	ph := section.PayloadHeader{SizeD: 100}

	data := append(hdr.Bytes(), ph.Bytes()...)

	return append(data, 0x5d, 0x00, 0x00, 0x00)
}

func TestRun_ExtractPack(t *testing.T) {
	dir := t.TempDir()
	src := writeContainer(t, dir, "fw.ngg", packContainer())
	out := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", out, src}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	require.Contains(t, stdout.String(), filepath.Join(out, "a.bin")+"\t4\t")

	got, err := os.ReadFile(filepath.Join(out, "a.bin"))
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, got)
}

func TestRun_ExtractPayload(t *testing.T) {
	dir := t.TempDir()
	src := writeContainer(t, dir, "fw.bin", payloadContainer())

	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", dir, src}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	require.NoFileExists(t, src)

	got, err := os.ReadFile(filepath.Join(dir, "fw.bin.lzma"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x5d, 0x00, 0x00}, got)
}

func TestRun_KeepAndCompress(t *testing.T) {
	dir := t.TempDir()
	src := writeContainer(t, dir, "fw.bin", payloadContainer())

	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", dir, "-keep", "-compress", "zstd", src}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	require.FileExists(t, src)
	require.FileExists(t, filepath.Join(dir, "fw.bin.lzma.zst"))
}

func TestRun_Inspect(t *testing.T) {
	dir := t.TempDir()
	src := writeContainer(t, dir, "fw.ngg", packContainer())

	var stdout, stderr bytes.Buffer
	code := run([]string{"-inspect", "-o", filepath.Join(dir, "out"), src}, &stdout, &stderr)

	require.Equal(t, exitOK, code, stderr.String())
	require.Contains(t, stdout.String(), "Header: NGG7 v.2.00")
	require.Contains(t, stdout.String(), "Pack: FIRM, sections: 1")
	require.Contains(t, stdout.String(), "a.bin")
	require.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestRun_Failures(t *testing.T) {
	t.Run("Missing argument", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Equal(t, exitUsage, run(nil, &stdout, &stderr))
		require.Contains(t, stderr.String(), "usage")
	})

	t.Run("Unknown flag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Equal(t, exitUsage, run([]string{"-nope", "x"}, &stdout, &stderr))
	})

	t.Run("Unknown compression", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Equal(t, exitUsage, run([]string{"-compress", "gzip", "x"}, &stdout, &stderr))
		require.Contains(t, stderr.String(), `unknown compression "gzip"`)
	})

	t.Run("Missing input", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr)

		require.Equal(t, exitError, code)
		require.Contains(t, stderr.String(), "cannot open container")
	})

	t.Run("Truncated container", func(t *testing.T) {
		dir := t.TempDir()
		src := writeContainer(t, dir, "short", []byte("NGG7"))

		var stdout, stderr bytes.Buffer
		code := run([]string{"-o", dir, src}, &stdout, &stderr)

		require.Equal(t, exitError, code)
		require.Contains(t, stderr.String(), "truncated header")
	})
}
