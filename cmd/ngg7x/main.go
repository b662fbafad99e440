// Command ngg7x extracts NGG7 firmware containers.
//
// Usage:
//
//	ngg7x [flags] <container>
//
// A pack container is unpacked into one file per section. A payload container is
// replaced by <container>.lzma, holding the still compressed payload.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arloliu/ngg7/endian"
	"github.com/arloliu/ngg7/extract"
	"github.com/arloliu/ngg7/format"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ngg7x", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: ngg7x [flags] <container>\n\n")
		fs.PrintDefaults()
	}

	outDir := fs.String("o", ".", "output directory")
	inspect := fs.Bool("inspect", false, "print the container headers and exit without extracting")
	keep := fs.Bool("keep", false, "keep a payload container after extraction")
	strict := fs.Bool("strict", false, "reject containers whose magic is not NGG7")
	bounds := fs.Bool("bounds", true, "check section ranges against the container size")
	compression := fs.String("compress", "none", "wrap outputs in a compression stream: none, zstd, s2, lz4")
	verbose := fs.Bool("v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	path := fs.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *inspect {
		return runInspect(path, stdout, stderr)
	}

	ct, ok := format.ParseCompressionType(*compression)
	if !ok {
		fmt.Fprintf(stderr, "ngg7x: unknown compression %q\n", *compression)
		return exitUsage
	}

	logger.Debug("host byte order", "little_endian", endian.IsNativeLittleEndian())

	x, err := extract.New(
		extract.WithOutputDir(*outDir),
		extract.WithLogger(logger),
		extract.WithKeepSource(*keep),
		extract.WithStrictMagic(*strict),
		extract.WithBoundsCheck(*bounds),
		extract.WithOutputCompression(ct),
	)
	if err != nil {
		fmt.Fprintf(stderr, "ngg7x: %v\n", err)
		return exitUsage
	}

	report, err := x.ExtractFile(path)
	if report != nil {
		printReport(stdout, report)
	}
	if err != nil {
		fmt.Fprintf(stderr, "ngg7x: %v\n", err)
		return exitError
	}

	return exitOK
}

func printReport(w io.Writer, report *extract.Report) {
	for _, s := range report.Sections {
		fmt.Fprintf(w, "%s\t%d\t%016x\n", s.Path, s.Size, s.Checksum)
	}

	if p := report.Payload; p != nil {
		fmt.Fprintf(w, "%s\t%d\t%016x\n", p.Path, p.Size, p.Checksum)
	}
}

func runInspect(path string, stdout, stderr io.Writer) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "ngg7x: cannot open container: %v\n", err)
		return exitError
	}
	defer f.Close()

	info, err := extract.Inspect(f)
	if info != nil {
		printInfo(stdout, info)
	}
	if err != nil {
		fmt.Fprintf(stderr, "ngg7x: %v\n", err)
		return exitError
	}

	return exitOK
}

func printInfo(w io.Writer, info *extract.Info) {
	h := info.Header
	fmt.Fprintf(w, "Header: %s v.%s, code1: %#04x code2: %d const1: %#04x const2: %#08x\n",
		h.MagicString(), h.VersionString(), h.Code1, h.Code2, h.Const1, uint32(h.Const2))
	fmt.Fprintf(w, "Kind: %s, size: %d\n", info.Kind, info.SourceSize)

	if info.Pack != nil {
		fmt.Fprintf(w, "Pack: %s, sections: %d\n", info.Pack.InfoString(), info.Pack.Num)
		for _, s := range info.Sections {
			fmt.Fprintf(w, "  Section: %-16s pos: %d, size: %d\n", s.SectionName(), s.Offset, s.Size)
		}
	}

	if info.Payload != nil {
		fmt.Fprintf(w, "Payload: decompressed size: %d, compressed size: %d\n", info.Payload.SizeD, info.PayloadSize)
	}
}
