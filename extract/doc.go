// Package extract unpacks NGG7 firmware containers.
//
// A container starts with a 20-byte section.ContainerHeader whose format selector
// decides, once, how the rest of the file is read:
//
//   - Pack: a pack header and a table of section headers follow. Every section is
//     copied from its absolute offset into a file named after the section.
//   - Payload: a payload header follows, then one compressed stream that runs to the
//     end of the file and ends with one terminator byte. The stream is copied into
//     <container>.lzma without the terminator and the container is removed.
//
// The payload is never decompressed; it is LZMA data for an external tool.
//
// # Usage
//
//	x, err := extract.New(
//	    extract.WithOutputDir("out"),
//	    extract.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    return err
//	}
//	report, err := x.ExtractFile("firmware.bin")
//	if err != nil {
//	    return err // files in report.Outputs() were already written
//	}
//
// # Failure Model
//
// There are no retries and no rollback. A failing section aborts the remaining ones
// and every file written before it stays on disk. Each destination file is closed
// before the next one is created, on success and on failure. Removing the payload
// container is best effort and never fails an extraction.
//
// Section names come from the container and are passed through SanitizeName, so
// outputs always land directly inside the output directory. Section ranges are
// checked against the container size before a file is created unless
// WithBoundsCheck(false) is given.
//
// # Reading Granularity
//
// All copies move ChunkSize (2048) bytes per read through a pooled buffer, so memory
// use does not depend on section or payload size.
package extract
