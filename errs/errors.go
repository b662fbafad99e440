// Package errs defines the sentinel errors returned by ngg7 packages.
//
// Errors are wrapped with context by the caller; use errors.Is to test for a
// specific condition.
package errs

import "errors"

var (
	// ErrInputOpen is returned when the container file cannot be opened.
	ErrInputOpen = errors.New("cannot open container")
	// ErrTruncatedHeader is returned when fewer bytes are available than a header requires.
	ErrTruncatedHeader = errors.New("truncated header")
	// ErrInvalidHeaderSize is returned when a header is parsed from a slice of the wrong length.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidMagic is returned in strict mode when the container magic is not "NGG7".
	ErrInvalidMagic = errors.New("invalid container magic")
	// ErrSectionCreate is returned when a destination file cannot be created.
	ErrSectionCreate = errors.New("cannot create output file")
	// ErrInvalidSectionName is returned when a section name cannot be used as a file name.
	ErrInvalidSectionName = errors.New("invalid section name")
	// ErrSectionOutOfBounds is returned when a section range lies outside the source.
	ErrSectionOutOfBounds = errors.New("section out of bounds")
	// ErrInvalidRange is returned for a negative offset or size.
	ErrInvalidRange = errors.New("invalid byte range")
	// ErrCopy is returned when a copy stops before the requested byte count.
	ErrCopy = errors.New("copy failed")
	// ErrDelete is reported when the payload container cannot be removed. It is never fatal.
	ErrDelete = errors.New("cannot remove container")
	// ErrUnsupportedCompression is returned for an unknown output compression type.
	ErrUnsupportedCompression = errors.New("unsupported output compression")
)
