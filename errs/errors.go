// Package errs defines the sentinel errors shared across the libloc packages.
//
// Every validation error returned by libloc.Open wraps one of these sentinels,
// so callers can classify failures with errors.Is while still getting
// positional context from the wrapping message. I/O and mapping failures are
// returned as the wrapped underlying error instead.
package errs

import "errors"

// Open-time validation errors.
var (
	// ErrTooShort indicates the file is smaller than the fixed database header.
	ErrTooShort = errors.New("database file too short for header")

	// ErrInvalidMagic indicates the file does not start with the libloc magic,
	// so it is likely not a libloc database at all.
	ErrInvalidMagic = errors.New("invalid database magic")

	// ErrUnsupportedVersion indicates a database format version other than 1.
	ErrUnsupportedVersion = errors.New("unsupported database version")

	// ErrSegmentOutOfBounds indicates a segment descriptor that extends past
	// the end of the file.
	ErrSegmentOutOfBounds = errors.New("segment out of bounds")

	// ErrMisalignedSegment indicates a segment whose length is not a multiple
	// of its record width.
	ErrMisalignedSegment = errors.New("segment length not a multiple of record size")

	// ErrInvalidSignatureLength indicates a declared signature length larger
	// than its 2048-byte slot.
	ErrInvalidSignatureLength = errors.New("signature length exceeds slot size")

	// ErrMissingRoot indicates a database with networks but no trie nodes.
	ErrMissingRoot = errors.New("network trie has no root node")

	// ErrBadPoolString indicates a header string reference that does not
	// resolve to a valid pool string.
	ErrBadPoolString = errors.New("invalid header string reference")
)

// String pool resolution errors.
var (
	// ErrPoolOutOfBounds indicates a string reference past the end of the pool.
	ErrPoolOutOfBounds = errors.New("string reference out of pool bounds")

	// ErrPoolUnterminated indicates a string that is not NUL-terminated before
	// the end of the pool.
	ErrPoolUnterminated = errors.New("string not NUL-terminated within pool")

	// ErrPoolBadUTF8 indicates a pool string that is not valid UTF-8.
	ErrPoolBadUTF8 = errors.New("pool string is not valid UTF-8")
)

// Record parsing errors.
var (
	// ErrInvalidHeaderSize indicates a byte slice of the wrong size passed to
	// Header.Parse.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidRecordSize indicates a byte slice of the wrong size passed to
	// a fixed-size record parser.
	ErrInvalidRecordSize = errors.New("invalid record size")
)
