package section

import (
	"fmt"

	"github.com/arloliu/libloc/endian"
	"github.com/arloliu/libloc/errs"
)

// engine is the byte order of every multi-byte field in the format.
var engine = endian.GetBigEndianEngine()

// FileRange is a segment descriptor in the database header: a byte offset
// from the start of the file plus the segment length in bytes.
type FileRange struct {
	Offset uint32 // byte offset 0-3
	Length uint32 // byte offset 4-7
}

// Parse parses the descriptor from a byte slice.
//
// Returns errs.ErrInvalidRecordSize if data is not exactly 8 bytes.
func (r *FileRange) Parse(data []byte) error {
	if len(data) != FileRangeSize {
		return errs.ErrInvalidRecordSize
	}

	r.Offset = engine.Uint32(data[0:4])
	r.Length = engine.Uint32(data[4:8])

	return nil
}

// Bytes returns the descriptor as an 8-byte slice.
func (r *FileRange) Bytes() []byte {
	var b [FileRangeSize]byte // one fixed-size buffer, returned as a slice
	engine.PutUint32(b[0:4], r.Offset)
	engine.PutUint32(b[4:8], r.Length)

	return b[:]
}

// validate checks that the segment lies within a file of fileSize bytes and
// that its length is a multiple of the record width.
func (r *FileRange) validate(name string, recordSize uint32, fileSize uint64) error {
	if uint64(r.Offset)+uint64(r.Length) > fileSize {
		return fmt.Errorf("%w: %s segment [%d, %d) exceeds file size %d",
			errs.ErrSegmentOutOfBounds, name, r.Offset, uint64(r.Offset)+uint64(r.Length), fileSize)
	}
	if r.Length%recordSize != 0 {
		return fmt.Errorf("%w: %s segment length %d, record size %d",
			errs.ErrMisalignedSegment, name, r.Length, recordSize)
	}

	return nil
}

// Count returns the number of records the segment holds at the given width.
func (r *FileRange) Count(recordSize uint32) uint32 {
	return r.Length / recordSize
}

// Header represents the fixed-size header at the start of a libloc database.
//
// The two 2048-byte signature slots are treated as opaque: only their
// declared lengths are parsed, verification is a separate subsystem.
type Header struct {
	// CreatedAt is the database creation time in seconds since the Unix epoch.
	CreatedAt uint64 // byte offset 8-15
	// Vendor is the pool offset of the vendor string.
	Vendor uint32 // byte offset 16-19
	// Description is the pool offset of the description string.
	Description uint32 // byte offset 20-23
	// License is the pool offset of the license string.
	License uint32 // byte offset 24-27

	// AS describes the autonomous system segment (8-byte records).
	AS FileRange // byte offset 28-35
	// Networks describes the network segment (12-byte records).
	Networks FileRange // byte offset 36-43
	// Nodes describes the trie node segment (12-byte records).
	Nodes FileRange // byte offset 44-51
	// Countries describes the country segment (8-byte records).
	Countries FileRange // byte offset 52-59
	// Pool describes the string pool segment.
	Pool FileRange // byte offset 60-67

	// Signature1Length and Signature2Length are the declared lengths of the
	// two opaque signature slots, at most 2048 each.
	Signature1Length uint16 // byte offset 68-69
	Signature2Length uint16 // byte offset 70-71

	// Version is the format version byte following the magic.
	Version uint8 // byte offset 7
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 4200 bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is not 4200 bytes,
//     errs.ErrInvalidMagic or errs.ErrUnsupportedVersion on a bad preamble
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}
	if string(data[magicOffset:magicOffset+MagicSize]) != Magic {
		return errs.ErrInvalidMagic
	}

	h.Version = data[versionOffset]
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	h.CreatedAt = engine.Uint64(data[createdAtOffset : createdAtOffset+8])
	h.Vendor = engine.Uint32(data[vendorOffset : vendorOffset+4])
	h.Description = engine.Uint32(data[descriptionOffset : descriptionOffset+4])
	h.License = engine.Uint32(data[licenseOffset : licenseOffset+4])

	_ = h.AS.Parse(data[asRangeOffset : asRangeOffset+FileRangeSize])
	_ = h.Networks.Parse(data[networkRangeOffset : networkRangeOffset+FileRangeSize])
	_ = h.Nodes.Parse(data[nodeRangeOffset : nodeRangeOffset+FileRangeSize])
	_ = h.Countries.Parse(data[countryRangeOffset : countryRangeOffset+FileRangeSize])
	_ = h.Pool.Parse(data[poolRangeOffset : poolRangeOffset+FileRangeSize])

	h.Signature1Length = engine.Uint16(data[signature1LenOffset : signature1LenOffset+2])
	h.Signature2Length = engine.Uint16(data[signature2LenOffset : signature2LenOffset+2])

	return nil
}

// Bytes serializes the header into a 4200-byte slice.
//
// The signature slots and the trailing padding are zero-filled.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	copy(b[magicOffset:], Magic)
	b[versionOffset] = Version

	engine.PutUint64(b[createdAtOffset:], h.CreatedAt)
	engine.PutUint32(b[vendorOffset:], h.Vendor)
	engine.PutUint32(b[descriptionOffset:], h.Description)
	engine.PutUint32(b[licenseOffset:], h.License)

	copy(b[asRangeOffset:], h.AS.Bytes())
	copy(b[networkRangeOffset:], h.Networks.Bytes())
	copy(b[nodeRangeOffset:], h.Nodes.Bytes())
	copy(b[countryRangeOffset:], h.Countries.Bytes())
	copy(b[poolRangeOffset:], h.Pool.Bytes())

	engine.PutUint16(b[signature1LenOffset:], h.Signature1Length)
	engine.PutUint16(b[signature2LenOffset:], h.Signature2Length)

	return b
}

// Validate checks every segment descriptor against the file size and record
// width, and the declared signature lengths against their slot size.
func (h *Header) Validate(fileSize uint64) error {
	if err := h.AS.validate("as", ASSize, fileSize); err != nil {
		return err
	}
	if err := h.Networks.validate("network", NetworkSize, fileSize); err != nil {
		return err
	}
	if err := h.Nodes.validate("node", NetworkNodeSize, fileSize); err != nil {
		return err
	}
	if err := h.Countries.validate("country", CountrySize, fileSize); err != nil {
		return err
	}
	if err := h.Pool.validate("string pool", 1, fileSize); err != nil {
		return err
	}

	if h.Signature1Length > SignatureSlotSize {
		return fmt.Errorf("%w: signature1 length %d", errs.ErrInvalidSignatureLength, h.Signature1Length)
	}
	if h.Signature2Length > SignatureSlotSize {
		return fmt.Errorf("%w: signature2 length %d", errs.ErrInvalidSignatureLength, h.Signature2Length)
	}

	return nil
}

// ParseHeader parses a Header from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 4200 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: errs.ErrTooShort, errs.ErrInvalidMagic or errs.ErrUnsupportedVersion
func ParseHeader(data []byte) (Header, error) {
	if len(data) >= MagicSize && string(data[:MagicSize]) != Magic {
		return Header{}, errs.ErrInvalidMagic
	}
	if len(data) < HeaderSize {
		return Header{}, errs.ErrTooShort
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
